package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/duke-cli/duke/internal/clierr"
)

const fileMode = 0o600

// Sentinel errors.
var (
	ErrNotFound = errors.New("no duke directory found (run 'duke init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the duke configuration.
type Config struct {
	Version  int           `yaml:"version"`
	TaskFile string        `yaml:"task_file"`
	Session  SessionConfig `yaml:"session,omitempty"`
	UI       UIConfig      `yaml:"ui,omitempty"`

	// dir is the absolute path to the duke directory (not serialized).
	dir string `yaml:"-"`
}

// SessionConfig holds interactive session settings.
type SessionConfig struct {
	// Name is the assistant name used in greetings.
	Name string `yaml:"name,omitempty"`
}

// UIConfig holds display settings for the CLI and TUI.
type UIConfig struct {
	// ConfirmDelete asks before deleting in the TUI. Defaults to true
	// when unset.
	ConfirmDelete *bool `yaml:"confirm_delete,omitempty"`
}

// Dir returns the absolute path to the duke directory.
func (c *Config) Dir() string {
	return c.dir
}

// TaskPath returns the absolute path to the task file.
func (c *Config) TaskPath() string {
	return filepath.Join(c.dir, c.TaskFile)
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// LockPath returns the absolute path to the advisory lock file.
func (c *Config) LockPath() string {
	return filepath.Join(c.dir, LockFileName)
}

// AssistantName returns the configured assistant name, or the default.
func (c *Config) AssistantName() string {
	if c.Session.Name == "" {
		return DefaultAssistantName
	}
	return c.Session.Name
}

// ConfirmDelete reports whether the TUI should confirm deletes.
// Defaults to true when unset.
func (c *Config) ConfirmDelete() bool {
	if c.UI.ConfirmDelete == nil {
		return true
	}
	return *c.UI.ConfirmDelete
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:  CurrentVersion,
		TaskFile: DefaultTaskFile,
		Session:  SessionConfig{Name: DefaultAssistantName},
		UI:       UIConfig{ConfirmDelete: boolPtr(true)},
	}
}

// SetDir sets the duke directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.TaskFile == "" {
		return fmt.Errorf("%w: task_file is required", ErrInvalid)
	}
	if filepath.Base(c.TaskFile) != c.TaskFile {
		return fmt.Errorf("%w: task_file %q must be a bare file name", ErrInvalid, c.TaskFile)
	}
	return nil
}

// Init creates a new duke directory with default settings: the
// directory itself, the config file, and an empty task file.
func Init(dir string) (*Config, error) {
	const dirMode = 0o750

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault()
	cfg.SetDir(absDir)

	if err := os.MkdirAll(absDir, dirMode); err != nil {
		return nil, fmt.Errorf("creating duke directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	f, err := os.OpenFile(cfg.TaskPath(), os.O_CREATE|os.O_WRONLY, fileMode) //nolint:gosec // path under fresh duke dir
	if err != nil {
		return nil, fmt.Errorf("creating task file: %w", err)
	}
	_ = f.Close()

	return cfg, nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given duke directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.dir = absDir

	// Migrate old config versions forward before validating.
	oldVersion := cfg.Version
	if err := migrate(&cfg); err != nil {
		return nil, err
	}

	// Persist migrated config so future loads skip re-migration.
	if cfg.Version != oldVersion {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FindDir walks upward from startDir looking for a duke directory
// containing config.yml. Returns the absolute path to the duke directory.
func FindDir(startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, DefaultDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Join(dir, DefaultDir), nil
		}

		// Also check if we're inside the duke directory itself.
		candidate = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.StoreNotFound,
				"no duke directory found (run 'duke init' to create one)")
		}
		dir = parent
	}
}
