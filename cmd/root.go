// Package cmd implements the duke CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/filelock"
	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/store"
	"github.com/duke-cli/duke/internal/tasklist"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagDir     string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "duke",
	Short: "Personal task-tracking assistant",
	Long: `duke keeps a plain-text list of todos, deadlines, and events.
Run duke with no arguments to chat with it interactively, or use the
subcommands for one-shot changes.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSession,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		output.AutoColor(flagNoColor)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to duke directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)
}

// normalizeFlags maps the --oneline alias onto --compact.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "oneline" {
		name = "compact"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Handle SilentError — exit with code, no output.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	// Determine if JSON mode is active.
	jsonMode := flagJSON
	if !jsonMode {
		jsonMode = os.Getenv("DUKE_OUTPUT") == "json"
	}

	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown error — wrap as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// defaultHomeDir returns the path to ~/.config/duke.
func defaultHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config/duke"), nil
}

// resolveDir returns the absolute path to the duke directory.
// Falls back to ~/.config/duke if none is found in the current directory tree.
func resolveDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	dir, err := config.FindDir(cwd)
	if err == nil {
		return dir, nil
	}

	// Fall back to ~/.config/duke.
	return defaultHomeDir()
}

// loadConfig finds and loads the duke config.
// If the resolved directory is ~/.config/duke and it doesn't exist yet,
// it is auto-created so a bare `duke` works out of the box.
func loadConfig() (*config.Config, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err == nil {
		return cfg, nil
	}

	// Auto-create ~/.config/duke if it's the home default and doesn't exist.
	if !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}
	homeDir, homeErr := defaultHomeDir()
	if homeErr != nil || dir != homeDir {
		return nil, err
	}

	return config.Init(homeDir)
}

// openStore returns the store for a loaded config, ensuring the task
// file exists.
func openStore(cfg *config.Config) (*store.Store, error) {
	st := store.New(cfg.TaskPath())
	if err := st.Ensure(); err != nil {
		return nil, err
	}
	return st, nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// printWarnings writes malformed-line warnings to stderr, never stdout.
func printWarnings(warnings []store.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: skipping malformed line %d: %v\n", w.LineNo, w.Err)
	}
}

// logActivity appends an entry to the activity log. Errors are silently
// discarded because logging should never fail a command.
func logActivity(cfg *config.Config, action string, taskNumber int, detail string) {
	tasklist.LogMutation(cfg.Dir(), action, taskNumber, detail)
}

// withLock runs op while holding the duke directory lock, so two duke
// processes cannot interleave the append / rewrite-and-rename cycle.
func withLock(cfg *config.Config, op func() error) error {
	unlock, err := filelock.Lock(cfg.LockPath())
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	return op()
}

// runBatch executes fn for each task number and collects results.
// Returns a SilentError with exit code 1 if any operation failed
// (after outputting results).
func runBatch(nums []int, fn func(int) error) error {
	results := make([]output.BatchResult, 0, len(nums))
	anyFailed := false

	for _, n := range nums {
		err := fn(n)
		if err != nil {
			anyFailed = true
			var cliErr *clierr.Error
			if errors.As(err, &cliErr) {
				results = append(results, output.BatchResult{Number: n, OK: false, Error: cliErr.Message, Code: cliErr.Code})
			} else {
				results = append(results, output.BatchResult{Number: n, OK: false, Error: err.Error()})
			}
		} else {
			results = append(results, output.BatchResult{Number: n, OK: true})
		}
	}

	if outputFormat() == output.FormatJSON {
		if err := output.JSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		var succeeded int
		for _, r := range results {
			if r.OK {
				succeeded++
			} else {
				fmt.Fprintf(os.Stderr, "Error: task #%d: %s\n", r.Number, r.Error)
			}
		}
		output.Messagef(os.Stdout, "Completed %d/%d operations", succeeded, len(nums))
	}

	if anyFailed {
		return &clierr.SilentError{Code: 1}
	}
	return nil
}
