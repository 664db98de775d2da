// Package config handles duke configuration.
package config

const (
	// DefaultDir is the default duke directory name.
	DefaultDir = "duke"
	// DefaultTaskFile is the default task file name within the duke directory.
	DefaultTaskFile = "tasks.txt"
	// DefaultAssistantName is the name used in session greetings.
	DefaultAssistantName = "Duke"

	// ConfigFileName is the name of the config file within the duke directory.
	ConfigFileName = "config.yml"
	// LockFileName is the advisory lock file taken around mutations.
	LockFileName = ".lock"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 2
)

// boolPtr returns a pointer to the given bool value.
func boolPtr(v bool) *bool { return &v }
