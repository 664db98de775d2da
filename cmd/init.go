package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Create a new duke directory",
	Long: `Creates a duke directory with a default config and an empty task
file. With no PATH, the directory is created as ./duke in the current
working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	dir := filepath.Join(".", config.DefaultDir)
	if len(args) == 1 {
		dir = args[0]
	}
	if flagDir != "" {
		dir = flagDir
	}

	// Refuse to clobber an existing duke directory.
	if _, err := os.Stat(filepath.Join(dir, config.ConfigFileName)); err == nil {
		return clierr.Newf(clierr.StoreAlreadyExists,
			"duke directory already exists at %s", dir)
	}

	cfg, err := config.Init(dir)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"status": "initialized",
			"dir":    cfg.Dir(),
			"file":   cfg.TaskPath(),
		})
	}

	output.Messagef(os.Stdout, "Initialized duke directory at %s", cfg.Dir())
	output.Messagef(os.Stdout, "  Config: %s", cfg.ConfigPath())
	output.Messagef(os.Stdout, "  Tasks:  %s", cfg.TaskPath())
	return nil
}
