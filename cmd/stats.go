package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/tasklist"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task list summary counts",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	tasks, warnings, err := st.Load()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	s := tasklist.Summarize(tasks)

	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, s)
	}
	if format == output.FormatCompact {
		output.StatsCompact(os.Stdout, s)
		return nil
	}

	output.StatsTable(os.Stdout, s)
	return nil
}
