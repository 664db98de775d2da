package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show N",
	Short: "Show one task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return task.ValidateTaskNumber(args[0])
	}

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

	if n < 1 || n > len(tasks) {
		return task.ValidateTaskNumber(args[0])
	}
	t := tasks[n-1]

	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}
	if format == output.FormatCompact {
		output.Messagef(os.Stdout, "%s", output.FormatTaskLine(t))
		return nil
	}

	output.TaskDetail(os.Stdout, t)
	return nil
}
