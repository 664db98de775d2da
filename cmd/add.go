package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/date"
	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/task"
)

var todoCmd = &cobra.Command{
	Use:   "todo DESCRIPTION...",
	Short: "Add a todo",
	Long:  `Adds a plain todo with no date attached.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args, task.ToDo)
	},
}

var deadlineCmd = &cobra.Command{
	Use:   "deadline DESCRIPTION...",
	Short: "Add a deadline",
	Long: `Adds a task that must be finished by a date.

The date can be exact (YYYY-MM-DD) or natural language ("tomorrow",
"next friday").`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args, task.Deadline)
	},
}

var eventCmd = &cobra.Command{
	Use:   "event DESCRIPTION...",
	Short: "Add an event",
	Long: `Adds a task that happens at a date.

The date can be exact (YYYY-MM-DD) or natural language ("tomorrow",
"next friday").`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args, task.Event)
	},
}

func init() {
	deadlineCmd.Flags().String("by", "", "due date (YYYY-MM-DD or natural language)")
	_ = deadlineCmd.MarkFlagRequired("by")
	eventCmd.Flags().String("at", "", "event date (YYYY-MM-DD or natural language)")
	_ = eventCmd.MarkFlagRequired("at")
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(deadlineCmd)
	rootCmd.AddCommand(eventCmd)
}

func runAdd(cmd *cobra.Command, args []string, kind task.Kind) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	t := &task.Task{
		Kind:        kind,
		Description: strings.Join(args, " "),
	}

	if err := task.ValidateDescription(t.Description); err != nil {
		return err
	}

	if kind.HasDate() {
		flagName := "by"
		if kind == task.Event {
			flagName = "at"
		}
		raw, _ := cmd.Flags().GetString(flagName)
		d, err := date.ParseFuzzy(raw, time.Now())
		if err != nil {
			return task.ValidateDate(flagName, raw, err)
		}
		t.Date = &d
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	var count int
	err = withLock(cfg, func() error {
		tasks, warnings, err := st.Load()
		if err != nil {
			return err
		}
		printWarnings(warnings)

		// Descriptions are unique within the list.
		if err := task.ValidateUnique(t.Description, tasks); err != nil {
			return err
		}

		if err := st.Append(t); err != nil {
			return err
		}
		count = len(tasks) + 1
		t.Number = count
		return nil
	})
	if err != nil {
		return err
	}

	logActivity(cfg, "add", t.Number, t.Description)

	return outputAddResult(cfg, t, count)
}

func outputAddResult(cfg *config.Config, t *task.Task, count int) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Added %s #%d: %s", t.Kind.Name(), t.Number, t.Description)
	if t.Date != nil {
		output.Messagef(os.Stdout, "  Date: %s", t.Date.String())
	}
	output.Messagef(os.Stdout, "  File: %s", cfg.TaskPath())
	output.Messagef(os.Stdout, "  Now %d tasks in the list", count)
	return nil
}
