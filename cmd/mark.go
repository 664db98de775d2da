package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/store"
	"github.com/duke-cli/duke/internal/task"
	"github.com/duke-cli/duke/internal/tasklist"
)

var markCmd = &cobra.Command{
	Use:   "mark N[,N,...]",
	Short: "Mark a task as done",
	Long: `Flips a task's status bit to done and rewrites the task file.
Multiple task numbers can be provided as a comma-separated list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSetDone(args[0], true)
	},
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark N[,N,...]",
	Short: "Mark a task as not done",
	Long: `Flips a task's status bit back to pending and rewrites the task file.
Multiple task numbers can be provided as a comma-separated list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSetDone(args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(unmarkCmd)
}

func runSetDone(arg string, done bool) error {
	nums, err := tasklist.ParseNumbers(arg)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	// Single number: full output.
	if len(nums) == 1 {
		return setDoneSingle(cfg, st, nums[0], done)
	}

	// Batch mode.
	return runBatch(nums, func(n int) error {
		return executeSetDone(cfg, st, n, done)
	})
}

func setDoneSingle(cfg *config.Config, st *store.Store, n int, done bool) error {
	if err := executeSetDone(cfg, st, n, done); err != nil {
		return err
	}

	tasks, _, err := st.Load()
	if err != nil {
		return err
	}
	t := tasks[n-1]

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	if done {
		output.Messagef(os.Stdout, "Marked task #%d as done: %s", n, t.Description)
	} else {
		output.Messagef(os.Stdout, "Marked task #%d as not done: %s", n, t.Description)
	}
	return nil
}

// executeSetDone performs the core status flip: load, range check,
// rewrite, log.
func executeSetDone(cfg *config.Config, st *store.Store, n int, done bool) error {
	var desc string
	err := withLock(cfg, func() error {
		tasks, warnings, err := st.Load()
		if err != nil {
			return err
		}
		printWarnings(warnings)

		if n < 1 || n > len(tasks) {
			return task.ValidateTaskNumber(strconv.Itoa(n))
		}
		desc = tasks[n-1].Description

		return st.SetDone(n, done)
	})
	if err != nil {
		return err
	}

	action := "mark"
	if !done {
		action = "unmark"
	}
	logActivity(cfg, action, n, desc)
	return nil
}
