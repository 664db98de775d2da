package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/store"
	"github.com/duke-cli/duke/internal/task"
	"github.com/duke-cli/duke/internal/tasklist"
)

var deleteCmd = &cobra.Command{
	Use:     "delete N[,N,...]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Removes a task: the file is rewritten with that line omitted.
Prompts for confirmation in interactive mode.
Multiple task numbers can be provided as a comma-separated list (requires --yes).`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	nums, err := tasklist.ParseNumbers(args[0])
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

	yes, _ := cmd.Flags().GetBool("yes")

	// Batch mode requires --yes.
	if len(nums) > 1 && !yes {
		return clierr.New(clierr.ConfirmationReq,
			"batch delete requires --yes")
	}

	// Single number: preserve exact current behavior.
	if len(nums) == 1 {
		return deleteSingleTask(cfg, st, nums[0], yes)
	}

	// Batch mode (yes is guaranteed true here). Delete from the
	// highest number down so earlier removals don't shift the rest.
	sort.Sort(sort.Reverse(sort.IntSlice(nums)))
	return runBatch(nums, func(n int) error {
		return executeDelete(cfg, st, n)
	})
}

// deleteSingleTask handles a single task delete with confirmation and output.
func deleteSingleTask(cfg *config.Config, st *store.Store, n int, yes bool) error {
	tasks, warnings, err := st.Load()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	if n < 1 || n > len(tasks) {
		return task.ValidateTaskNumber(strconv.Itoa(n))
	}
	t := tasks[n-1]

	// Require confirmation in TTY mode unless --yes.
	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return clierr.New(clierr.ConfirmationReq,
				"cannot prompt for confirmation (not a terminal); use --yes")
		}
		fmt.Fprintf(os.Stderr, "Delete task #%d %q? [y/N] ", n, t.Description)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(os.Stderr, "Canceled.")
			return nil
		}
	}

	if err := executeDelete(cfg, st, n); err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]interface{}{
			"status":      "deleted",
			"number":      n,
			"description": t.Description,
		})
	}

	output.Messagef(os.Stdout, "Deleted task #%d: %s", n, t.Description)
	return nil
}

// executeDelete performs the core delete: load, range check, compact, log.
func executeDelete(cfg *config.Config, st *store.Store, n int) error {
	var desc string
	err := withLock(cfg, func() error {
		tasks, _, err := st.Load()
		if err != nil {
			return err
		}
		if n < 1 || n > len(tasks) {
			return task.ValidateTaskNumber(strconv.Itoa(n))
		}
		desc = tasks[n-1].Description

		return st.Remove(n)
	})
	if err != nil {
		return err
	}

	logActivity(cfg, "delete", n, desc)
	return nil
}
