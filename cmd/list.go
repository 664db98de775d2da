package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/task"
	"github.com/duke-cli/duke/internal/tasklist"
	"github.com/duke-cli/duke/internal/watcher"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `Lists tasks with optional filtering, sorting, and output format control.

Use --watch to keep the display live-updating. The list re-renders
automatically whenever the task file changes on disk. Press Ctrl+C to stop.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSlice("kind", nil, "filter by kind (todo, deadline, event; comma-separated)")
	listCmd.Flags().Bool("done", false, "show only done tasks")
	listCmd.Flags().Bool("pending", false, "show only pending tasks")
	listCmd.Flags().String("sort", "number", "sort field ("+strings.Join(tasklist.ValidSortFields(), ", ")+")")
	listCmd.Flags().BoolP("reverse", "r", false, "reverse sort order")
	listCmd.Flags().IntP("limit", "n", 0, "limit number of results")
	listCmd.Flags().StringP("search", "s", "", "filter by description keyword (case-insensitive)")
	listCmd.Flags().BoolP("watch", "w", false, "live-update the list on file changes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return renderList(cfg, opts)
	}

	// Watch mode: render once, then re-render on changes.
	if err := renderList(cfg, opts); err != nil {
		return err
	}

	w, err := watcher.New([]string{cfg.Dir()}, func() {
		fmt.Print("\033[H\033[2J") // clear screen
		_ = renderList(cfg, opts)
	})
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Run(ctx, func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
	})
	return nil
}

// listOptions reads the list flags into filter/sort options.
func listOptions(cmd *cobra.Command) (tasklist.ListOptions, error) {
	kindNames, _ := cmd.Flags().GetStringSlice("kind")
	done, _ := cmd.Flags().GetBool("done")
	pending, _ := cmd.Flags().GetBool("pending")
	sortBy, _ := cmd.Flags().GetString("sort")
	reverse, _ := cmd.Flags().GetBool("reverse")
	limit, _ := cmd.Flags().GetInt("limit")
	search, _ := cmd.Flags().GetString("search")

	if sortBy != "" && !slices.Contains(tasklist.ValidSortFields(), sortBy) {
		return tasklist.ListOptions{}, clierr.Newf(clierr.InvalidInput,
			"invalid --sort field %q; valid: %s",
			sortBy, strings.Join(tasklist.ValidSortFields(), ", "))
	}

	var kinds []task.Kind
	for _, name := range kindNames {
		k, err := task.ValidateKindName(name)
		if err != nil {
			return tasklist.ListOptions{}, err
		}
		kinds = append(kinds, k)
	}

	filter := tasklist.FilterOptions{Kinds: kinds, Keyword: search}
	if done {
		v := true
		filter.Done = &v
	} else if pending {
		v := false
		filter.Done = &v
	}

	return tasklist.ListOptions{
		Filter:  filter,
		SortBy:  sortBy,
		Reverse: reverse,
		Limit:   limit,
	}, nil
}

func renderList(cfg *config.Config, opts tasklist.ListOptions) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	all, warnings, err := st.Load()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	tasks := tasklist.List(all, opts)

	return outputTaskList(tasks)
}

func outputTaskList(tasks []*task.Task) error {
	format := outputFormat()
	if format == output.FormatJSON {
		if tasks == nil {
			tasks = []*task.Task{}
		}
		return output.JSON(os.Stdout, tasks)
	}
	if format == output.FormatCompact {
		output.TaskCompact(os.Stdout, tasks)
		return nil
	}

	output.TaskTable(os.Stdout, tasks)
	return nil
}
