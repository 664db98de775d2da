package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/tui"
	"github.com/duke-cli/duke/internal/watcher"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse tasks in a live terminal view",
	Long: `Opens an interactive terminal view of the task list. The view
refreshes automatically when the task file changes on disk.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	model := tui.NewList(cfg, st)
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startTUIWatcher(ctx, model, p)

	_, err = p.Run()
	return err
}

func startTUIWatcher(ctx context.Context, model *tui.List, p *tea.Program) {
	w, err := watcher.New(model.WatchPaths(), func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		return // non-fatal: the view works without live refresh
	}
	defer w.Close()
	w.Run(ctx, nil)
}
