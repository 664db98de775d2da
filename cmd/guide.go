package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the user guide",
	RunE:  runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(_ *cobra.Command, _ []string) error {
	// Plain markdown when piped or colors are off.
	if flagNoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(guideMarkdown)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100), //nolint:mnd // render width
	)
	if err != nil {
		fmt.Print(guideMarkdown)
		return nil
	}

	out, err := r.Render(guideMarkdown)
	if err != nil {
		fmt.Print(guideMarkdown)
		return nil
	}
	fmt.Print(out)
	return nil
}
