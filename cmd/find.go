package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/tasklist"
)

var findCmd = &cobra.Command{
	Use:   "find KEYWORD...",
	Short: "Find tasks by keyword",
	Long: `Lists tasks whose description contains the keyword,
case-insensitively. Task numbers are the same as in the full list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	all, warnings, err := st.Load()
	if err != nil {
		return err
	}
	printWarnings(warnings)

	matches := tasklist.Find(all, strings.Join(args, " "))
	return outputTaskList(matches)
}
