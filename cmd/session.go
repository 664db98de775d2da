package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/duke-cli/duke/internal/session"
)

// runSession is what a bare `duke` does: the interactive loop that
// greets, executes one command per line, and says goodbye on "bye" or
// EOF.
func runSession(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	return session.New(cfg, st, os.Stdin, os.Stdout).Run()
}
