package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pleiad/castcic/internal/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive CEK stepper",
		RunE:  runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	r := repl.New()
	r.Configure(parseVariant(flagVariant), flagFuel)
	r.Start(os.Stdin, cmd.OutOrStdout())
	return nil
}
