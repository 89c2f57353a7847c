package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pleiad/castcic/internal/scenario"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Run a golden reduction scenario and report whether it matched",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	res, err := s.Run()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", s.ID, s.Description)
	fmt.Fprintf(out, "  got:      %s\n", res.Got)
	fmt.Fprintf(out, "  expected: %s\n", s.Expected)
	if res.Matched {
		fmt.Fprintln(out, "  ok")
		return nil
	}
	fmt.Fprintln(out, "  mismatch")
	return fmt.Errorf("scenario %s did not reduce to its expected form", s.ID)
}
