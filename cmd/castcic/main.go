// Command castcic drives the CastCIC reduction core from the command
// line: it replays golden scenarios, runs the interactive CEK stepper,
// or prints its version. There is no surface-syntax parser, so every
// reduction is seeded from a scenario YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagVariant string
	flagFuel    int
)

var rootCmd = &cobra.Command{
	Use:           "castcic",
	Short:         "A CEK stepper for the Gradual Cast Calculus of Inductive Constructions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "G", "GCIC universe-arithmetic variant: G, N, or S")
	rootCmd.PersistentFlags().IntVar(&flagFuel, "fuel", 10000, "reduction step budget")

	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "castcic:", err)
		os.Exit(1)
	}
}
