package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/pig/internal/dependencies/random"
	"github.com/mcoot/pig/internal/services/dice"
)

// DefaultStatsRolls is the number of rolls tallied by the stats command
const DefaultStatsRolls = 1_000_000

func newStatsCmd() *cobra.Command {
	var (
		rolls int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Roll the die many times and show how often each face came up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rolls <= 0 {
				return fmt.Errorf("--rolls must be positive, got %d", rolls)
			}

			stats := dice.Tally(dice.NewSeeded(seed), rolls)

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(NewDieStats(stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&rolls, "rolls", DefaultStatsRolls, "Number of rolls")
	cmd.Flags().Int64Var(&seed, "seed", random.DefaultSeed, "Seed for the die")

	return cmd
}
