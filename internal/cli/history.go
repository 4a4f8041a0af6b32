package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/history"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [result-id]",
		Short: "Show recorded game results",
		Long: `Show recorded game results, newest first.

With a result ID, show that single game. Results only outlive the process
with --storage redis.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			app, err := newApp(cmd, out)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if len(args) == 1 {
				result, err := app.HistoryService.Get(cmd.Context(), model.ResultID(args[0]))
				if err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			results, err := app.HistoryService.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out.Print(results)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", history.DefaultListLimit, "Maximum number of results to show")

	return cmd
}
