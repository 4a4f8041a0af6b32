package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/pig/internal/factory"
	"github.com/mcoot/pig/internal/services/game"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pig",
		Short: "Play the dice game Pig",
		Long: `pig plays the dice game Pig between two players.

On each turn a player rolls a die as many times as they like, adding each
roll to the turn total. Holding banks the turn total; rolling a 1 loses it.
The first player to bank 100 points wins.

Human players answer r (roll) or h (hold) on standard input. Computer
players keep rolling until one more average turn would take them past 100.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.LogLevel(),
			}))
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.ValidatePlayers()
		},
		RunE:         runPlay,
		SilenceUsage: true,
	}

	// Game flags
	rootCmd.Flags().StringVar(&cfg.Player1, "player1", cfg.Player1, "Player 1 type: human, computer (env: PIG_PLAYER1)")
	rootCmd.Flags().StringVar(&cfg.Player2, "player2", cfg.Player2, "Player 2 type: human, computer (env: PIG_PLAYER2)")
	rootCmd.Flags().BoolVar(&cfg.Timed, "timed", cfg.Timed, fmt.Sprintf("Stop starting new turns after %s", game.TimeLimit))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: PIG_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Result history storage: memory, redis (env: PIG_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for --storage redis (env: PIG_REDIS_URL)")

	// Add subcommands
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	out := NewOutput(cfg.Output, cmd.OutOrStdout())

	app, err := newApp(cmd, out)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	runner, err := app.NewGame(cfg.Player1, cfg.Player2, cfg.Timed)
	if err != nil {
		return err
	}

	app.Play(cmd.Context(), runner)
	return nil
}

// newApp wires the application for a command. In JSON mode prompts go to
// stderr so stdout stays machine-readable.
func newApp(cmd *cobra.Command, out *Output) (*factory.App, error) {
	var prompt io.Writer = cmd.OutOrStdout()
	if cfg.Output == OutputJSON {
		prompt = cmd.ErrOrStderr()
	}

	app, err := factory.New(factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		RedisConfig: cfg.RedisConfig(),
		In:          cmd.InOrStdin(),
		Prompt:      prompt,
		Reporter:    out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
