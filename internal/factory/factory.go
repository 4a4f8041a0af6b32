package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/dependencies/random"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/dice"
	"github.com/mcoot/pig/internal/services/game"
	"github.com/mcoot/pig/internal/services/history"
	"github.com/mcoot/pig/internal/services/player"
	"github.com/mcoot/pig/internal/storage"
	"github.com/mcoot/pig/internal/storage/memory"
	redisstorage "github.com/mcoot/pig/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Player names, in turn order
const (
	Player1Name = "Player 1"
	Player2Name = "Player 2"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PlayerFactory  *player.Factory
	HistoryService *history.Service

	reporter game.Reporter
	logger   *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the result history backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// In supplies answers for human players (optional, defaults to stdin)
	In io.Reader
	// Prompt receives questions for human players (optional, defaults to stdout)
	Prompt io.Writer
	// Reporter receives game events (optional)
	Reporter game.Reporter
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := NewStorage(cfg.StorageType, cfg.RedisConfig)
	if err != nil {
		return nil, err
	}

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	prompt := cfg.Prompt
	if prompt == nil {
		prompt = os.Stdout
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, in, prompt, cfg.Reporter, logger), nil
}

// NewStorage creates the result storage backend for storageType
func NewStorage(storageType string, redisCfg *redisstorage.Config) (storage.Storage, error) {
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if redisCfg == nil {
			return nil, fmt.Errorf("%w: redis config required", model.ErrInvalidStorageType)
		}
		store, err := redisstorage.New(*redisCfg)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %q or %q)", model.ErrInvalidStorageType, storageType, StorageTypeMemory, StorageTypeRedis)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	in io.Reader,
	prompt io.Writer,
	reporter game.Reporter,
	logger *slog.Logger,
) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		PlayerFactory:  player.NewFactory(in, prompt, logger),
		HistoryService: history.New(store, clk, logger),
		reporter:       reporter,
		logger:         logger,
	}
}

// NewGame builds a game between two players of the given types. With
// timed set the game is wrapped in a TimedGame whose clock starts now.
func (a *App) NewGame(player1, player2 string, timed bool) (game.Runner, error) {
	p1, err := a.PlayerFactory.Create(player1, Player1Name)
	if err != nil {
		return nil, err
	}
	p2, err := a.PlayerFactory.Create(player2, Player2Name)
	if err != nil {
		return nil, err
	}

	g := game.New(dice.New(a.Random), p1, p2, a.Clock, a.reporter, a.logger)

	a.logger.Info("game created",
		slog.String("player1", player1),
		slog.String("player2", player2),
		slog.Bool("timed", timed),
	)

	if timed {
		return game.NewTimed(g, a.Clock, a.logger), nil
	}
	return g, nil
}

// Play runs a game to completion and records the result. A result that
// cannot be recorded is logged and does not change the outcome, so the
// returned result may be nil.
func (a *App) Play(ctx context.Context, runner game.Runner) (*player.Player, *model.GameResult) {
	startedAt := a.Clock.Now()
	winner := runner.PlayGame()

	result := runner.Result()
	result.StartedAt = startedAt
	recorded, err := a.HistoryService.Record(ctx, result)
	if err != nil {
		a.logger.Warn("game result not recorded", slog.String("error", err.Error()))
		return winner, nil
	}
	return winner, recorded
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
