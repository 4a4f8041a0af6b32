package game

import (
	"log/slog"
	"time"

	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/player"
)

// TimeLimit is the wall-clock budget for a timed game
const TimeLimit = 60 * time.Second

// TimedGame plays a Game but stops starting new turns once TimeLimit has
// passed. A turn already under way, including a pending interactive
// answer, is never interrupted.
type TimedGame struct {
	game      *Game
	clock     clock.Clock
	startTime time.Time
	limit     time.Duration
	timedOut  bool
	logger    *slog.Logger
}

// NewTimed wraps game. The clock starts now.
func NewTimed(game *Game, clk clock.Clock, logger *slog.Logger) *TimedGame {
	return &TimedGame{
		game:      game,
		clock:     clk,
		startTime: clk.Now(),
		limit:     TimeLimit,
		logger:    logger.With(slog.String("component", "timed-game")),
	}
}

// StartTime returns when the clock started
func (t *TimedGame) StartTime() time.Time {
	return t.startTime
}

// TimedOut reports whether the game was cut short by the time limit
func (t *TimedGame) TimedOut() bool {
	return t.timedOut
}

// PlayGame plays turns until a player reaches TargetScore or the time
// limit is exceeded, then returns the player with the highest score
func (t *TimedGame) PlayGame() *player.Player {
	for !t.game.Over() {
		if elapsed := t.clock.Since(t.startTime); elapsed > t.limit {
			t.timedOut = true
			t.game.emit(model.EventGameTimedOut, t.game.CurrentPlayer(), 0, 0)
			t.logger.Info("time limit reached",
				slog.Duration("elapsed", elapsed),
				slog.Duration("limit", t.limit),
				slog.Int("turns", t.game.Turns()),
			)
			break
		}
		t.game.PlayTurn()
	}
	return t.game.finish()
}

// Result summarises the game, marking it as timed
func (t *TimedGame) Result() model.GameResult {
	result := t.game.Result()
	result.Timed = true
	result.TimedOut = t.timedOut
	return result
}

var _ Runner = (*TimedGame)(nil)
