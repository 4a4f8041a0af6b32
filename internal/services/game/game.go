package game

import (
	"log/slog"

	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/dice"
	"github.com/mcoot/pig/internal/services/player"
)

// TargetScore is the banked score that ends the game
const TargetScore = 100

// Runner plays a game to completion and reports its outcome
type Runner interface {
	PlayGame() *player.Player
	Result() model.GameResult
}

// Game runs turns between two players sharing one die
type Game struct {
	die      *dice.Die
	players  [2]*player.Player
	current  int
	turns    int
	clock    clock.Clock
	reporter Reporter
	logger   *slog.Logger
}

// New creates a game in which p1 takes the first turn
func New(
	die *dice.Die,
	p1, p2 *player.Player,
	clk clock.Clock,
	reporter Reporter,
	logger *slog.Logger,
) *Game {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Game{
		die:      die,
		players:  [2]*player.Player{p1, p2},
		clock:    clk,
		reporter: reporter,
		logger:   logger.With(slog.String("component", "game")),
	}
}

// Players returns both players in turn order
func (g *Game) Players() [2]*player.Player {
	return g.players
}

// CurrentIndex returns the index of the player whose turn is next
func (g *Game) CurrentIndex() int {
	return g.current
}

// CurrentPlayer returns the player whose turn is next
func (g *Game) CurrentPlayer() *player.Player {
	return g.players[g.current]
}

// Turns returns the number of completed turns
func (g *Game) Turns() int {
	return g.turns
}

// PlayTurn plays one turn for the current player and passes the die to
// the other player. The player rolls until they hold or roll a 1; a 1
// discards everything accumulated this turn. Returns the points banked.
func (g *Game) PlayTurn() int {
	p := g.players[g.current]
	turnTotal := 0

	g.emit(model.EventTurnStarted, p, 0, 0)
	for {
		roll := g.die.Roll()
		g.emit(model.EventRolled, p, roll, turnTotal)

		if roll == 1 {
			turnTotal = 0
			g.emit(model.EventPigOut, p, roll, turnTotal)
			break
		}

		turnTotal += roll
		g.emit(model.EventTurnTotal, p, roll, turnTotal)
		if !p.Decide(turnTotal) {
			break
		}
	}

	// Runs after a 1 as well, where it adds nothing
	p.AddScore(turnTotal)
	g.emit(model.EventTurnEnded, p, 0, turnTotal)

	g.logger.Debug("turn complete",
		slog.String("player", p.Name),
		slog.Int("banked", turnTotal),
		slog.Int("total_score", p.TotalScore),
		slog.Int("turn", g.turns),
	)

	g.turns++
	g.switchTurn()
	return turnTotal
}

// PlayGame plays turns until a player reaches TargetScore and returns
// the winner. The score is only checked between turns, so the winning
// turn may go past the target.
func (g *Game) PlayGame() *player.Player {
	for !g.Over() {
		g.PlayTurn()
	}
	return g.finish()
}

// Over reports whether any player has reached TargetScore
func (g *Game) Over() bool {
	for _, p := range g.players {
		if p.TotalScore >= TargetScore {
			return true
		}
	}
	return false
}

// Winner returns the player with the highest score. Ties go to the
// first player.
func (g *Game) Winner() *player.Player {
	winner := g.players[0]
	for _, p := range g.players[1:] {
		if p.TotalScore > winner.TotalScore {
			winner = p
		}
	}
	return winner
}

// Result summarises the game as it stands
func (g *Game) Result() model.GameResult {
	result := model.GameResult{Turns: g.turns}
	for i, p := range g.players {
		result.Players[i] = model.ResultPlayer{
			Name:  p.Name,
			Type:  p.Type,
			Score: p.TotalScore,
		}
	}
	winner := g.Winner()
	result.Winner = winner.Name
	result.WinnerScore = winner.TotalScore
	return result
}

// finish announces the winner
func (g *Game) finish() *player.Player {
	winner := g.Winner()
	g.emit(model.EventGameWon, winner, 0, 0)

	g.logger.Info("game complete",
		slog.String("winner", winner.Name),
		slog.Int("winner_score", winner.TotalScore),
		slog.Int("turns", g.turns),
	)
	return winner
}

func (g *Game) switchTurn() {
	g.current = 1 - g.current
}

func (g *Game) emit(eventType model.EventType, p *player.Player, roll, turnTotal int) {
	g.reporter.Report(model.Event{
		Type:       eventType,
		Timestamp:  g.clock.Now(),
		Player:     p.Name,
		Roll:       roll,
		TurnTotal:  turnTotal,
		TotalScore: p.TotalScore,
	})
}

var _ Runner = (*Game)(nil)
