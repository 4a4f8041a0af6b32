package model

import "time"

// ResultID uniquely identifies a recorded game result
type ResultID string

// ResultPlayer is a player's final standing in a finished game
type ResultPlayer struct {
	Name  string     `json:"name"`
	Type  PlayerType `json:"type"`
	Score int        `json:"score"`
}

// GameResult is a lightweight record of a finished game. It holds only the
// outcome; a game cannot be resumed from it.
type GameResult struct {
	ID          ResultID        `json:"id"`
	Players     [2]ResultPlayer `json:"players"`
	Winner      string          `json:"winner"`
	WinnerScore int             `json:"winner_score"`
	Turns       int             `json:"turns"`
	Timed       bool            `json:"timed"`
	TimedOut    bool            `json:"timed_out"`
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  time.Time       `json:"finished_at"`
}

// Duration returns how long the game took
func (r *GameResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
