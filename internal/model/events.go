package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Turn events
	EventTurnStarted EventType = "turn_started"
	EventRolled      EventType = "rolled"
	EventPigOut      EventType = "pig_out"
	EventTurnTotal   EventType = "turn_total"
	EventTurnEnded   EventType = "turn_ended"

	// Game events
	EventGameWon      EventType = "game_won"
	EventGameTimedOut EventType = "game_timed_out"
)

// Event describes one step of play. Fields that do not apply to the event
// type are left zero.
type Event struct {
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	Player     string    `json:"player"`
	Roll       int       `json:"roll,omitempty"`
	TurnTotal  int       `json:"turn_total,omitempty"`
	TotalScore int       `json:"total_score"`
}
