package player

import "github.com/mcoot/pig/internal/model"

const (
	// targetScore is the score the automated heuristic plays towards
	targetScore = 100
	// expectedTurnGain approximates what one more turn of rolling adds
	expectedTurnGain = 25
)

// AutomatedDecider keeps rolling until one more average turn would take
// the player past the target score. Points at stake this turn count
// towards the player's position.
type AutomatedDecider struct{}

// NewAutomatedDecider creates a new AutomatedDecider
func NewAutomatedDecider() *AutomatedDecider {
	return &AutomatedDecider{}
}

// Decide returns false once TotalScore+turnTotal+25 exceeds 100
func (d *AutomatedDecider) Decide(p model.Player, turnTotal int) bool {
	return p.TotalScore+turnTotal+expectedTurnGain <= targetScore
}
