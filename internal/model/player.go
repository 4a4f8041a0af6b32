package model

import "fmt"

// PlayerType selects how a player makes roll/hold decisions
type PlayerType string

const (
	PlayerTypeHuman    PlayerType = "human"    // Decisions read from the terminal
	PlayerTypeComputer PlayerType = "computer" // Fixed-threshold heuristic
)

// ValidPlayerTypes returns all valid player type tags
func ValidPlayerTypes() []PlayerType {
	return []PlayerType{PlayerTypeHuman, PlayerTypeComputer}
}

// ParsePlayerType validates a player type tag
func ParsePlayerType(s string) (PlayerType, error) {
	for _, t := range ValidPlayerTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %v)", ErrInvalidPlayerType, s, ValidPlayerTypes())
}

// Player is a participant's identity and banked score. Name is fixed at
// creation and must not be changed afterwards; deciders only ever receive
// a copy.
type Player struct {
	Name       string
	Type       PlayerType
	TotalScore int
}

// AddScore banks points for a completed turn. Non-positive values are
// ignored so the total never decreases.
func (p *Player) AddScore(points int) {
	if points <= 0 {
		return
	}
	p.TotalScore += points
}

// ResetScore sets the banked score back to zero
func (p *Player) ResetScore() {
	p.TotalScore = 0
}
