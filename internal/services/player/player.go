package player

import "github.com/mcoot/pig/internal/model"

// Player pairs a player's state with the way it makes decisions
type Player struct {
	model.Player
	decider Decider
}

// New creates a player with a zero score
func New(name string, playerType model.PlayerType, decider Decider) *Player {
	return &Player{
		Player: model.Player{
			Name: name,
			Type: playerType,
		},
		decider: decider,
	}
}

// Decide reports whether the player wants to roll again with turnTotal
// points at stake
func (p *Player) Decide(turnTotal int) bool {
	return p.decider.Decide(p.Player, turnTotal)
}

// State returns a copy of the player's current state
func (p *Player) State() model.Player {
	return p.Player
}
