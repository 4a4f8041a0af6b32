//go:generate go run go.uber.org/mock/mockgen -source=decider.go -destination=../../dependencies/mocks/decider.go -package=mocks

package player

import "github.com/mcoot/pig/internal/model"

// Decider chooses whether a player keeps rolling during a turn. p holds
// the banked score; turnTotal is what the turn has accumulated so far and
// is lost on a roll of 1. Decide returns true to roll again and false to
// hold and bank the turn.
type Decider interface {
	Decide(p model.Player, turnTotal int) bool
}

// DeciderFunc adapts a function to the Decider interface
type DeciderFunc func(p model.Player, turnTotal int) bool

// Decide calls f(p, turnTotal)
func (f DeciderFunc) Decide(p model.Player, turnTotal int) bool {
	return f(p, turnTotal)
}
