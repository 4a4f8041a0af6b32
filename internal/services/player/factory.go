package player

import (
	"io"
	"log/slog"

	"github.com/mcoot/pig/internal/model"
)

// Factory builds players from a type tag
type Factory struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewFactory creates a Factory. Interactive players prompt on out and
// read from in; they share a single buffered reader so that lines typed
// ahead are not lost between players.
func NewFactory(in io.Reader, out io.Writer, logger *slog.Logger) *Factory {
	return &Factory{
		in:     bufioReader(in),
		out:    out,
		logger: logger.With(slog.String("component", "player-factory")),
	}
}

// Create returns an interactive player for "human" and an automated one
// for "computer". Any other tag fails with ErrInvalidPlayerType.
func (f *Factory) Create(playerType string, name string) (*Player, error) {
	pt, err := model.ParsePlayerType(playerType)
	if err != nil {
		return nil, err
	}

	var decider Decider
	switch pt {
	case model.PlayerTypeHuman:
		decider = NewInteractiveDecider(f.in, f.out, f.logger)
	case model.PlayerTypeComputer:
		decider = NewAutomatedDecider()
	}

	f.logger.Debug("player created",
		slog.String("name", name),
		slog.String("type", string(pt)),
	)

	return New(name, pt, decider), nil
}
