package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mcoot/pig/internal/model"
)

// rollChoice is the (case-folded) answer that means "roll again"
const rollChoice = "r"

// InteractiveDecider prompts on out and reads one line from in per
// decision. Reads block with no timeout.
type InteractiveDecider struct {
	in     *bufio.Reader
	out    io.Writer
	fold   cases.Caser
	logger *slog.Logger
}

// NewInteractiveDecider creates a decider reading answers from in and
// writing prompts to out
func NewInteractiveDecider(in io.Reader, out io.Writer, logger *slog.Logger) *InteractiveDecider {
	return &InteractiveDecider{
		in:     bufioReader(in),
		out:    out,
		fold:   cases.Fold(),
		logger: logger,
	}
}

// Decide asks the player to roll (r) or hold (h). Only "r", in any case,
// means roll; everything else, including a closed input, means hold.
func (d *InteractiveDecider) Decide(p model.Player, _ int) bool {
	fmt.Fprintf(d.out, "%s, do you want to roll (r) or hold (h)? ", p.Name)

	line, err := d.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.logger.Warn("failed to read decision",
				slog.String("player", p.Name),
				slog.String("error", err.Error()),
			)
		}
		if line == "" {
			return false
		}
	}

	choice := strings.TrimRight(line, "\r\n")
	return d.fold.String(choice) == rollChoice
}

func bufioReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
