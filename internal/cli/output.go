package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/dice"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Report writes a game event. Text mode prints the running commentary,
// JSON mode writes one event object per line.
func (o *Output) Report(e model.Event) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(e)
		fmt.Fprintln(o.w, string(data))
		return
	}

	switch e.Type {
	case model.EventTurnStarted:
		fmt.Fprintf(o.w, "%s's turn\n", e.Player)
	case model.EventRolled:
		fmt.Fprintf(o.w, "Rolled: %d\n", e.Roll)
	case model.EventPigOut:
		fmt.Fprintf(o.w, "%s rolled a 1! No points added.\n", e.Player)
	case model.EventTurnTotal:
		fmt.Fprintf(o.w, "Turn total: %d, Overall score: %d\n", e.TurnTotal, e.TotalScore)
	case model.EventTurnEnded:
		fmt.Fprintf(o.w, "%s ends turn with %d points.\n\n", e.Player, e.TotalScore)
	case model.EventGameWon:
		fmt.Fprintf(o.w, "%s wins with %d points!\n", e.Player, e.TotalScore)
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []*model.GameResult:
		o.printResults(v)
	case *model.GameResult:
		o.printResult(v)
	case DieStats:
		o.printDieStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// DieStats is the report produced by the stats command
type DieStats struct {
	Rolls int           `json:"rolls"`
	Faces []FaceSummary `json:"faces"`
}

// FaceSummary holds the tally for one face of the die
type FaceSummary struct {
	Face    int     `json:"face"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// NewDieStats converts a dice tally into a printable report
func NewDieStats(s dice.Stats) DieStats {
	out := DieStats{Rolls: s.Rolls}
	for face := 1; face <= dice.Sides; face++ {
		out.Faces = append(out.Faces, FaceSummary{
			Face:    face,
			Count:   s.Count(face),
			Percent: s.Percent(face),
		})
	}
	return out
}

func (o *Output) printResults(results []*model.GameResult) {
	if len(results) == 0 {
		o.PrintMessage("No games recorded.")
		return
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(o.w)
		}
		o.printResult(r)
	}
}

func (o *Output) printResult(r *model.GameResult) {
	status := ""
	if r.TimedOut {
		status = " (timed out)"
	} else if r.Timed {
		status = " (timed)"
	}
	fmt.Fprintf(o.w, "Game: %s%s\n", r.ID, status)
	fmt.Fprintf(o.w, "Finished: %s\n", r.FinishedAt.Format(time.DateTime))
	fmt.Fprintf(o.w, "Duration: %s\n", r.Duration().Round(time.Millisecond))
	fmt.Fprintf(o.w, "Turns: %d\n", r.Turns)
	for _, p := range r.Players {
		marker := ""
		if p.Name == r.Winner {
			marker = " [winner]"
		}
		fmt.Fprintf(o.w, "  - %s (%s): %d points%s\n", p.Name, p.Type, p.Score, marker)
	}
}

func (o *Output) printDieStats(s DieStats) {
	p := message.NewPrinter(language.English)
	p.Fprintf(o.w, "Rolled %d times\n", s.Rolls)
	for _, f := range s.Faces {
		p.Fprintf(o.w, "  %d: %d (%.2f%%)\n", f.Face, f.Count, f.Percent)
	}
}
