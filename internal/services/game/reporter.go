package game

import "github.com/mcoot/pig/internal/model"

// Reporter receives every event produced while a game is played
type Reporter interface {
	Report(e model.Event)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(e model.Event)

// Report calls f(e)
func (f ReporterFunc) Report(e model.Event) {
	f(e)
}

type nopReporter struct{}

func (nopReporter) Report(model.Event) {}

// Recorder is a Reporter that keeps every event in memory
type Recorder struct {
	Events []model.Event
}

// Report appends e to the recorded events
func (r *Recorder) Report(e model.Event) {
	r.Events = append(r.Events, e)
}

// Types returns the recorded event types in order
func (r *Recorder) Types() []model.EventType {
	types := make([]model.EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}
