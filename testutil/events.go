package testutil

import (
	"context"
	"sync"

	"github.com/cppla/yatube/events"
)

// Recorder is an events.Publisher that keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []events.Event
}

func (r *Recorder) Publish(_ context.Context, ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
	return nil
}

// Subjects lists the subjects recorded so far, in order.
func (r *Recorder) Subjects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Subject
	}
	return out
}
