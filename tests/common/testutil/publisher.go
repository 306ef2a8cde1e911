package testutil

import (
	"context"
	"sync"

	"wayfare/internal/infra/events"
)

// RecordingPublisher captures published events for assertions.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.BookingEvent
}

func (p *RecordingPublisher) Publish(_ context.Context, e events.BookingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *RecordingPublisher) Events() []events.BookingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.BookingEvent, len(p.events))
	copy(out, p.events)
	return out
}

func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}
