package inmemory

import (
	"context"
	"sync"

	"guildhall/internal/app/ports"
)

// Bus is a recording event sink. It optionally forwards every published
// event to another publisher, so it can sit in front of a persistent log
// while still exposing the in-process history to tests and the ops surface.
type Bus struct {
	Forward ports.EventPublisher

	mu     sync.Mutex
	events []ports.GateUnlockedEvent
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Publish(ctx context.Context, event ports.GateUnlockedEvent) error {
	if b.Forward != nil {
		if err := b.Forward.Publish(ctx, event); err != nil {
			return err
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

// Published returns a copy of every event seen so far, oldest first.
func (b *Bus) Published() []ports.GateUnlockedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]ports.GateUnlockedEvent, len(b.events))
	copy(out, b.events)
	return out
}

var _ ports.EventPublisher = (*Bus)(nil)
