package memory

import (
	"context"

	"guildhall/internal/app/ports"
)

// UnlockEventRepo stores unlock events in memory, newest first on listing.
// It doubles as an event publisher so demo mode needs no external sink.
type UnlockEventRepo struct {
	store *Store
}

func NewUnlockEventRepo(store *Store) UnlockEventRepo {
	return UnlockEventRepo{store: store}
}

func (r UnlockEventRepo) Append(_ context.Context, events []ports.GateUnlockedEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, events...)
	return nil
}

func (r UnlockEventRepo) ListRecent(_ context.Context, limit int) ([]ports.GateUnlockedEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]ports.GateUnlockedEvent, 0, len(r.store.events))
	for i := len(r.store.events) - 1; i >= 0; i-- {
		out = append(out, r.store.events[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r UnlockEventRepo) Publish(ctx context.Context, event ports.GateUnlockedEvent) error {
	return r.Append(ctx, []ports.GateUnlockedEvent{event})
}

var (
	_ ports.UnlockEventRepository = UnlockEventRepo{}
	_ ports.EventPublisher        = UnlockEventRepo{}
)
