package gates

import (
	"context"
	"sync"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/progression"
)

// Runner owns the retained snapshot between ticks so the HTTP tick endpoint
// and the background loop share one snapshot lineage. The mutex serializes
// ticks; the core underneath stays single-threaded per call.
type Runner struct {
	Tick TickUseCase

	mu       sync.Mutex
	snapshot progression.Snapshot
}

func NewRunner(tick TickUseCase) *Runner {
	return &Runner{Tick: tick}
}

// RunOnce executes one tick against the retained snapshot and retains the
// returned one. On error the old snapshot is kept, so missed transitions are
// re-detected next time.
func (r *Runner) RunOnce(ctx context.Context) ([]ports.GateUnlockedEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp, err := r.Tick.Execute(ctx, r.snapshot)
	if err != nil {
		return nil, err
	}
	r.snapshot = resp.Snapshot
	return resp.Events, nil
}

// SnapshotSize reports how many gates the retained snapshot covers; 0 before
// the first tick.
func (r *Runner) SnapshotSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshot)
}
