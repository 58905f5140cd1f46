package gates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/progression"
)

// TickUseCase runs one evaluate-and-notify cycle: diff the caller's previous
// snapshot against a fresh evaluation, publish one unlock event per
// locked-to-unlocked transition, and return the new snapshot for the caller
// to retain. Publishing is the only side effect of the whole engine.
//
// If the publisher fails mid-batch the error propagates and the caller keeps
// its old snapshot, so unpublished transitions are re-detected on the next
// tick (at-least-once delivery on failure; exactly once otherwise).
type TickUseCase struct {
	Registry  *progression.Registry
	State     ports.StateProvider
	Publisher ports.EventPublisher
	Now       func() time.Time
}

func (u TickUseCase) Execute(ctx context.Context, previous progression.Snapshot) (TickResponse, error) {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}

	evalCtx, err := u.State.EvalContext(ctx, now)
	if err != nil {
		return TickResponse{}, err
	}

	transitions := progression.TrackTransitions(u.Registry, previous, evalCtx)
	events := make([]ports.GateUnlockedEvent, 0, len(transitions))
	for _, tr := range transitions {
		event := ports.GateUnlockedEvent{
			EventID:    uuid.NewString(),
			EventType:  ports.EventTypeGateUnlocked,
			GateID:     string(tr.ID),
			GateType:   string(tr.Type),
			GateName:   tr.Name,
			OccurredAt: now,
		}
		if u.Publisher != nil {
			if err := u.Publisher.Publish(ctx, event); err != nil {
				return TickResponse{}, err
			}
		}
		events = append(events, event)
	}

	return TickResponse{
		Events:   events,
		Snapshot: progression.CurrentGateStates(u.Registry, evalCtx),
	}, nil
}
