package ports

import (
	"context"
	"time"

	"guildhall/internal/domain/guild"
)

// GateUnlockedEvent is the externally published unlock notification. Exactly
// one is emitted per locked-to-unlocked transition. EventType always carries
// EventTypeGateUnlocked; it exists so sinks receiving mixed event streams can
// dispatch on it.
type GateUnlockedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"type"`
	GateID     string    `json:"gate_id"`
	GateType   string    `json:"gate_type"`
	GateName   string    `json:"gate_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventTypeGateUnlocked is the wire discriminator carried by published
// unlock events.
const EventTypeGateUnlocked = "GateUnlocked"

type GuildStateRepository interface {
	Get(ctx context.Context) (guild.State, error)
	SaveWithVersion(ctx context.Context, state guild.State, expectedVersion int64) error
}

type UnlockEventRepository interface {
	Append(ctx context.Context, events []GateUnlockedEvent) error
	ListRecent(ctx context.Context, limit int) ([]GateUnlockedEvent, error)
}

// UnlockLog is the full surface of an unlock event store: the listing side
// read by the ops endpoint plus the publisher sink the bus forwards to. The
// memory, gorm and sqlite repos all implement it.
type UnlockLog interface {
	UnlockEventRepository
	EventPublisher
}
