package ports

import "context"

// EventPublisher delivers unlock events to an external sink. Publish may be
// retried with the same EventID; sinks dedupe on it.
type EventPublisher interface {
	Publish(ctx context.Context, event GateUnlockedEvent) error
}
