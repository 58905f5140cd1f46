package ports

import (
	"context"
	"time"

	"guildhall/internal/domain/progression"
)

// StateProvider derives the evaluation context for a point in time from the
// current guild aggregate.
type StateProvider interface {
	EvalContext(ctx context.Context, at time.Time) (progression.EvalContext, error)
}
