package runtime

import (
	"context"
	"time"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/progression"
)

// Provider derives evaluation contexts from the persisted guild state. Each
// call re-reads the aggregate so the context is a consistent point-in-time
// view; nothing is cached across evaluations.
type Provider struct {
	States ports.GuildStateRepository
}

func NewProvider(states ports.GuildStateRepository) Provider {
	return Provider{States: states}
}

func (p Provider) EvalContext(ctx context.Context, at time.Time) (progression.EvalContext, error) {
	state, err := p.States.Get(ctx)
	if err != nil {
		return progression.EvalContext{}, err
	}
	return state.EvalContext(at), nil
}

var _ ports.StateProvider = Provider{}
