package mock

import (
	"context"
	"time"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/progression"
)

// Provider returns a fixed evaluation context, for tests.
type Provider struct {
	Ctx progression.EvalContext
	Err error
}

func (p Provider) EvalContext(_ context.Context, at time.Time) (progression.EvalContext, error) {
	if p.Err != nil {
		return progression.EvalContext{}, p.Err
	}
	c := p.Ctx
	c.Now = at
	return c, nil
}

var _ ports.StateProvider = Provider{}
