package gates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/progression"
)

var ErrInvalidRequest = errors.New("invalid gates request")

// QueryUseCase answers read-only gate questions for the HTTP layer. The core
// treats unknown gate ids as absent values; this layer promotes them to
// ports.ErrNotFound so the adapter can answer 404.
type QueryUseCase struct {
	Registry *progression.Registry
	State    ports.StateProvider
	Now      func() time.Time
}

func (u QueryUseCase) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	evalCtx, err := u.evalContext(ctx)
	if err != nil {
		return ListResponse{}, err
	}

	if strings.TrimSpace(req.GateType) != "" {
		return ListResponse{
			Gates: progression.GatesByType(u.Registry, progression.GateType(req.GateType), evalCtx),
		}, nil
	}

	all := u.Registry.GetAll()
	out := make([]progression.GateWithStatus, 0, len(all))
	for _, gate := range all {
		out = append(out, progression.GateWithStatus{
			Gate:   gate,
			Status: progression.Evaluate(gate, evalCtx),
		})
	}
	return ListResponse{Gates: out}, nil
}

func (u QueryUseCase) Status(ctx context.Context, req StatusRequest) (StatusResponse, error) {
	if strings.TrimSpace(req.GateID) == "" {
		return StatusResponse{}, ErrInvalidRequest
	}
	gate, ok := u.Registry.Get(progression.GateID(req.GateID))
	if !ok {
		return StatusResponse{}, fmt.Errorf("gate %s: %w", req.GateID, ports.ErrNotFound)
	}

	evalCtx, err := u.evalContext(ctx)
	if err != nil {
		return StatusResponse{}, err
	}
	return StatusResponse{Gate: gate, Status: progression.Evaluate(gate, evalCtx)}, nil
}

func (u QueryUseCase) Progress(ctx context.Context, req ProgressRequest) (ProgressResponse, error) {
	status, err := u.Status(ctx, StatusRequest{GateID: req.GateID})
	if err != nil {
		return ProgressResponse{}, err
	}
	return ProgressResponse{
		GateID:        req.GateID,
		Unlocked:      status.Status.Unlocked,
		Progress:      status.Status.Progress,
		Reason:        status.Status.Reason,
		NextThreshold: status.Status.NextThreshold,
	}, nil
}

func (u QueryUseCase) evalContext(ctx context.Context) (progression.EvalContext, error) {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	return u.State.EvalContext(ctx, now)
}
