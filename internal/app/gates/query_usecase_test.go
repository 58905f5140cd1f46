package gates

import (
	"context"
	"errors"
	"testing"

	statemock "guildhall/internal/adapter/state/mock"
	"guildhall/internal/app/ports"
	"guildhall/internal/domain/progression"
)

func queryUseCase(t *testing.T, resources map[string]float64) QueryUseCase {
	t.Helper()
	return QueryUseCase{
		Registry: tickRegistry(t),
		State:    statemock.Provider{Ctx: progression.EvalContext{Resources: resources}},
	}
}

func TestQuery_ListAllGates(t *testing.T) {
	uc := queryUseCase(t, map[string]float64{"gold": 150})
	resp, err := uc.List(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Gates) != 2 {
		t.Fatalf("expected 2 gates, got %d", len(resp.Gates))
	}
	if !resp.Gates[0].Status.Unlocked || resp.Gates[1].Status.Unlocked {
		t.Fatalf("unexpected statuses: %+v", resp.Gates)
	}
}

func TestQuery_ListFiltersByType(t *testing.T) {
	uc := queryUseCase(t, nil)
	resp, err := uc.List(context.Background(), ListRequest{GateType: "mission-tier"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Gates) != 1 || resp.Gates[0].Gate.ID != "mission-tier-2" {
		t.Fatalf("unexpected filtered gates: %+v", resp.Gates)
	}
}

func TestQuery_StatusUnknownGateIsNotFound(t *testing.T) {
	uc := queryUseCase(t, nil)
	if _, err := uc.Status(context.Background(), StatusRequest{GateID: "no-such-gate"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuery_StatusRejectsEmptyID(t *testing.T) {
	uc := queryUseCase(t, nil)
	if _, err := uc.Status(context.Background(), StatusRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestQuery_Progress(t *testing.T) {
	uc := queryUseCase(t, map[string]float64{"gold": 25})
	resp, err := uc.Progress(context.Background(), ProgressRequest{GateID: "ui-ledger"})
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if resp.Unlocked {
		t.Fatalf("expected locked gate")
	}
	if resp.Progress != 0.25 {
		t.Fatalf("progress = %v, want 0.25", resp.Progress)
	}
	if resp.NextThreshold == nil || resp.NextThreshold.Remaining != 75 {
		t.Fatalf("unexpected next threshold: %+v", resp.NextThreshold)
	}
}

func TestQuery_StateProviderErrorPropagates(t *testing.T) {
	wantErr := errors.New("state down")
	uc := QueryUseCase{
		Registry: tickRegistry(t),
		State:    statemock.Provider{Err: wantErr},
	}
	if _, err := uc.List(context.Background(), ListRequest{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected state error, got %v", err)
	}
	if _, err := uc.Status(context.Background(), StatusRequest{GateID: "ui-ledger"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected state error, got %v", err)
	}
}
