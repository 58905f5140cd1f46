package httpadapter

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"

	eventsinmem "guildhall/internal/adapter/events/inmemory"
	memrepo "guildhall/internal/adapter/repo/memory"
	statemock "guildhall/internal/adapter/state/mock"
	"guildhall/internal/app/gates"
	"guildhall/internal/domain/progression"
)

func testHandler(t *testing.T, resources map[string]float64) (Handler, *eventsinmem.Bus) {
	t.Helper()
	registry := progression.NewRegistry()
	err := registry.RegisterAll([]progression.GateDefinition{
		{
			ID:         "ui-ledger",
			Type:       progression.GateTypeUIPanel,
			Name:       "Trade Ledger",
			Conditions: []progression.Condition{progression.ResourceCondition("gold", 100)},
		},
		{
			ID:   "ui-map",
			Type: progression.GateTypeUIPanel,
			Name: "World Map",
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	provider := statemock.Provider{Ctx: progression.EvalContext{Resources: resources}}
	store := memrepo.NewStore()
	unlockRepo := memrepo.NewUnlockEventRepo(store)
	bus := eventsinmem.NewBus()
	bus.Forward = unlockRepo

	h := Handler{
		GatesUC: gates.QueryUseCase{Registry: registry, State: provider},
		Runner: gates.NewRunner(gates.TickUseCase{
			Registry:  registry,
			State:     provider,
			Publisher: bus,
		}),
		Unlocks: unlockRepo,
	}
	return h, bus
}

func TestGateStatus_KnownGate(t *testing.T) {
	h, _ := testHandler(t, map[string]float64{"gold": 25})
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "ui-ledger"}}

	h.gateStatus(context.Background(), ctx)

	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d, want 200", ctx.Response.StatusCode())
	}
	var body gates.StatusResponse
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status.Unlocked {
		t.Fatalf("expected locked gate at 25 gold")
	}
	if body.Status.Reason != "Need 100 gold, have 25" {
		t.Fatalf("unexpected reason: %q", body.Status.Reason)
	}
}

func TestGateStatus_UnknownGateIs404(t *testing.T) {
	h, _ := testHandler(t, nil)
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "no-such-gate"}}

	h.gateStatus(context.Background(), ctx)

	if ctx.Response.StatusCode() != consts.StatusNotFound {
		t.Fatalf("status = %d, want 404", ctx.Response.StatusCode())
	}
	var body errorBody
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "not_found" {
		t.Fatalf("unexpected error code: %q", body.Error)
	}
}

func TestGateProgress_NextThreshold(t *testing.T) {
	h, _ := testHandler(t, map[string]float64{"gold": 25})
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "ui-ledger"}}

	h.gateProgress(context.Background(), ctx)

	var body gates.ProgressResponse
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Progress != 0.25 {
		t.Fatalf("progress = %v, want 0.25", body.Progress)
	}
	if body.NextThreshold == nil || body.NextThreshold.Remaining != 75 {
		t.Fatalf("unexpected next threshold: %+v", body.NextThreshold)
	}
}

func TestListGates_FilterByType(t *testing.T) {
	h, _ := testHandler(t, nil)
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/gates?type=ui-panel")

	h.listGates(context.Background(), ctx)

	var body gates.ListResponse
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Gates) != 2 {
		t.Fatalf("expected 2 ui gates, got %d", len(body.Gates))
	}
}

func TestTickEndpoint_EmitsUnlocksOnce(t *testing.T) {
	h, bus := testHandler(t, map[string]float64{"gold": 150})

	first := &app.RequestContext{}
	h.tick(context.Background(), first)
	if first.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d, want 200", first.Response.StatusCode())
	}
	var firstBody tickResponse
	if err := json.Unmarshal(first.Response.Body(), &firstBody); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	// ui-ledger (gold satisfied) and ui-map (unconditional) both unlock.
	if len(firstBody.Unlocked) != 2 {
		t.Fatalf("expected 2 unlocks, got %d", len(firstBody.Unlocked))
	}

	second := &app.RequestContext{}
	h.tick(context.Background(), second)
	var secondBody tickResponse
	if err := json.Unmarshal(second.Response.Body(), &secondBody); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(secondBody.Unlocked) != 0 {
		t.Fatalf("expected no unlocks on second tick, got %d", len(secondBody.Unlocked))
	}
	if len(bus.Published()) != 2 {
		t.Fatalf("expected 2 published events total, got %d", len(bus.Published()))
	}
}

func TestUnlocksEndpoint_ListsPersistedEvents(t *testing.T) {
	h, _ := testHandler(t, map[string]float64{"gold": 150})

	tickCtx := &app.RequestContext{}
	h.tick(context.Background(), tickCtx)

	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/ops/unlocks?limit=10")
	h.unlocks(context.Background(), ctx)

	var body unlocksResponse
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Events) != 2 {
		t.Fatalf("expected 2 events in the log, got %d", len(body.Events))
	}
}
