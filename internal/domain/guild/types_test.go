package guild

import (
	"testing"
	"time"

	"guildhall/internal/domain/progression"
)

func TestState_EvalContextOrdering(t *testing.T) {
	state := State{
		Resources: map[string]float64{"gold": 120, "fame": 30},
		Facilities: []Facility{
			{ID: "guildhall", FacilityType: "guildhall", TierLevel: 2},
			{ID: "tavern-1", FacilityType: "tavern", TierLevel: 1},
		},
		Adventurers: []Adventurer{
			{ID: "adv-1", Name: "Brannic", Class: "warrior", Rank: 3},
		},
		Caravans: []Caravan{
			{ID: "caravan-1", RouteKind: "local"},
		},
	}

	now := time.Now()
	ctx := state.EvalContext(now)

	if len(ctx.Entities) != 4 {
		t.Fatalf("expected 4 entities, got %d", len(ctx.Entities))
	}
	wantOrder := []string{"guildhall", "tavern-1", "adv-1", "caravan-1"}
	for i, id := range wantOrder {
		if ctx.Entities[i].EntityID() != id {
			t.Fatalf("position %d: got %s, want %s", i, ctx.Entities[i].EntityID(), id)
		}
	}
	if ctx.Resource("gold") != 120 {
		t.Fatalf("gold = %v, want 120", ctx.Resource("gold"))
	}
	if !ctx.Now.Equal(now) {
		t.Fatalf("context timestamp not carried")
	}
}

func TestState_EvalContextCopiesResources(t *testing.T) {
	state := State{Resources: map[string]float64{"gold": 10}}
	ctx := state.EvalContext(time.Now())
	ctx.Resources["gold"] = 999
	if state.Resources["gold"] != 10 {
		t.Fatalf("evaluation context must not alias live state")
	}
}

func TestEntitiesSatisfyGateConditions(t *testing.T) {
	state := State{
		Facilities:  []Facility{{ID: "forge-1", FacilityType: "forge", TierLevel: 3}},
		Adventurers: []Adventurer{{ID: "adv-1", Class: "ranger", Rank: 2}},
	}
	ctx := state.EvalContext(time.Now())

	tier := progression.EvaluateCondition(progression.EntityTierCondition("facility", "forge", 3), ctx)
	if !tier.Satisfied {
		t.Fatalf("expected forge tier condition satisfied: %+v", tier)
	}
	class := progression.EvaluateCondition(progression.EntityExistsCondition("adventurer", "ranger"), ctx)
	if !class.Satisfied {
		t.Fatalf("expected ranger existence condition satisfied: %+v", class)
	}
	rank := progression.EvaluateCondition(progression.EntityTierCondition("adventurer", "ranger", 4), ctx)
	if rank.Satisfied {
		t.Fatalf("expected rank condition unsatisfied at rank 2")
	}
}
