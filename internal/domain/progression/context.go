package progression

import "time"

// ResourceFame is the ledger key fame milestones read.
const ResourceFame = "fame"

// Entity is the minimum surface a game object must expose to be inspected by
// entity conditions.
type Entity interface {
	EntityID() string
	EntityType() string
}

// Tiered is implemented by entities with an upgrade level (facilities,
// adventurer ranks). Entities without it evaluate as tier 0.
type Tiered interface {
	Tier() int
}

// Subtyped is implemented by entities carrying a secondary discriminator
// (a facility's facility type, an adventurer's class). Entity conditions
// match their target against either the entity id or the subtype.
type Subtyped interface {
	Subtype() string
}

// EvalContext is a read-only, point-in-time view of simulation state for one
// evaluation pass. Entities preserve insertion order so that first-match
// lookups are deterministic. The engine never retains or mutates a context.
type EvalContext struct {
	Entities  []Entity
	Resources map[string]float64
	Now       time.Time
}

// Resource returns the ledger amount for a resource type, 0 when absent.
func (c EvalContext) Resource(resourceType string) float64 {
	return c.Resources[resourceType]
}

// findEntity returns the first entity (in insertion order) whose type matches
// entityType and whose id or subtype equals target.
func (c EvalContext) findEntity(entityType, target string) (Entity, bool) {
	for _, e := range c.Entities {
		if e.EntityType() != entityType {
			continue
		}
		if e.EntityID() == target {
			return e, true
		}
		if s, ok := e.(Subtyped); ok && s.Subtype() == target {
			return e, true
		}
	}
	return nil, false
}

func entityTier(e Entity) int {
	if t, ok := e.(Tiered); ok {
		return t.Tier()
	}
	return 0
}
