package guild

import (
	"time"

	"guildhall/internal/domain/progression"
)

// Entity type discriminators used by gate conditions.
const (
	EntityFacility   = "facility"
	EntityAdventurer = "adventurer"
	EntityCaravan    = "caravan"
)

// Facility is a guild building with an upgrade tier. FacilityType is the
// secondary discriminator gate conditions match against ("tavern", "forge").
type Facility struct {
	ID           string    `json:"id"`
	FacilityType string    `json:"facility_type"`
	TierLevel    int       `json:"tier"`
	BuiltAt      time.Time `json:"built_at,omitempty"`
}

func (f Facility) EntityID() string   { return f.ID }
func (f Facility) EntityType() string { return EntityFacility }
func (f Facility) Tier() int          { return f.TierLevel }
func (f Facility) Subtype() string    { return f.FacilityType }

// Adventurer is a guild member; Rank plays the role of a tier and Class the
// role of a subtype for gate conditions.
type Adventurer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Rank  int    `json:"rank"`
}

func (a Adventurer) EntityID() string   { return a.ID }
func (a Adventurer) EntityType() string { return EntityAdventurer }
func (a Adventurer) Tier() int          { return a.Rank }
func (a Adventurer) Subtype() string    { return a.Class }

// Caravan is a trade route vehicle. Caravans carry no tier; existence checks
// match on the route kind.
type Caravan struct {
	ID        string `json:"id"`
	RouteKind string `json:"route_kind"`
}

func (c Caravan) EntityID() string   { return c.ID }
func (c Caravan) EntityType() string { return EntityCaravan }
func (c Caravan) Subtype() string    { return c.RouteKind }

// State is the guild aggregate the gating engine inspects: the resource
// ledger plus every gate-visible game object. Slices preserve creation order,
// which fixes the first-match order of entity lookups.
type State struct {
	Resources   map[string]float64 `json:"resources"`
	Facilities  []Facility         `json:"facilities"`
	Adventurers []Adventurer       `json:"adventurers"`
	Caravans    []Caravan          `json:"caravans"`
	Version     int64              `json:"version"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// EvalContext derives a point-in-time evaluation context from the state.
// Facilities come first, then adventurers, then caravans, each in creation
// order.
func (s State) EvalContext(now time.Time) progression.EvalContext {
	entities := make([]progression.Entity, 0, len(s.Facilities)+len(s.Adventurers)+len(s.Caravans))
	for _, f := range s.Facilities {
		entities = append(entities, f)
	}
	for _, a := range s.Adventurers {
		entities = append(entities, a)
	}
	for _, c := range s.Caravans {
		entities = append(entities, c)
	}

	resources := make(map[string]float64, len(s.Resources))
	for k, v := range s.Resources {
		resources[k] = v
	}

	return progression.EvalContext{
		Entities:  entities,
		Resources: resources,
		Now:       now,
	}
}

var (
	_ progression.Entity   = Facility{}
	_ progression.Tiered   = Facility{}
	_ progression.Subtyped = Facility{}
	_ progression.Entity   = Adventurer{}
	_ progression.Tiered   = Adventurer{}
	_ progression.Subtyped = Caravan{}
)
