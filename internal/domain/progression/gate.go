package progression

// GateID uniquely identifies a gate within a registry.
type GateID string

// GateType groups gates for queries. It carries no evaluation semantics.
type GateType string

const (
	GateTypeUIPanel        GateType = "ui-panel"
	GateTypeMissionTier    GateType = "mission-tier"
	GateTypeFacilityTier   GateType = "facility-tier"
	GateTypeFacilityBuild  GateType = "facility-build"
	GateTypeResourceSlot   GateType = "resource-slot"
	GateTypeCaravanType    GateType = "caravan-type"
	GateTypeCraftingRecipe GateType = "crafting-recipe"
	GateTypeRegion         GateType = "region"
	GateTypeCustom         GateType = "custom"
)

// ConditionKind discriminates condition evaluation. Kinds outside the known
// set are accepted structurally but always evaluate to unsatisfied.
type ConditionKind string

const (
	ConditionResource      ConditionKind = "resource"
	ConditionEntityTier    ConditionKind = "entity-tier"
	ConditionEntityExists  ConditionKind = "entity-exists"
	ConditionFameMilestone ConditionKind = "fame-milestone"
	ConditionAll           ConditionKind = "all"
	ConditionAny           ConditionKind = "any"
	ConditionExpr          ConditionKind = "expr"
)

// Condition is a declarative predicate over simulation state. Params hold
// kind-specific values; Nested holds sub-conditions for all/any composites.
type Condition struct {
	Kind        ConditionKind  `json:"kind" yaml:"kind"`
	Params      map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	Nested      []Condition    `json:"nested,omitempty" yaml:"nested,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
}

// GateMetadata carries display hints and free-form tags. It is only read by
// metadata search and by callers; evaluation ignores it.
type GateMetadata struct {
	Icon     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// GateDefinition describes one conditionally-unlockable capability.
//
// Conditions is the required set (implicit AND; empty means unconditionally
// unlocked). Alternatives is an OR of AND-lists: satisfying every condition
// in any one alternative set unlocks the gate even when the required set
// fails. Definitions are built once at startup and treated as immutable.
type GateDefinition struct {
	ID           GateID        `json:"id" yaml:"id"`
	Type         GateType      `json:"type" yaml:"type"`
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	Conditions   []Condition   `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Alternatives [][]Condition `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Priority     int           `json:"priority,omitempty" yaml:"priority,omitempty"`
	Metadata     *GateMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Condition constructors used by catalogue code. They keep the param keys in
// one place; conditions built by hand (or parsed from YAML) use the same keys.

func ResourceCondition(resourceType string, minAmount float64) Condition {
	return Condition{Kind: ConditionResource, Params: map[string]any{
		"resourceType": resourceType,
		"minAmount":    minAmount,
	}}
}

func EntityTierCondition(entityType, target string, minTier float64) Condition {
	return Condition{Kind: ConditionEntityTier, Params: map[string]any{
		"entityType": entityType,
		"target":     target,
		"minTier":    minTier,
	}}
}

func EntityExistsCondition(entityType, target string) Condition {
	return Condition{Kind: ConditionEntityExists, Params: map[string]any{
		"entityType": entityType,
		"target":     target,
	}}
}

func FameMilestoneCondition(minFame float64) Condition {
	return Condition{Kind: ConditionFameMilestone, Params: map[string]any{
		"minFame": minFame,
	}}
}

func AllConditions(nested ...Condition) Condition {
	return Condition{Kind: ConditionAll, Nested: nested}
}

func AnyCondition(nested ...Condition) Condition {
	return Condition{Kind: ConditionAny, Nested: nested}
}

func ExprCondition(source string) Condition {
	return Condition{Kind: ConditionExpr, Params: map[string]any{
		"source": source,
	}}
}
