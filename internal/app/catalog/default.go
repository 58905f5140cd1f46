package catalog

import "guildhall/internal/domain/progression"

// Default returns the built-in gate catalogue for the guildhall game: UI
// panels, mission tiers, per-facility tier ceilings, construction unlocks,
// caravan types, crafting recipes by rarity, resource slots and regions.
// The host registers it once at startup; a YAML catalogue (Load) can replace
// or extend it.
func Default() []progression.GateDefinition {
	gates := []progression.GateDefinition{}
	gates = append(gates, uiPanelGates()...)
	gates = append(gates, missionTierGates()...)
	gates = append(gates, facilityTierGates()...)
	gates = append(gates, facilityBuildGates()...)
	gates = append(gates, caravanGates()...)
	gates = append(gates, recipeGates()...)
	gates = append(gates, resourceSlotGates()...)
	gates = append(gates, regionGates()...)
	return gates
}

func uiPanelGates() []progression.GateDefinition {
	return []progression.GateDefinition{
		{
			ID:       "ui-missions",
			Type:     progression.GateTypeUIPanel,
			Name:     "Missions Panel",
			Priority: 10,
			Metadata: &progression.GateMetadata{Icon: "scroll", Category: "ui"},
			// Open from the start.
		},
		{
			ID:         "ui-facilities",
			Type:       progression.GateTypeUIPanel,
			Name:       "Facilities Panel",
			Priority:   20,
			Metadata:   &progression.GateMetadata{Icon: "hammer", Category: "ui"},
			Conditions: []progression.Condition{progression.ResourceCondition("gold", 50)},
		},
		{
			ID:       "ui-caravans",
			Type:     progression.GateTypeUIPanel,
			Name:     "Caravans Panel",
			Priority: 30,
			Metadata: &progression.GateMetadata{Icon: "wagon", Category: "ui"},
			Conditions: []progression.Condition{
				progression.FameMilestoneCondition(50),
				progression.EntityExistsCondition("facility", "stable"),
			},
		},
		{
			ID:         "ui-crafting",
			Type:       progression.GateTypeUIPanel,
			Name:       "Crafting Panel",
			Priority:   40,
			Metadata:   &progression.GateMetadata{Icon: "anvil", Category: "ui"},
			Conditions: []progression.Condition{progression.EntityExistsCondition("facility", "forge")},
			Alternatives: [][]progression.Condition{
				{progression.FameMilestoneCondition(200)},
			},
		},
		{
			ID:         "ui-ledger",
			Type:       progression.GateTypeUIPanel,
			Name:       "Trade Ledger",
			Priority:   50,
			Metadata:   &progression.GateMetadata{Icon: "book", Category: "ui", Tags: []string{"economy"}},
			Conditions: []progression.Condition{progression.ResourceCondition("gold", 500)},
		},
	}
}

func missionTierGates() []progression.GateDefinition {
	thresholds := []struct {
		tier int
		fame float64
	}{
		{2, 100},
		{3, 400},
		{4, 1200},
		{5, 3000},
	}

	gates := make([]progression.GateDefinition, 0, len(thresholds))
	for _, t := range thresholds {
		gates = append(gates, progression.GateDefinition{
			ID:         progression.GateID(missionTierID(t.tier)),
			Type:       progression.GateTypeMissionTier,
			Name:       missionTierName(t.tier),
			Priority:   100 + t.tier,
			Metadata:   &progression.GateMetadata{Category: "missions", Tags: []string{tierTag(t.tier)}},
			Conditions: []progression.Condition{progression.FameMilestoneCondition(t.fame)},
		})
	}
	return gates
}

// facilityTierGates produce one gate per facility type and tier ceiling:
// upgrading a facility past a tier requires the guild hall itself to keep
// pace, plus a gold reserve that grows with the tier.
func facilityTierGates() []progression.GateDefinition {
	facilityTypes := []string{"tavern", "forge", "stable", "infirmary", "warehouse"}
	gates := []progression.GateDefinition{}
	for _, ft := range facilityTypes {
		for tier := 2; tier <= 4; tier++ {
			gates = append(gates, progression.GateDefinition{
				ID:       progression.GateID("facility-" + ft + "-tier-" + tierTag(tier)),
				Type:     progression.GateTypeFacilityTier,
				Name:     facilityTierName(ft, tier),
				Priority: 200 + tier,
				Metadata: &progression.GateMetadata{Category: "facilities", Tags: []string{ft, tierTag(tier)}},
				Conditions: []progression.Condition{
					progression.EntityTierCondition("facility", "guildhall", float64(tier-1)),
					progression.ResourceCondition("gold", float64(tier)*250),
				},
			})
		}
	}
	return gates
}

func facilityBuildGates() []progression.GateDefinition {
	return []progression.GateDefinition{
		{
			ID:         "build-tavern",
			Type:       progression.GateTypeFacilityBuild,
			Name:       "Build: Tavern",
			Metadata:   &progression.GateMetadata{Category: "construction", Tags: []string{"tavern"}},
			Conditions: []progression.Condition{progression.ResourceCondition("timber", 40)},
		},
		{
			ID:   "build-forge",
			Type: progression.GateTypeFacilityBuild,
			Name: "Build: Forge",
			Metadata: &progression.GateMetadata{Category: "construction", Tags: []string{"forge"}},
			Conditions: []progression.Condition{
				progression.ResourceCondition("stone", 60),
				progression.ResourceCondition("iron", 20),
			},
		},
		{
			ID:   "build-stable",
			Type: progression.GateTypeFacilityBuild,
			Name: "Build: Stable",
			Metadata: &progression.GateMetadata{Category: "construction", Tags: []string{"stable"}},
			Conditions: []progression.Condition{
				progression.ResourceCondition("timber", 80),
				progression.FameMilestoneCondition(30),
			},
		},
		{
			ID:   "build-infirmary",
			Type: progression.GateTypeFacilityBuild,
			Name: "Build: Infirmary",
			Metadata: &progression.GateMetadata{Category: "construction", Tags: []string{"infirmary"}},
			Conditions: []progression.Condition{
				progression.AllConditions(
					progression.ResourceCondition("stone", 100),
					progression.ResourceCondition("herbs", 25),
				),
				progression.EntityTierCondition("facility", "guildhall", 2),
			},
		},
	}
}

func caravanGates() []progression.GateDefinition {
	return []progression.GateDefinition{
		{
			ID:         "caravan-local",
			Type:       progression.GateTypeCaravanType,
			Name:       "Local Caravan Route",
			Metadata:   &progression.GateMetadata{Category: "caravans", Tags: []string{"local"}},
			Conditions: []progression.Condition{progression.EntityExistsCondition("facility", "stable")},
		},
		{
			ID:       "caravan-regional",
			Type:     progression.GateTypeCaravanType,
			Name:     "Regional Caravan Route",
			Metadata: &progression.GateMetadata{Category: "caravans", Tags: []string{"regional"}},
			Conditions: []progression.Condition{
				progression.EntityTierCondition("facility", "stable", 2),
				progression.FameMilestoneCondition(150),
			},
		},
		{
			ID:       "caravan-royal",
			Type:     progression.GateTypeCaravanType,
			Name:     "Royal Caravan Route",
			Metadata: &progression.GateMetadata{Category: "caravans", Tags: []string{"royal"}},
			Conditions: []progression.Condition{
				progression.EntityTierCondition("facility", "stable", 3),
				progression.FameMilestoneCondition(800),
			},
			Alternatives: [][]progression.Condition{
				{
					progression.ResourceCondition("gold", 5000),
					progression.EntityExistsCondition("caravan", "regional"),
				},
			},
		},
	}
}

func recipeGates() []progression.GateDefinition {
	rarities := []struct {
		rarity    string
		forgeTier float64
		fame      float64
	}{
		{"common", 1, 0},
		{"uncommon", 2, 100},
		{"rare", 3, 500},
		{"epic", 4, 2000},
	}

	gates := make([]progression.GateDefinition, 0, len(rarities))
	for _, r := range rarities {
		conditions := []progression.Condition{
			progression.EntityTierCondition("facility", "forge", r.forgeTier),
		}
		if r.fame > 0 {
			conditions = append(conditions, progression.FameMilestoneCondition(r.fame))
		}
		gates = append(gates, progression.GateDefinition{
			ID:         progression.GateID("recipes-" + r.rarity),
			Type:       progression.GateTypeCraftingRecipe,
			Name:       recipeName(r.rarity),
			Metadata:   &progression.GateMetadata{Category: "crafting", Tags: []string{r.rarity}},
			Conditions: conditions,
		})
	}
	return gates
}

func resourceSlotGates() []progression.GateDefinition {
	return []progression.GateDefinition{
		{
			ID:         "slot-herbs",
			Type:       progression.GateTypeResourceSlot,
			Name:       "Herb Storage",
			Metadata:   &progression.GateMetadata{Category: "storage"},
			Conditions: []progression.Condition{progression.EntityExistsCondition("facility", "warehouse")},
		},
		{
			ID:         "slot-gems",
			Type:       progression.GateTypeResourceSlot,
			Name:       "Gem Vault",
			Metadata:   &progression.GateMetadata{Category: "storage"},
			Conditions: []progression.Condition{progression.EntityTierCondition("facility", "warehouse", 3)},
		},
	}
}

func regionGates() []progression.GateDefinition {
	return []progression.GateDefinition{
		{
			ID:       "region-highlands",
			Type:     progression.GateTypeRegion,
			Name:     "The Highlands",
			Metadata: &progression.GateMetadata{Category: "map"},
			Conditions: []progression.Condition{
				progression.FameMilestoneCondition(250),
				progression.EntityExistsCondition("adventurer", "ranger"),
			},
		},
		{
			ID:       "region-sunken-coast",
			Type:     progression.GateTypeRegion,
			Name:     "The Sunken Coast",
			Metadata: &progression.GateMetadata{Category: "map"},
			Conditions: []progression.Condition{
				progression.ExprCondition(`Fame() >= 600 && (HasEntity("caravan", "regional") || Resource("gold") >= 2500)`),
			},
		},
	}
}
