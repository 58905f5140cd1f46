package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

func tierTag(tier int) string {
	return strconv.Itoa(tier)
}

func missionTierID(tier int) string {
	return fmt.Sprintf("mission-tier-%d", tier)
}

func missionTierName(tier int) string {
	return fmt.Sprintf("Tier %d Missions", tier)
}

func facilityTierName(facilityType string, tier int) string {
	return fmt.Sprintf("%s Tier %d", titleCase(facilityType), tier)
}

func recipeName(rarity string) string {
	return titleCase(rarity) + " Recipes"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
