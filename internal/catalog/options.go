package catalog

import (
	"strconv"

	"github.com/akozyrev/fleetdeck/pkg/glossary"
)

// maxTier is the highest tier in the glossary.
const maxTier = 10

// TierOptions returns the fixed tier selector options "1" through "10".
// Tiers are a fixed range rather than derived from the fetched list, so the
// selector is stable even when a localization ships a partial glossary.
func TierOptions() []string {
	options := make([]string, 0, maxTier)
	for tier := 1; tier <= maxTier; tier++ {
		options = append(options, strconv.Itoa(tier))
	}
	return options
}

// NationOptions returns the distinct nation titles present in vehicles, in
// first-seen order. Vehicles without a nation or with an empty title are
// skipped.
func NationOptions(vehicles []glossary.Vehicle) []string {
	seen := make(map[string]bool)
	var options []string
	for _, v := range vehicles {
		if v.Nation == nil || v.Nation.Title == "" {
			continue
		}
		if !seen[v.Nation.Title] {
			seen[v.Nation.Title] = true
			options = append(options, v.Nation.Title)
		}
	}
	return options
}

// TypeOptions returns the distinct type titles present in vehicles, in
// first-seen order. Vehicles without a type or with an empty title are
// skipped.
func TypeOptions(vehicles []glossary.Vehicle) []string {
	seen := make(map[string]bool)
	var options []string
	for _, v := range vehicles {
		if v.Type == nil || v.Type.Title == "" {
			continue
		}
		if !seen[v.Type.Title] {
			seen[v.Type.Title] = true
			options = append(options, v.Type.Title)
		}
	}
	return options
}
