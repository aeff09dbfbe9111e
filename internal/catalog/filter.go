// Package catalog holds the filtering core of the vehicle catalog: filter
// state parsed from a request, predicate evaluation, and the derivation of
// the option sets that populate the filter selectors.
package catalog

import (
	"strconv"

	"github.com/akozyrev/fleetdeck/pkg/glossary"
)

// Filter holds the three independent optional selections. An empty field
// means "no constraint". Tier is the decimal string form of Vehicle.Level.
type Filter struct {
	Tier   string
	Nation string
	Type   string
}

// IsZero reports whether no selection is active.
func (f Filter) IsZero() bool {
	return f.Tier == "" && f.Nation == "" && f.Type == ""
}

// Match reports whether v passes every active selection. Comparison is
// exact and case-sensitive. A vehicle without a nation or type never
// matches when the corresponding selection is active.
func (f Filter) Match(v glossary.Vehicle) bool {
	if f.Tier != "" && strconv.Itoa(v.Level) != f.Tier {
		return false
	}
	if f.Nation != "" && (v.Nation == nil || v.Nation.Title != f.Nation) {
		return false
	}
	if f.Type != "" && (v.Type == nil || v.Type.Title != f.Type) {
		return false
	}
	return true
}

// Apply returns the vehicles passing the filter, preserving input order.
func (f Filter) Apply(vehicles []glossary.Vehicle) []glossary.Vehicle {
	if f.IsZero() {
		return vehicles
	}
	matched := make([]glossary.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if f.Match(v) {
			matched = append(matched, v)
		}
	}
	return matched
}
