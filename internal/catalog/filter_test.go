package catalog_test

import (
	"reflect"
	"testing"

	"github.com/akozyrev/fleetdeck/internal/catalog"
	"github.com/akozyrev/fleetdeck/pkg/glossary"
)

func vehicle(title string, level int, nation, vtype string) glossary.Vehicle {
	v := glossary.Vehicle{Title: title, Level: level}
	if nation != "" {
		v.Nation = &glossary.Nation{Name: nation, Title: nation}
	}
	if vtype != "" {
		v.Type = &glossary.VehicleType{Name: vtype, Title: vtype}
	}
	return v
}

func titles(vehicles []glossary.Vehicle) []string {
	out := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.Title)
	}
	return out
}

func TestFilter_Match(t *testing.T) {
	ussrCruiser := vehicle("Kirov", 5, "USSR", "Cruiser")
	usaDestroyer := vehicle("Farragut", 6, "USA", "Destroyer")
	orphan := vehicle("Prototype X", 8, "", "")

	tests := []struct {
		name    string
		filter  catalog.Filter
		vehicle glossary.Vehicle
		want    bool
	}{
		{"empty filter matches anything", catalog.Filter{}, ussrCruiser, true},
		{"empty filter matches orphan", catalog.Filter{}, orphan, true},
		{"tier match", catalog.Filter{Tier: "5"}, ussrCruiser, true},
		{"tier mismatch", catalog.Filter{Tier: "7"}, ussrCruiser, false},
		{"nation match", catalog.Filter{Nation: "USSR"}, ussrCruiser, true},
		{"nation mismatch", catalog.Filter{Nation: "USA"}, ussrCruiser, false},
		{"nation filter is case-sensitive", catalog.Filter{Nation: "ussr"}, ussrCruiser, false},
		{"type match", catalog.Filter{Type: "Destroyer"}, usaDestroyer, true},
		{"type mismatch", catalog.Filter{Type: "Cruiser"}, usaDestroyer, false},
		{"all three match", catalog.Filter{Tier: "5", Nation: "USSR", Type: "Cruiser"}, ussrCruiser, true},
		{"conjunction fails on one mismatch", catalog.Filter{Tier: "5", Nation: "USSR", Type: "Destroyer"}, ussrCruiser, false},
		{"missing nation never matches active nation filter", catalog.Filter{Nation: "USA"}, orphan, false},
		{"missing type never matches active type filter", catalog.Filter{Type: "Cruiser"}, orphan, false},
		{"orphan still matches on tier alone", catalog.Filter{Tier: "8"}, orphan, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.vehicle); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply_Scenarios(t *testing.T) {
	fleet := []glossary.Vehicle{
		vehicle("Kirov", 5, "USSR", "Cruiser"),
		vehicle("Farragut", 5, "USA", "Destroyer"),
	}

	tests := []struct {
		name   string
		filter catalog.Filter
		want   []string
	}{
		{"tier 5 keeps both", catalog.Filter{Tier: "5"}, []string{"Kirov", "Farragut"}},
		{"tier 5 and USA keeps one", catalog.Filter{Tier: "5", Nation: "USA"}, []string{"Farragut"}},
		{"tier 7 keeps none", catalog.Filter{Tier: "7"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(tt.filter.Apply(fleet))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply_EmptyFilterIsIdentity(t *testing.T) {
	fleet := glossary.DefaultMockVehicles()

	got := catalog.Filter{}.Apply(fleet)
	if !reflect.DeepEqual(got, fleet) {
		t.Error("empty filter should return the input list unchanged")
	}
}

func TestFilter_Apply_Idempotent(t *testing.T) {
	fleet := glossary.DefaultMockVehicles()
	f := catalog.Filter{Tier: "5", Nation: "USSR"}

	once := f.Apply(fleet)
	twice := f.Apply(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Apply should be idempotent: first %v, second %v", titles(once), titles(twice))
	}
}

func TestFilter_Apply_ResultIsSubset(t *testing.T) {
	fleet := glossary.DefaultMockVehicles()
	f := catalog.Filter{Type: "Destroyer"}

	for _, v := range f.Apply(fleet) {
		if !f.Match(v) {
			t.Errorf("result contains %q which does not satisfy the filter", v.Title)
		}
		found := false
		for _, orig := range fleet {
			if orig.Title == v.Title {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("result contains %q which is not in the input list", v.Title)
		}
	}
}

func TestFilter_Apply_MissingNationExcludedOnlyWhenActive(t *testing.T) {
	fleet := []glossary.Vehicle{
		vehicle("Kirov", 5, "USSR", "Cruiser"),
		vehicle("Prototype X", 8, "", ""),
	}

	withNation := catalog.Filter{Nation: "USA"}.Apply(fleet)
	if len(withNation) != 0 {
		t.Errorf("expected no matches for nation USA, got %v", titles(withNation))
	}

	unfiltered := catalog.Filter{}.Apply(fleet)
	if len(unfiltered) != 2 {
		t.Errorf("expected orphan included without filter, got %v", titles(unfiltered))
	}
}

func TestFilter_IsZero(t *testing.T) {
	if !(catalog.Filter{}).IsZero() {
		t.Error("zero filter should report IsZero")
	}
	if (catalog.Filter{Tier: "3"}).IsZero() {
		t.Error("filter with a tier selection should not report IsZero")
	}
}
