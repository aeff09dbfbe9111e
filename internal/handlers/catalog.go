package handlers

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/akozyrev/fleetdeck/internal/catalog"
	"github.com/akozyrev/fleetdeck/pkg/glossary"
)

// fetchErrorPrefix prefixes the rendered message for any glossary failure.
const fetchErrorPrefix = "Failed to load vehicles: "

// Display fallbacks for entries missing optional metadata.
const (
	placeholderIcon = "/static/img/ship-placeholder.svg"
	fallbackLabel   = "—"
	fallbackColor   = "#8a919c"
)

// VehicleCard is one rendered catalog entry with all fallbacks applied.
type VehicleCard struct {
	Title       string
	Description string
	Icon        string
	Tier        string
	TypeTitle   string
	NationTitle string
	NationColor string
}

// CatalogPageData is the template payload for the catalog page. When Error
// is set the template renders only the error message.
type CatalogPageData struct {
	Title         string
	Error         string
	Filter        catalog.Filter
	TierOptions   []string
	NationOptions []string
	TypeOptions   []string
	Cards         []VehicleCard
}

// parseFilter builds a Filter from the request query parameters. A tier
// value outside the fixed option set is treated as unset, matching the
// selector's state machine (states are unset or a value from the option
// set).
func parseFilter(r *http.Request) catalog.Filter {
	f := catalog.Filter{
		Tier:   r.URL.Query().Get("tier"),
		Nation: r.URL.Query().Get("nation"),
		Type:   r.URL.Query().Get("type"),
	}
	if f.Tier != "" && !slices.Contains(catalog.TierOptions(), f.Tier) {
		f.Tier = ""
	}
	return f
}

// newVehicleCard converts a glossary vehicle into its rendered card form
func newVehicleCard(v glossary.Vehicle) VehicleCard {
	card := VehicleCard{
		Title:       v.Title,
		Description: v.Description,
		Icon:        v.Icons.Medium,
		Tier:        fmt.Sprintf("Tier %d", v.Level),
		TypeTitle:   fallbackLabel,
		NationTitle: fallbackLabel,
		NationColor: fallbackColor,
	}
	if card.Icon == "" {
		card.Icon = v.Icons.Large
	}
	if card.Icon == "" {
		card.Icon = placeholderIcon
	}
	if v.Type != nil && v.Type.Title != "" {
		card.TypeTitle = v.Type.Title
	}
	if v.Nation != nil && v.Nation.Title != "" {
		card.NationTitle = v.Nation.Title
		if v.Nation.Color != "" {
			card.NationColor = v.Nation.Color
		}
	}
	return card
}

// handleCatalogPage renders the filterable card grid. Filter state lives in
// the query parameters, so the page is a pure function of the fetched list
// and the request URL.
func (h *Handlers) handleCatalogPage(w http.ResponseWriter, r *http.Request) {
	data := CatalogPageData{Title: "FleetDeck"}

	vehicles, err := h.Catalog.Vehicles(r.Context(), h.languageCode)
	if err != nil {
		data.Error = fetchErrorPrefix + err.Error()
		w.WriteHeader(http.StatusBadGateway)
		h.templates.Catalog.Execute(w, data)
		return
	}

	filter := parseFilter(r)
	data.Filter = filter
	data.TierOptions = catalog.TierOptions()
	data.NationOptions = catalog.NationOptions(vehicles)
	data.TypeOptions = catalog.TypeOptions(vehicles)

	for _, v := range filter.Apply(vehicles) {
		data.Cards = append(data.Cards, newVehicleCard(v))
	}

	h.templates.Catalog.Execute(w, data)
}

// handleAPIVehicles returns the filtered vehicle list as JSON. The same
// tier/nation/type query parameters apply.
func (h *Handlers) handleAPIVehicles(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = h.languageCode
	}

	vehicles, err := h.Catalog.Vehicles(r.Context(), lang)
	if err != nil {
		respondError(w, err)
		return
	}

	filtered := parseFilter(r).Apply(vehicles)
	respondOK(w, map[string]any{"vehicles": filtered})
}

// handleHealthz reports liveness
func (h *Handlers) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]string{"status": "ok"})
}
