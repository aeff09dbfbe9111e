package glossary

import (
	"context"
)

// MockClient is a mock glossary client for testing
type MockClient struct {
	vehicles    []Vehicle
	endpointURL string
	fetchErr    error

	// lastLanguageCode records the language code of the most recent call (for testing)
	lastLanguageCode string
}

// MockOption configures the mock client
type MockOption func(*MockClient)

// WithVehicles sets the vehicles to return
func WithVehicles(vehicles []Vehicle) MockOption {
	return func(m *MockClient) {
		m.vehicles = vehicles
	}
}

// WithFetchError sets an error to return from Vehicles
func WithFetchError(err error) MockOption {
	return func(m *MockClient) {
		m.fetchErr = err
	}
}

// WithEndpointURL sets the endpoint URL
func WithEndpointURL(url string) MockOption {
	return func(m *MockClient) {
		m.endpointURL = url
	}
}

// NewMockClient creates a new mock glossary client
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{
		endpointURL: "http://mock-glossary.local/graphql",
		vehicles:    DefaultMockVehicles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EndpointURL returns the configured endpoint URL
func (m *MockClient) EndpointURL() string {
	return m.endpointURL
}

// SetEndpointURL updates the endpoint URL
func (m *MockClient) SetEndpointURL(url string) {
	m.endpointURL = url
}

// Vehicles returns the configured mock vehicles or error
func (m *MockClient) Vehicles(ctx context.Context, languageCode string) ([]Vehicle, error) {
	if languageCode == "" {
		languageCode = DefaultLanguageCode
	}
	m.lastLanguageCode = languageCode
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.vehicles, nil
}

// LastLanguageCode returns the language code of the most recent Vehicles call (for testing)
func (m *MockClient) LastLanguageCode() string {
	return m.lastLanguageCode
}

// DefaultMockVehicles returns a small sample fleet for testing
func DefaultMockVehicles() []Vehicle {
	cruiser := VehicleType{Name: "cruiser", Title: "Cruiser"}
	destroyer := VehicleType{Name: "destroyer", Title: "Destroyer"}
	battleship := VehicleType{Name: "battleship", Title: "Battleship"}

	ussr := Nation{Name: "ussr", Title: "USSR", Color: "#bd0000"}
	usa := Nation{Name: "usa", Title: "USA", Color: "#3a66be"}
	japan := Nation{Name: "japan", Title: "Japan", Color: "#af0834"}

	return []Vehicle{
		{
			Title:       "Kirov",
			Description: "Light cruiser with high speed and long-range artillery.",
			Icons:       VehicleIcons{Large: "https://glossary.local/icons/kirov_large.png", Medium: "https://glossary.local/icons/kirov.png"},
			Level:       5,
			Type:        &cruiser,
			Nation:      &ussr,
		},
		{
			Title:       "Gnevny",
			Description: "Destroyer armed with quick-firing main guns.",
			Icons:       VehicleIcons{Large: "https://glossary.local/icons/gnevny_large.png", Medium: "https://glossary.local/icons/gnevny.png"},
			Level:       5,
			Type:        &destroyer,
			Nation:      &ussr,
		},
		{
			Title:       "Farragut",
			Description: "Versatile destroyer with strong torpedo armament.",
			Icons:       VehicleIcons{Large: "https://glossary.local/icons/farragut_large.png", Medium: "https://glossary.local/icons/farragut.png"},
			Level:       6,
			Type:        &destroyer,
			Nation:      &usa,
		},
		{
			Title:       "New Mexico",
			Description: "Battleship with heavy armor and a powerful main battery.",
			Icons:       VehicleIcons{Large: "https://glossary.local/icons/new_mexico_large.png", Medium: "https://glossary.local/icons/new_mexico.png"},
			Level:       6,
			Type:        &battleship,
			Nation:      &usa,
		},
		{
			Title:       "Myoko",
			Description: "Heavy cruiser carrying long-range torpedoes.",
			Icons:       VehicleIcons{Large: "https://glossary.local/icons/myoko_large.png", Medium: "https://glossary.local/icons/myoko.png"},
			Level:       7,
			Type:        &cruiser,
			Nation:      &japan,
		},
		{
			// Glossary entries are occasionally published before their type
			// and nation metadata; the viewer must tolerate both being nil.
			Title: "Prototype X",
			Icons: VehicleIcons{},
			Level: 8,
		},
	}
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)
