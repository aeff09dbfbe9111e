// Package glossary provides a client for the remote warship glossary GraphQL endpoint.
package glossary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akozyrev/fleetdeck/internal/logger"
)

// DefaultLanguageCode is used when no language code is supplied.
const DefaultLanguageCode = "ru"

// vehiclesQuery is the single query document this client issues. The endpoint
// returns the full vehicle list in one response; there is no pagination.
const vehiclesQuery = `query Vehicles($languageCode: String) {
  vehicles(lang: $languageCode) {
    title
    description
    icons { large medium }
    level
    type { name title icons { default } }
    nation { name title color icons { small medium large } }
  }
}`

// VehicleIcons holds the image references for a vehicle card.
type VehicleIcons struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
}

// TypeIcons holds the image references for a vehicle type badge.
type TypeIcons struct {
	Default string `json:"default"`
}

// NationIcons holds the image references for a nation flag.
type NationIcons struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// VehicleType is the class/category of a vehicle (e.g. Cruiser, Destroyer).
// Title is the localized display label used as the filter value.
type VehicleType struct {
	Name  string    `json:"name"`
	Title string    `json:"title"`
	Icons TypeIcons `json:"icons"`
}

// Nation is the country faction a vehicle belongs to. Title is the localized
// display label used as the filter value; Color tints it in the card grid.
type Nation struct {
	Name  string      `json:"name"`
	Title string      `json:"title"`
	Color string      `json:"color"`
	Icons NationIcons `json:"icons"`
}

// Vehicle is one glossary entry. Type and Nation may be absent for some
// entries, so they are pointers and callers must tolerate nil.
type Vehicle struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Icons       VehicleIcons `json:"icons"`
	Level       int          `json:"level"`
	Type        *VehicleType `json:"type"`
	Nation      *Nation      `json:"nation"`
}

// graphQLRequest is the POST body for a GraphQL query.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError is one entry of the errors array in a GraphQL response.
type graphQLError struct {
	Message string `json:"message"`
}

// vehiclesResponse is the response envelope for the Vehicles query.
type vehiclesResponse struct {
	Data struct {
		Vehicles []Vehicle `json:"vehicles"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// Client defines the interface for glossary operations
type Client interface {
	// Vehicles fetches the full vehicle list localized to languageCode.
	// An empty languageCode falls back to DefaultLanguageCode.
	Vehicles(ctx context.Context, languageCode string) ([]Vehicle, error)
	// EndpointURL returns the configured GraphQL endpoint URL
	EndpointURL() string
	// SetEndpointURL updates the GraphQL endpoint URL
	SetEndpointURL(url string)
}

// HTTPClient is a real HTTP client for the glossary endpoint
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	log         logger.Logger
}

// NewHTTPClient creates a new glossary client with a default timeout
func NewHTTPClient(endpointURL string, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
}

// NewHTTPClientWithHTTPClient creates a new glossary client with a custom http.Client
func NewHTTPClientWithHTTPClient(endpointURL string, httpClient *http.Client, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		endpointURL: endpointURL,
		httpClient:  httpClient,
		log:         log,
	}
}

// EndpointURL returns the configured GraphQL endpoint URL
func (c *HTTPClient) EndpointURL() string {
	return c.endpointURL
}

// SetEndpointURL updates the GraphQL endpoint URL
func (c *HTTPClient) SetEndpointURL(url string) {
	c.endpointURL = url
}

// Vehicles fetches the full vehicle list localized to languageCode
func (c *HTTPClient) Vehicles(ctx context.Context, languageCode string) ([]Vehicle, error) {
	if languageCode == "" {
		languageCode = DefaultLanguageCode
	}

	reqBody := graphQLRequest{
		Query:     vehiclesQuery,
		Variables: map[string]any{"languageCode": languageCode},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	c.log.Debug("glossary request", "method", "POST", "url", c.endpointURL, "operation", "Vehicles", "languageCode", languageCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to glossary: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug("glossary response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("glossary returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response vehiclesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Errors) > 0 {
		messages := make([]string, 0, len(response.Errors))
		for _, e := range response.Errors {
			messages = append(messages, e.Message)
		}
		return nil, fmt.Errorf("glossary query failed: %s", strings.Join(messages, "; "))
	}

	return response.Data.Vehicles, nil
}

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)
