package catalog

import (
	"context"

	"github.com/akozyrev/fleetdeck/pkg/glossary"
)

// Servicer defines the catalog operations used by the HTTP layer
type Servicer interface {
	// Vehicles fetches the vehicle list localized to languageCode
	Vehicles(ctx context.Context, languageCode string) ([]glossary.Vehicle, error)
}

// Ensure Service implements Servicer
var _ Servicer = (*Service)(nil)
