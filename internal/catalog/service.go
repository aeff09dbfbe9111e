package catalog

import (
	"context"
	"time"

	"golang.org/x/text/language"

	apperrors "github.com/akozyrev/fleetdeck/internal/errors"
	"github.com/akozyrev/fleetdeck/internal/logger"
	"github.com/akozyrev/fleetdeck/internal/metrics"
	"github.com/akozyrev/fleetdeck/pkg/glossary"
)

// Service fetches the vehicle list from the glossary endpoint. It holds no
// state between calls; the rendered catalog is always a pure function of the
// fetched list and the request's filter.
type Service struct {
	log    logger.Logger
	client glossary.Client
}

// NewService creates a new catalog Service
func NewService(log logger.Logger, client glossary.Client) *Service {
	return &Service{log: log, client: client}
}

// Vehicles fetches the vehicle list localized to languageCode. An empty
// languageCode falls back to the client default. A malformed languageCode is
// rejected before any network call; any fetch failure is classified
// Unavailable and carries the underlying error verbatim.
func (s *Service) Vehicles(ctx context.Context, languageCode string) ([]glossary.Vehicle, error) {
	lang, err := NormalizeLanguage(languageCode)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	vehicles, err := s.client.Vehicles(ctx, lang)
	metrics.ObserveFetch(time.Since(start), err != nil)
	if err != nil {
		s.log.Error("glossary fetch failed", "languageCode", lang, "error", err)
		return nil, apperrors.Unavailable("failed to load vehicles", err)
	}

	s.log.Debug("glossary fetch complete", "languageCode", lang, "count", len(vehicles))
	return vehicles, nil
}

// NormalizeLanguage canonicalizes a BCP 47 language code to its base form
// ("EN-us" -> "en"). The empty string passes through so the client default
// applies. Unparseable codes are rejected as invalid input.
func NormalizeLanguage(code string) (string, error) {
	if code == "" {
		return "", nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", apperrors.InvalidInputf("invalid language code %q", code)
	}
	base, _ := tag.Base()
	return base.String(), nil
}
