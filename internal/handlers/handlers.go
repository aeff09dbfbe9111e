package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/akozyrev/fleetdeck/internal/catalog"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// Templates holds all parsed HTML templates
type Templates struct {
	Catalog *template.Template
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Catalog      catalog.Servicer
	Log          HTTPLogger
	languageCode string
	shareURL     string
	templates    *Templates
	staticServer http.Handler
}

// New creates a new Handlers instance with all dependencies.
// languageCode is the default glossary localization; shareURL is the
// externally reachable catalog URL encoded into the share QR code.
func New(
	catalogService catalog.Servicer,
	templatesFS fs.FS,
	staticServer http.Handler,
	languageCode string,
	shareURL string,
	log HTTPLogger,
) (*Handlers, error) {
	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handlers{
		Catalog:      catalogService,
		Log:          log,
		languageCode: languageCode,
		shareURL:     shareURL,
		templates:    templates,
		staticServer: staticServer,
	}, nil
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// loadTemplates parses all templates once at startup
func loadTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{}
	var err error

	if t.Catalog, err = template.ParseFS(templatesFS, "catalog.html"); err != nil {
		return nil, fmt.Errorf("catalog template: %w", err)
	}

	return t, nil
}
