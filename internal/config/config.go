// Package config defines application configuration and its layered loading.
package config

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8082".
	Addr string `koanf:"addr"`

	// GlossaryURL is the GraphQL endpoint serving the Vehicles query.
	GlossaryURL string `koanf:"glossary_url"`

	// LanguageCode selects the glossary localization, e.g. "ru" or "en".
	LanguageCode string `koanf:"language_code"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// HTTPLogging enables per-request HTTP logging at startup.
	HTTPLogging bool `koanf:"http_logging"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:         ":8082",
		GlossaryURL:  "https://vortex.worldofwarships.ru/api/graphql/glossary/",
		LanguageCode: "ru",
		LogLevel:     "info",
		HTTPLogging:  false,
	}
}
