package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/akozyrev/fleetdeck/internal/app"
	"github.com/akozyrev/fleetdeck/internal/config"
	"github.com/akozyrev/fleetdeck/internal/logger"
	"github.com/akozyrev/fleetdeck/pkg/glossary"
	"github.com/akozyrev/fleetdeck/web"
)

var (
	version = "dev"
)

func main() {
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	glossaryURL := flag.String("glossary", "", "Glossary GraphQL endpoint URL (overrides config)")
	lang := flag.String("lang", "", "Glossary language code, e.g. ru or en (overrides config)")
	logLevel := flag.String("loglevel", "", "Log level: debug, info, warn, error (overrides config)")
	httpLog := flag.Bool("httplog", false, "Enable HTTP request logging")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `FleetDeck - Warship Catalog Viewer

Usage:
  fleetdeck [options]

Options:
  -addr string      HTTP listen address (default ":8082")
  -glossary string  Glossary GraphQL endpoint URL
  -lang string      Glossary language code, e.g. ru or en (default "ru")
  -loglevel string  Log level: debug, info, warn, error (default "info")
  -httplog          Enable HTTP request logging
  -version          Show version and exit
  -help             Show this help message

Configuration may also come from a YAML file (path in FLEETDECK_CONFIG),
FLEETDECK_-prefixed environment variables, or a .env file in the working
directory. Flags take precedence.

Examples:
  fleetdeck                          # Serve on :8082 with defaults
  fleetdeck -addr :8080 -lang en     # English glossary on port 8080
  fleetdeck -httplog -loglevel debug # Verbose local debugging

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("fleetdeck %s\n", version)
		os.Exit(0)
	}

	// A .env file is optional; ignore the error when absent
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Flags override file and environment
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *glossaryURL != "" {
		cfg.GlossaryURL = *glossaryURL
	}
	if *lang != "" {
		cfg.LanguageCode = *lang
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *httpLog {
		cfg.HTTPLogging = true
	}

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))
	if cfg.HTTPLogging {
		appLog.EnableHTTPLogging()
	}

	client := glossary.NewHTTPClient(cfg.GlossaryURL, appLog)

	a, err := app.New(appLog, cfg, client, web.GetTemplatesFS(), web.GetStaticFS())
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}

	appLog.Info("Scan /share/qr to open the catalog on a phone", "url", a.ShareURL())

	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
