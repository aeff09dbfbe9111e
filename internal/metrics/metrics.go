// Package metrics provides the Prometheus collectors for fleetdeck.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Custom registry to avoid the default Go runtime collectors.
var registry = prometheus.NewRegistry()

var (
	fetchesTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "fleetdeck",
		Subsystem: "glossary",
		Name:      "fetches_total",
		Help:      "Total number of glossary fetch attempts.",
	})

	fetchFailures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "fleetdeck",
		Subsystem: "glossary",
		Name:      "fetch_failures_total",
		Help:      "Total number of failed glossary fetches.",
	})

	fetchDuration = promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: "fleetdeck",
		Subsystem: "glossary",
		Name:      "fetch_duration_seconds",
		Help:      "Glossary fetch latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "fleetdeck",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})
)

// ObserveFetch records one glossary fetch attempt.
func ObserveFetch(duration time.Duration, failed bool) {
	fetchesTotal.Inc()
	fetchDuration.Observe(duration.Seconds())
	if failed {
		fetchFailures.Inc()
	}
}

// ObserveHTTPRequest records one served HTTP request.
func ObserveHTTPRequest(method, path string, status int) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Handler returns the Prometheus exposition handler for /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests.
func Gatherer() prometheus.Gatherer {
	return registry
}
