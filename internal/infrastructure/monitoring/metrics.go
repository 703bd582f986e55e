package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the backend.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Catalog metrics
	EntriesTracked prometheus.Gauge
	UsersTracked   prometheus.Gauge

	// Script generator metrics
	ScriptsGenerated prometheus.Counter

	// Probe metrics
	ProbeRuns     *prometheus.CounterVec
	ProbeDuration prometheus.Histogram

	// Gateway metrics
	GatewayFallbacks prometheus.Counter
}

// NewMetrics creates and registers the metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "archdash_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "archdash_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		EntriesTracked: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "archdash_catalog_entries",
				Help: "Number of entries currently tracked in the catalog",
			},
		),
		UsersTracked: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "archdash_catalog_users",
				Help: "Number of users currently tracked in the catalog",
			},
		),
		ScriptsGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "archdash_scripts_generated_total",
				Help: "Total number of install scripts generated",
			},
		),
		ProbeRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "archdash_probe_runs_total",
				Help: "Total number of system probe executions",
			},
			[]string{"status"},
		),
		ProbeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "archdash_probe_duration_seconds",
				Help:    "System probe execution duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
		),
		GatewayFallbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "archdash_gateway_fallbacks_total",
				Help: "Total number of system info fetches that fell back to the Unknown snapshot",
			},
		),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordProbeRun records one probe execution with its outcome.
func (m *Metrics) RecordProbeRun(status string, duration time.Duration) {
	m.ProbeRuns.WithLabelValues(status).Inc()
	m.ProbeDuration.Observe(duration.Seconds())
}

// SetCatalogSize updates the catalog gauges after a mutation.
func (m *Metrics) SetCatalogSize(entries, users int) {
	m.EntriesTracked.Set(float64(entries))
	m.UsersTracked.Set(float64(users))
}
