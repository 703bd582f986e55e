// Package monitoring provides Prometheus metrics for the ArchDash backend.
//
// Metrics cover the HTTP surface (request counts and latency), the catalog
// (tracked entry and user gauges), script generation, and the system probe
// (run counts by outcome, duration, gateway fallbacks).
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	router.Use(monitoring.Middleware(metrics))
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
package monitoring
