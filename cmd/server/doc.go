// Package main is the entry point for the ArchDash backend server.
//
// The server tracks a software catalog for a fresh Arch Linux setup,
// generates install scripts from it, and relays live system information
// from a host probe script.
//
// The server provides:
//   - REST API for catalog entries, users, and categories
//   - Install script generation grouped by category
//   - System info relay and a degraded-tolerant gateway view
//   - WebSocket stream of catalog change events
//   - Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server -port 3000 -probe /usr/local/bin/get_system_info
//
//	# With SQLite persistence
//	./server -storage /var/lib/archdash/catalog.db
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
