// Package types provides shared data structures for the ArchDash backend.
//
// This package defines core types used across all backend components,
// ensuring type safety and consistent wire formats with the frontend.
//
// Core Types:
//   - Entry: A tracked installable item and its install metadata
//   - User: A local account tracked on the dashboard
//   - Category: A fixed classification bucket for entries
//   - SystemInfo: Snapshot returned by the host system probe
//
// Listing Types:
//   - EntryFilter: Category, search, and install-status filters
//   - EntrySort: Sort field and direction for entry listings
//   - CatalogStats: Per-category aggregate counts
//
// JSON tags follow the frontend's camelCase convention so handler
// responses and probe output share one wire format.
package types
