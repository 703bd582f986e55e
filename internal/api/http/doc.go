// Package http provides the JSON API handlers for the ArchDash backend.
//
// Endpoints:
//   - Catalog: entry CRUD with filtered/sorted listing, users, categories,
//     and per-category aggregate stats
//   - Script: install script generation from selected categories
//   - System info: the probe relay (verbatim JSON or 500) and the cached
//     variant with fallback semantics
//
// Handlers hold no state of their own; everything is routed through the
// catalog store, probe, and gateway they were constructed with.
package http
