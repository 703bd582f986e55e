// Package catalog provides the in-memory entry and user store for ArchDash.
//
// The store owns the Entry and User collections for the lifetime of the
// process. All mutation is routed through its operations; callers never
// hold references into internal state (listings return copies).
//
// Components:
//   - Store: Entry/User CRUD with filtered, sorted listings
//   - Categories: the fixed, ordered category definitions
//
// Features:
//   - Stable, case-insensitive listing sort by name or category
//   - Per-category aggregate counts recomputed on every call
//   - Optional write-through persistence via the Persister interface
//
// Example Usage:
//
//	store := catalog.NewStore()
//	entry, err := store.AddEntry(types.EntryInput{Name: "firefox", Category: types.CategoryWebBrowsers})
//	entries := store.Entries(types.EntryFilter{Category: types.CategoryWebBrowsers}, types.EntrySort{})
package catalog
