// Package sysinfo supplies system snapshots for the dashboard.
//
// Two collaborators cover both sides of the /api/system-info contract:
//
//   - Probe shells out to the host system-probe script and validates its
//     stdout as SystemInfo JSON. Failures surface as errors; the relay
//     handler maps them to a 500 with an error body.
//   - Gateway is the consuming side: it fetches the snapshot over HTTP and
//     never fails from the caller's perspective. Any network error,
//     non-2xx status, or malformed body is logged and replaced wholesale
//     by the all-"Unknown" fallback snapshot.
//
// Every Gateway call re-fetches: no caching, no in-flight deduplication,
// no merging with a previous snapshot.
package sysinfo
