// Package config provides 12-factor configuration management for the
// ArchDash backend.
//
// Configuration is loaded from environment variables with sensible
// defaults. CLI flags can override environment variables for development
// flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Probe: System-probe command and gateway base URL
//   - Storage: Optional SQLite catalog persistence
//   - Logging: Log level and output format
//   - RateLimit: Token-bucket rate limiting configuration
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - PROBE_COMMAND, PROBE_BASE_URL
//   - STORAGE_PATH
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
