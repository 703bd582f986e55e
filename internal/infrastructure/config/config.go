package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Probe     ProbeConfig
	Storage   StorageConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// ProbeConfig holds system-probe settings. Command is the shell command the
// relay endpoint runs; BaseURL is where the gateway fetches snapshots from
// (by default, this server's own relay).
type ProbeConfig struct {
	Command string `envconfig:"PROBE_COMMAND" default:"/usr/local/bin/get_system_info"`
	BaseURL string `envconfig:"PROBE_BASE_URL" default:"http://localhost:3000"`
}

// StorageConfig holds catalog persistence settings. An empty path disables
// persistence and the catalog stays purely in-memory.
type StorageConfig struct {
	Path string `envconfig:"STORAGE_PATH" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "3000",
			Host: "0.0.0.0",
		},
		Probe: ProbeConfig{
			Command: "/usr/local/bin/get_system_info",
			BaseURL: "http://localhost:3000",
		},
		Storage: StorageConfig{},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           false,
		},
	}
}
