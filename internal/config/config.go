// Package config provides environment-driven configuration for docgraph.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	DatabaseURL   Secret
	Port          string
	ListenHost    string
	CORSOrigins   []string
	LogLevel      string
	DocsRoot      string
	IngestWorkers int
	RatePerSec    int
	RateBurst     int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: Secret(envOrDefault("DATABASE_URL", "")),
		Port:        envOrDefault("PORT", "3131"),
		ListenHost:  envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		DocsRoot:    envOrDefault("DOCS_ROOT", "."),
	}

	workers, err := strconv.Atoi(envOrDefault("INGEST_WORKERS", "4"))
	if err != nil || workers < 1 || workers > 16 {
		return nil, fmt.Errorf("INGEST_WORKERS must be an integer between 1 and 16")
	}
	cfg.IngestWorkers = workers

	ratePerSec, err := strconv.Atoi(envOrDefault("RATE_LIMIT_PER_SEC", "50"))
	if err != nil || ratePerSec < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_SEC must be a positive integer")
	}
	cfg.RatePerSec = ratePerSec

	burst, err := strconv.Atoi(envOrDefault("RATE_LIMIT_BURST", "100"))
	if err != nil || burst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer")
	}
	cfg.RateBurst = burst

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
