package advisor

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the advisor client.
type Config struct {
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults. The 20s timeout is
// a deliberate hardening: the upstream contract specifies none, and an
// unbounded submission would leave the session stuck in Submitting.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:8000",
		TimeoutMs:  20000,
		MaxRetries: 0,
		LogCalls:   false,
	}
}

// LoadConfig reads advisor configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PATHWAY_ADVISOR_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv("PATHWAY_ADVISOR_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PATHWAY_ADVISOR_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("PATHWAY_ADVISOR_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
