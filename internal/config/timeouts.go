package config

import (
	"os"
	"time"
)

// Timeouts holds the configurable timeouts of the CLI.
// These values can be customized via environment variables.
type Timeouts struct {
	Reconcile time.Duration // Timeout for a whole apply or plan run
	Preflight time.Duration // Timeout for the origin bucket checks
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - CFDISTRO_TIMEOUT_RECONCILE (default: 2m)
//   - CFDISTRO_TIMEOUT_PREFLIGHT (default: 30s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Reconcile: parseDuration("CFDISTRO_TIMEOUT_RECONCILE", 2*time.Minute),
		Preflight: parseDuration("CFDISTRO_TIMEOUT_PREFLIGHT", 30*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set, not a duration or not positive, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}
