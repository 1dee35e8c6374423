// Package config handles runtime configuration for the server, applying
// development defaults and overlaying environment variables.
package config

import (
	"os"
	"time"
)

// DefaultSecret is the development signing secret. Anything production-facing
// must override it via TASKBOX_JWT_SECRET.
const DefaultSecret = "your-secret-key"

// Config holds runtime settings for the taskbox server.
//
// Fields:
//   - Port: TCP port for the HTTP endpoint.
//   - JWTSecret: HMAC secret for signing tokens (HS256).
//   - AccessTTL: lifetime of issued access tokens.
type Config struct {
	Port      string
	JWTSecret string
	AccessTTL time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = "5000"
	c.JWTSecret = DefaultSecret
	c.AccessTTL = time.Hour
}

// Load builds a Config by applying defaults and then overlaying values from
// the environment (TASKBOX_PORT, TASKBOX_JWT_SECRET, TASKBOX_ACCESS_TTL).
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("TASKBOX_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("TASKBOX_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TASKBOX_ACCESS_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AccessTTL = d
		}
	}
	return cfg
}
