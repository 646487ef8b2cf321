// Package config loads the adapter's configuration from the
// environment.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces all environment variables (LIGHTSPEED_*).
const envPrefix = "LIGHTSPEED"

// Config holds all runtime settings. Every field has a working
// default so the server starts with zero configuration against the
// demo backend.
type Config struct {
	// BackendURL is the base URL of the notes/tasks REST backend.
	BackendURL string `envconfig:"BACKEND_URL" default:"https://full-stack-fastapi-template-bvfx.onrender.com"`

	// RequestTimeout bounds each backend HTTP call.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	// MaxAttempts is the total number of tries for recoverable backend
	// failures (1 = no retries).
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"3"`

	// FetchLimit is the page size used when tools need the full record
	// set for analytics.
	FetchLimit int `envconfig:"FETCH_LIMIT" default:"1000"`

	// LoginEmail and LoginPassword are the fallback credentials used
	// to obtain a token when a tool call doesn't carry one.
	LoginEmail    string `envconfig:"LOGIN_EMAIL" default:"test@example.com"`
	LoginPassword string `envconfig:"LOGIN_PASSWORD" default:"password123"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration for values that would fail later
// in confusing ways.
func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend URL %q", c.BackendURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.FetchLimit < 1 {
		return fmt.Errorf("fetch limit must be at least 1, got %d", c.FetchLimit)
	}
	return nil
}
