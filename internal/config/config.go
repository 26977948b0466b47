// Package config defines all configuration structures for ner-spotlight.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// InferenceConfig holds the remote NER endpoint parameters. Token is the
// bearer credential; a missing token is a fatal startup error.
type InferenceConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Token    string        `mapstructure:"token"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`

	// LabelScheme selects the continuation-detection rule for the merger:
	// "bio" for B-/I- prefixed labels, "aggregated" when the endpoint
	// already groups sub-word tokens (entity_group responses).
	LabelScheme string `mapstructure:"label_scheme"`

	// AggregationStrategy, when non-empty, is forwarded to the endpoint in
	// the request parameters (e.g. "simple", "none").
	AggregationStrategy string `mapstructure:"aggregation_strategy"`

	// SkipMalformed selects the merge policy for invalid tokens: skip them
	// instead of aborting the request.
	SkipMalformed bool `mapstructure:"skip_malformed"`
}

// RateLimitConfig holds the API rate limiter parameters.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size"`
}

// CORSConfig holds cross-origin settings for the API.
type CORSConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Inference InferenceConfig `mapstructure:"inference"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// Validate performs semantic validation of the fully-populated Config.
// Callers treat any error as fatal and refuse to start.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Inference.Endpoint == "" {
		return fmt.Errorf("config: inference.endpoint is required")
	}
	u, err := url.Parse(c.Inference.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("config: inference.endpoint %q is not a valid http(s) URL", c.Inference.Endpoint)
	}
	if c.Inference.Token == "" {
		return fmt.Errorf("config: inference.token is required")
	}
	if c.Inference.Timeout <= 0 {
		return fmt.Errorf("config: inference.timeout must be positive, got %s", c.Inference.Timeout)
	}
	switch c.Inference.LabelScheme {
	case "bio", "aggregated":
	default:
		return fmt.Errorf("config: inference.label_scheme %q is invalid; expected bio|aggregated", c.Inference.LabelScheme)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("config: rate_limit.requests_per_second must be positive")
		}
		if c.RateLimit.BurstSize < 1 {
			return fmt.Errorf("config: rate_limit.burst_size must be >= 1, got %d", c.RateLimit.BurstSize)
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
