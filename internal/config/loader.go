package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all service settings.
const envPrefix = "SPOTLIGHT"

// newViper builds a pre-configured Viper instance: YAML file type,
// SPOTLIGHT_ env prefix, automatic env binding, and a key replacer mapping
// "." → "_" so that nested keys like "inference.token" resolve to
// SPOTLIGHT_INFERENCE_TOKEN.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads the YAML file at configPath, merges SPOTLIGHT_* environment
// overrides, applies defaults for unset fields, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from SPOTLIGHT_* environment
// variables with no config file, the preferred strategy for containerised
// deployments:
//
//	SPOTLIGHT_INFERENCE_ENDPOINT, SPOTLIGHT_INFERENCE_TOKEN, SPOTLIGHT_SERVER_PORT, ...
func LoadFromEnv() (*Config, error) {
	v := newViper()

	// AutomaticEnv alone does not surface env-only keys through Unmarshal;
	// each key viper should consider must be bound explicitly.
	for _, key := range bindableKeys {
		_ = v.BindEnv(key)
	}

	return unmarshalAndFinalize(v)
}

// bindableKeys lists every config key an environment variable may set.
var bindableKeys = []string{
	"server.host", "server.port", "server.mode",
	"server.read_timeout", "server.write_timeout", "server.shutdown_timeout",
	"inference.endpoint", "inference.token", "inference.model",
	"inference.timeout", "inference.label_scheme",
	"inference.aggregation_strategy", "inference.skip_malformed",
	"rate_limit.enabled", "rate_limit.requests_per_second", "rate_limit.burst_size",
	"cors.enabled", "cors.allowed_origins", "cors.allowed_methods", "cors.allowed_headers", "cors.max_age",
	"log.level", "log.format",
	"metrics.enabled", "metrics.namespace",
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// Intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
