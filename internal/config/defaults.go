package config

import "time"

// Default value constants.
const (
	DefaultServerHost = "127.0.0.1"
	DefaultServerPort = 8080
	DefaultServerMode = "release"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultInferenceEndpoint = "https://api-inference.huggingface.co/models/dslim/bert-base-NER"
	DefaultInferenceModel    = "dslim/bert-base-NER"
	DefaultInferenceTimeout  = 30 * time.Second
	DefaultLabelScheme       = "bio"

	DefaultRequestsPerSecond = 5.0
	DefaultBurstSize         = 10

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "nerspotlight"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields already set by the caller are left unchanged so explicit
// configuration always wins. Must be called after unmarshalling and before
// Validate so defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Inference.Endpoint == "" {
		cfg.Inference.Endpoint = DefaultInferenceEndpoint
	}
	if cfg.Inference.Model == "" {
		cfg.Inference.Model = DefaultInferenceModel
	}
	if cfg.Inference.Timeout == 0 {
		cfg.Inference.Timeout = DefaultInferenceTimeout
	}
	if cfg.Inference.LabelScheme == "" {
		cfg.Inference.LabelScheme = DefaultLabelScheme
	}

	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.RateLimit.BurstSize == 0 {
		cfg.RateLimit.BurstSize = DefaultBurstSize
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}
