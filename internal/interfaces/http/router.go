// Package http wires the gin router and the server lifecycle around the
// recognition pipeline.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/ner-spotlight/internal/config"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ner-spotlight/internal/interfaces/http/handlers"
	"github.com/turtacn/ner-spotlight/internal/interfaces/http/middleware"
	"github.com/turtacn/ner-spotlight/internal/interfaces/http/web"
)

// RouterDeps collects everything the router mounts.
type RouterDeps struct {
	Recognition handlers.RecognitionService
	Health      *handlers.HealthHandler
	Logger      logging.Logger
	Metrics     *prometheus.AppMetrics

	// MetricsHandler serves GET /metrics when non-nil.
	MetricsHandler http.Handler
}

// NewRouter builds the gin engine: middleware chain, API routes, probes,
// the metrics endpoint, and the embedded demo page at the root.
func NewRouter(cfg *config.Config, deps RouterDeps) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging(logger.Named("http"), middleware.DefaultLoggingConfig()))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	if cfg.CORS.Enabled {
		corsCfg := middleware.DefaultCORSConfig()
		if len(cfg.CORS.AllowedOrigins) > 0 {
			corsCfg.AllowedOrigins = cfg.CORS.AllowedOrigins
		}
		r.Use(middleware.CORS(corsCfg))
	}
	if cfg.RateLimit.Enabled {
		rlCfg := middleware.DefaultRateLimitConfig()
		rlCfg.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rlCfg.BurstSize = cfg.RateLimit.BurstSize
		limiter := middleware.NewTokenBucketLimiter(
			rlCfg.RequestsPerSecond, rlCfg.BurstSize, rlCfg.CleanupInterval)
		r.Use(middleware.RateLimit(limiter, rlCfg))
	}

	recognize := handlers.NewRecognizeHandler(deps.Recognition)
	v1 := r.Group("/api/v1")
	{
		v1.POST("/recognize", recognize.Recognize)
	}

	if deps.Health != nil {
		r.GET("/healthz", deps.Health.Healthz)
		r.GET("/readyz", deps.Health.Readyz)
	}
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	r.GET("/", func(c *gin.Context) {
		page, err := web.FS.ReadFile("index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "demo page unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	return r
}
