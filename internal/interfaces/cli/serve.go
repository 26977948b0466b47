package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/ner-spotlight/internal/application/recognition"
	"github.com/turtacn/ner-spotlight/internal/config"
	"github.com/turtacn/ner-spotlight/internal/inference"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/turtacn/ner-spotlight/internal/interfaces/http"
	"github.com/turtacn/ner-spotlight/internal/interfaces/http/handlers"
	"github.com/turtacn/ner-spotlight/internal/ner"
)

// NewServeCmd creates the serve command running the HTTP server until
// SIGINT or SIGTERM.
func NewServeCmd(opts *RootOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recognition HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logging.SetDefault(logger)

			srv, err := BuildServer(cfg, logger)
			if err != nil {
				return err
			}
			if err := srv.Start(); err != nil {
				return err
			}
			logger.Info("spotlight serving",
				logging.String("addr", srv.Addr()),
				logging.String("version", Version),
			)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			return srv.Stop(context.Background())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "bind address override")
	cmd.Flags().IntVar(&port, "port", 0, "listen port override")

	return cmd
}

// BuildServer wires the full service graph: inference client, recognition
// service, metrics, health probes, and the HTTP server.
func BuildServer(cfg *config.Config, logger logging.Logger) (*httpiface.Server, error) {
	infClient, err := inference.NewClient(inference.Config{
		Endpoint:            cfg.Inference.Endpoint,
		Token:               cfg.Inference.Token,
		Model:               cfg.Inference.Model,
		Timeout:             cfg.Inference.Timeout,
		AggregationStrategy: cfg.Inference.AggregationStrategy,
	}, logger)
	if err != nil {
		return nil, err
	}

	var appMetrics *prometheus.AppMetrics
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		}, logger)
		if err != nil {
			return nil, err
		}
		appMetrics = prometheus.NewAppMetrics(collector)
		metricsHandler = collector.Handler()
	}

	scheme, err := ner.ParseLabelScheme(cfg.Inference.LabelScheme)
	if err != nil {
		return nil, err
	}
	svc := recognition.NewService(infClient, recognition.Options{
		Scheme:        scheme,
		SkipMalformed: cfg.Inference.SkipMalformed,
	}, logger, appMetrics)

	deps := httpiface.RouterDeps{
		Recognition:    svc,
		Health:         handlers.NewHealthHandler(Version),
		Logger:         logger,
		Metrics:        appMetrics,
		MetricsHandler: metricsHandler,
	}
	return httpiface.NewServer(cfg, deps, logger), nil
}
