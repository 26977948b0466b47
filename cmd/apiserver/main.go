// API server entry point for ner-spotlight.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/ner-spotlight/internal/config"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ner-spotlight/internal/interfaces/cli"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: falling back to environment configuration: %v\n", err)
		cfg, err = config.LoadFromEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	srv, err := cli.BuildServer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire the service", logging.Err(err))
	}
	if err := srv.Start(); err != nil {
		logger.Fatal("failed to start the server", logging.Err(err))
	}
	logger.Info("ner-spotlight api server started", logging.String("addr", srv.Addr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("shutdown failed", logging.Err(err))
		os.Exit(1)
	}
}
