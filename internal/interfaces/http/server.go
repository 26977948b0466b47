package http

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/turtacn/ner-spotlight/internal/config"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ner-spotlight/internal/interfaces/http/handlers"
	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// Server owns the HTTP listener lifecycle. Construction wires the routes but
// binds nothing; Start binds the port and serves in the background; Stop
// drains in-flight requests. There is no package-level server state, so
// multiple instances can coexist in one process (tests rely on this).
type Server struct {
	cfg    *config.Config
	srv    *http.Server
	health *handlers.HealthHandler
	logger logging.Logger

	ln net.Listener
}

// NewServer builds the router and the underlying http.Server.
func NewServer(cfg *config.Config, deps RouterDeps, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	router := NewRouter(cfg, deps)

	return &Server{
		cfg:    cfg,
		health: deps.Health,
		logger: logger.Named("server"),
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start binds the configured address and begins serving in a background
// goroutine. Bind failures are returned synchronously; serve failures are
// logged. The readiness probe flips to ready once the listener is up.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to bind "+s.srv.Addr)
	}
	s.ln = ln

	if s.health != nil {
		s.health.SetReady(true)
	}
	s.logger.Info("http server listening", logging.String("addr", ln.Addr().String()))

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server terminated", logging.Err(err))
		}
	}()
	return nil
}

// Stop drains in-flight requests and closes the listener. The readiness
// probe flips to not ready first so load balancers stop routing new traffic.
func (s *Server) Stop(ctx context.Context) error {
	if s.health != nil {
		s.health.SetReady(false)
	}
	s.logger.Info("http server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "server shutdown failed")
	}
	s.logger.Info("http server stopped")
	return nil
}

// Addr returns the bound listener address, or the configured address before
// Start.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
