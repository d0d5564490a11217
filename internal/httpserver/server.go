package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/compasshq/compass/internal/config"
	"github.com/compasshq/compass/internal/httpserver/deps"
	"github.com/compasshq/compass/internal/httpserver/mw"
	"github.com/compasshq/compass/internal/httpserver/routes"
	"github.com/compasshq/compass/internal/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http   *http.Server
	logger logger.Logger
}

// New builds the HTTP server (router, middlewares, route registration).
func New(cfg config.Config, log logger.Logger, d deps.Deps) *Server {
	r := chi.NewRouter()

	r.Use(middleware.GetHead)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer) // never crash the process on panic
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	if d.MetricsEnabled && d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(mw.Log(log))

	routes.RegisterAll(r, d)

	s := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return &Server{http: s, logger: log}
}

// Start runs the HTTP server (blocks until error or shutdown).
func (s *Server) Start() error {
	s.logger.Infof("HTTP server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server with the provided context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down...")
	return s.http.Shutdown(ctx)
}
