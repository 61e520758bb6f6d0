// Package server provides the HTTP server hosting the KPI catalog API,
// along with shared middleware and RFC 7807 problem responses.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"kpidex/internal/version"
)

// RouteRegistrar registers routes on the server's mux. API handlers
// implement this to be mounted at construction time.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Options controls server construction.
type Options struct {
	Addr string

	// RateLimit is the sustained request rate allowed per server, in
	// requests per second. Zero disables rate limiting.
	RateLimit float64

	// RateBurst is the token-bucket burst size when rate limiting is on.
	RateBurst int
}

// Server is the kpidex HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// New creates a Server and mounts the core routes plus every registrar.
func New(opts Options, logger *zap.Logger, registrars ...RouteRegistrar) *Server {
	mux := http.NewServeMux()

	handler := Chain(mux,
		RequestID(),
		AccessLog(logger),
		Metrics(),
		RateLimit(opts.RateLimit, opts.RateBurst),
	)

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
		mux:    mux,
	}

	s.registerCoreRoutes()
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	return s
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.Handle("GET /metrics", MetricsHandler())
	s.mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// handleHealth returns the server health status.
//
//	@Summary		Health check
//	@Description	Returns service status and build information.
//	@Tags			core
//	@Produce		json
//	@Success		200 {object} map[string]any
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Kpidex-Version", version.Short())
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "kpidex",
		"version": version.Map(),
	})
}
