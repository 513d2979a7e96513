// Package web assembles the HTTP server for the public site.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
	"github.com/okastrup/renteregner.dk/internal/platform/timeouts"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/services/web/modules/calculator"
	"github.com/okastrup/renteregner.dk/internal/services/web/modules/health"
	"github.com/okastrup/renteregner.dk/internal/services/web/modules/landing"
	"github.com/okastrup/renteregner.dk/internal/services/web/platform/httpx"
	"github.com/okastrup/renteregner.dk/internal/services/web/platform/observability"
	"github.com/okastrup/renteregner.dk/internal/services/web/platform/weberror"
	"github.com/okastrup/renteregner.dk/internal/services/web/routepath"
	"github.com/okastrup/renteregner.dk/internal/services/web/static"
	"github.com/okastrup/renteregner.dk/internal/telemetry"
)

// Config carries the dependencies the web service needs.
type Config struct {
	HTTPAddr  string
	Engine    *projection.Engine
	Store     inputs.Store
	Telemetry *telemetry.Emitter
	Metrics   *metrics.Metrics
	Logger    *log.Logger
}

// Server runs the public HTTP site.
type Server struct {
	httpServer *http.Server
}

// NewHandler builds the site handler with all modules and middleware wired.
func NewHandler(cfg Config) http.Handler {
	engine := cfg.Engine
	if engine == nil {
		engine = projection.NewEngine()
	}
	store := cfg.Store
	if store == nil {
		store = inputs.NewMemoryStore()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteErrorPage(w, r, http.StatusNotFound)
	})
	mux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))
	mux.Handle("GET "+routepath.Metrics, promhttp.Handler())

	landing.New(landing.Dependencies{Engine: engine, Store: store}).Routes(mux)
	calculator.New(calculator.Dependencies{
		Engine:    engine,
		Store:     store,
		Telemetry: cfg.Telemetry,
		Metrics:   cfg.Metrics,
	}).Routes(mux)
	health.New().Routes(mux)

	return httpx.Chain(
		mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestsInFlight(cfg.Metrics),
		observability.RequestLogger(logger),
	)
}

// NewServer creates the web server bound to cfg.HTTPAddr.
func NewServer(cfg Config) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}
}

// ListenAndServe serves HTTP until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return fmt.Errorf("web server is not configured")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown web server: %w", err)
		}
		<-serveErr
		return nil
	}
}

// Close force-closes the server without waiting for in-flight requests.
func (s *Server) Close() error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}
