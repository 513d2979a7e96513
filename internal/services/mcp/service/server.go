// Package service hosts the MCP server exposing projection tools to
// agent clients.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/services/mcp/domain"
	"github.com/okastrup/renteregner.dk/internal/storage"
	"github.com/okastrup/renteregner.dk/internal/telemetry"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Renteregner MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

// TransportStdio uses standard input/output for MCP.
const TransportStdio TransportKind = "stdio"

// Config carries the dependencies and transport choice for the MCP server.
type Config struct {
	Transport       TransportKind
	Engine          *projection.Engine
	Store           inputs.Store
	Telemetry       *telemetry.Emitter
	TelemetryReader storage.TelemetryReader
	Metrics         *metrics.Metrics
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with all projection tools registered.
func New(cfg Config) *Server {
	engine := cfg.Engine
	if engine == nil {
		engine = projection.NewEngine()
	}
	store := cfg.Store
	if store == nil {
		store = inputs.NewMemoryStore()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{})

	mcp.AddTool(mcpServer, domain.ProjectionRunTool(), domain.ProjectionRunHandler(engine, store, cfg.Telemetry, cfg.Metrics))
	mcp.AddTool(mcpServer, domain.ProjectionCompareTool(), domain.ProjectionCompareHandler(engine))
	mcpServer.AddResource(domain.InputsLatestResource(), domain.InputsLatestResourceHandler(store))
	if cfg.TelemetryReader != nil {
		mcpServer.AddResource(domain.TelemetryRecentResource(), domain.TelemetryRecentResourceHandler(cfg.TelemetryReader))
	}

	return &Server{mcpServer: mcpServer}
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return New(cfg).Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
