// Package calculator serves the interactive compound interest calculator.
package calculator

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/telemetry"
)

// Dependencies wires the calculator module into shared infrastructure.
type Dependencies struct {
	Engine    *projection.Engine
	Store     inputs.Store
	Telemetry *telemetry.Emitter
	Metrics   *metrics.Metrics
}

// Module handles the calculator routes.
type Module struct {
	engine    *projection.Engine
	store     inputs.Store
	telemetry *telemetry.Emitter
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// New creates the calculator module.
func New(deps Dependencies) *Module {
	return &Module{
		engine:    deps.Engine,
		store:     deps.Store,
		telemetry: deps.Telemetry,
		metrics:   deps.Metrics,
		tracer:    otel.Tracer("renteregner.dk/web/calculator"),
	}
}

// Routes registers the calculator routes on mux.
func (m *Module) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /beregner", m.handleGet)
	mux.HandleFunc("POST /beregner", m.handlePost)
}
