package calculator

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/timeouts"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/services/web/platform/httpx"
	webi18n "github.com/okastrup/renteregner.dk/internal/services/web/platform/i18n"
	"github.com/okastrup/renteregner.dk/internal/services/web/platform/pagerender"
	webtemplates "github.com/okastrup/renteregner.dk/internal/services/web/templates"
	"github.com/okastrup/renteregner.dk/internal/storage"
	"github.com/okastrup/renteregner.dk/internal/telemetry"
)

func (m *Module) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)

	in := defaultInputs
	if hasInputs(r.URL.Query()) {
		in = parseInputs(r.URL.Query())
	} else if m.store != nil {
		if stored, ok, err := m.store.Current(ctx); err == nil && ok {
			in = stored
		}
	}

	result := m.run(ctx, r, in, "web_get")
	m.writePage(w, r, in, result)
}

func (m *Module) handlePost(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, err)
		return
	}
	in := parseInputs(r.PostForm)

	if m.store != nil {
		if err := m.store.Put(ctx, in); err != nil {
			log.Printf("calculator: store inputs: %v", err)
		}
	}

	result := m.run(ctx, r, in, "web_post")
	m.writePage(w, r, in, result)
}

// run executes the projection with tracing, metrics and telemetry around it.
func (m *Module) run(ctx context.Context, r *http.Request, in inputs.Inputs, surface string) projection.Result {
	ctx, span := m.tracer.Start(ctx, "projection.run")
	defer span.End()

	start := time.Now()
	result := m.engine.Run(in.ProjectionInput())
	m.metrics.ObserveProjection(start)
	m.metrics.IncrementProjectionRun("web")

	span.SetAttributes(
		attribute.Int("projection.years", result.Input.Years),
		attribute.Float64("projection.rate_percent", result.Input.AnnualRatePercent),
		attribute.Float64("projection.final_balance", result.Summary.FinalBalance),
	)

	m.emitRun(ctx, r, result, surface)
	return result
}

func (m *Module) emitRun(ctx context.Context, r *http.Request, result projection.Result, surface string) {
	if m.telemetry == nil {
		return
	}
	emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.Telemetry)
	defer cancel()

	requestID := ""
	if r != nil {
		requestID = r.Header.Get("X-Request-ID")
	}
	err := m.telemetry.Emit(emitCtx, storage.TelemetryEvent{
		EventName: "projection.run",
		Severity:  string(telemetry.SeverityInfo),
		Source:    surface,
		RequestID: requestID,
		Attributes: map[string]any{
			"principal":           result.Input.Principal,
			"annual_contribution": result.Input.AnnualContribution,
			"rate_percent":        result.Input.AnnualRatePercent,
			"years":               result.Input.Years,
			"final_balance":       result.Summary.FinalBalance,
		},
	})
	if err != nil {
		log.Printf("calculator: emit telemetry: %v", err)
	}
}

func (m *Module) writePage(w http.ResponseWriter, r *http.Request, in inputs.Inputs, result projection.Result) {
	loc, _ := webi18n.ResolveLocalizer(w, r)

	fragment := webtemplates.Results(loc, resultsView(result))
	if !httpx.IsHTMXRequest(r) {
		fragment = calculatorPage(loc, formValues(in), result.Validity, resultsView(result))
	}

	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "calculator.title"),
		Fragment: fragment,
	})
	if err != nil {
		log.Printf("calculator: render page: %v", err)
	}
}
