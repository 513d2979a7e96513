package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
)

func newTestHandler() http.Handler {
	return NewHandler(Config{
		Metrics: metrics.New(prometheus.NewRegistry()),
		Logger:  log.New(io.Discard, "", 0),
	})
}

func TestHandlerServesLandingPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Se hvor meget dine penge kan vokse") {
		t.Fatal("expected landing hero")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestHandlerServesCalculator(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/beregner", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "calculator-form") {
		t.Fatal("expected calculator form")
	}
}

func TestHandlerServesHealthAndStatic(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("health status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("static status = %d", rr.Code)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rr.Code)
	}
}

func TestHandlerRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ukendt-side", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Noget gik galt") {
		t.Fatal("expected localized error page")
	}
}

func TestServerShutsDownOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		Metrics:  metrics.New(prometheus.NewRegistry()),
		Logger:   log.New(io.Discard, "", 0),
	})
	t.Cleanup(func() { _ = srv.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
