package calculator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
	"github.com/okastrup/renteregner.dk/internal/projection"
)

func newTestModule(store inputs.Store) *Module {
	return New(Dependencies{
		Engine:  projection.NewEngine(),
		Store:   store,
		Metrics: metrics.New(prometheus.NewRegistry()),
	})
}

func testMux(m *Module) *http.ServeMux {
	mux := http.NewServeMux()
	m.Routes(mux)
	return mux
}

func TestGetRendersFormAndResults(t *testing.T) {
	t.Parallel()

	mux := testMux(newTestModule(inputs.NewMemoryStore()))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/beregner", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	html := rr.Body.String()
	for _, marker := range []string{"<!DOCTYPE html>", "calculator-form", `id="results"`, "Renteberegner"} {
		if !strings.Contains(html, marker) {
			t.Fatalf("page missing %q", marker)
		}
	}
}

func TestGetPrefillsFromQuery(t *testing.T) {
	t.Parallel()

	mux := testMux(newTestModule(inputs.NewMemoryStore()))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/beregner?startbeloeb=50.000&indskud=5.000&afkast=20&aar=20", nil))

	html := rr.Body.String()
	if !strings.Contains(html, `name="startbeloeb" value="50000"`) {
		t.Fatalf("expected prefilled principal:\n%s", html)
	}
	if !strings.Contains(html, `name="aar" value="20"`) {
		t.Fatalf("expected prefilled years:\n%s", html)
	}
}

func TestGetPrefillsFromStore(t *testing.T) {
	t.Parallel()

	store := inputs.NewMemoryStore()
	if err := store.Put(context.Background(), inputs.Inputs{Principal: 1000, MonthlyContribution: 200, AnnualRatePercent: 5, Years: 10}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	mux := testMux(newTestModule(store))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/beregner", nil))

	if !strings.Contains(rr.Body.String(), `name="indskud" value="200"`) {
		t.Fatal("expected stored monthly contribution prefilled")
	}
}

func TestPostStoresInputsAndRendersResults(t *testing.T) {
	t.Parallel()

	store := inputs.NewMemoryStore()
	mux := testMux(newTestModule(store))

	form := url.Values{
		"startbeloeb": {"0"},
		"indskud":     {"5000"},
		"afkast":      {"20"},
		"aar":         {"20"},
	}
	req := httptest.NewRequest(http.MethodPost, "/beregner", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	// 5000 kr./month at 20 pct. over 20 years is the flagship marketing figure.
	if !strings.Contains(rr.Body.String(), "13.441.5") {
		t.Fatalf("expected marketing-scale final balance:\n%s", rr.Body.String())
	}

	stored, ok, err := store.Current(context.Background())
	if err != nil || !ok {
		t.Fatalf("stored inputs missing: ok=%v err=%v", ok, err)
	}
	if stored.MonthlyContribution != 5000 || stored.Years != 20 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestPostHTMXReturnsFragmentOnly(t *testing.T) {
	t.Parallel()

	mux := testMux(newTestModule(inputs.NewMemoryStore()))
	form := url.Values{"indskud": {"1000"}, "afkast": {"5"}, "aar": {"10"}}
	req := httptest.NewRequest(http.MethodPost, "/beregner", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	html := rr.Body.String()
	if strings.Contains(html, "<!DOCTYPE html>") {
		t.Fatal("HTMX response should not include full layout")
	}
	if !strings.Contains(html, `id="results"`) {
		t.Fatalf("expected results fragment:\n%s", html)
	}
}

func TestPostShowsAdvisoryHintWithoutBlocking(t *testing.T) {
	t.Parallel()

	mux := testMux(newTestModule(inputs.NewMemoryStore()))
	form := url.Values{"afkast": {"60"}, "aar": {"10"}}
	req := httptest.NewRequest(http.MethodPost, "/beregner", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("advisory validation must not block: status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Afkastet er urealistisk højt") {
		t.Fatal("expected rate advisory hint")
	}
}
