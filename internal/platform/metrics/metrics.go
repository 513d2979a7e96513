// Package metrics provides Prometheus observability for projection runs
// and the surfaces that trigger them.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks projection run counts and critical path durations.
type Metrics struct {
	ProjectionRuns     *prometheus.CounterVec
	ProjectionDuration prometheus.Histogram
	RequestsInFlight   prometheus.Gauge
}

// New creates a Metrics instance registered on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProjectionRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "renteregner_projection_runs_total",
			Help: "Total number of projection runs by surface",
		}, []string{"surface"}),
		ProjectionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "renteregner_projection_duration_seconds",
			Help:    "Duration of projection engine runs",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		RequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "renteregner_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		}),
	}
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide Metrics instance registered on the
// default Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// IncrementProjectionRun records one projection run from the named surface.
func (m *Metrics) IncrementProjectionRun(surface string) {
	if m == nil {
		return
	}
	m.ProjectionRuns.WithLabelValues(surface).Inc()
}

// ObserveProjection records the duration of a projection engine run.
// Call with time.Now() at the start of the run.
func (m *Metrics) ObserveProjection(start time.Time) {
	if m == nil {
		return
	}
	m.ProjectionDuration.Observe(time.Since(start).Seconds())
}
