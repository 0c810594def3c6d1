package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the report
// service.
type Metrics struct {
	ReportsSubmitted   *prometheus.CounterVec // label: status={APPROVED,CAUTION,DENIED}
	ValidationFailures prometheus.Counter
	AnalysisDuration   prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ValidationFailures,
		m.AnalysisDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can construct the service repeatedly without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "searep",
			Name:      "reports_submitted_total",
			Help:      "Reports accepted and stored, by verdict.",
		}, []string{"status"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "searep",
			Name:      "validation_failures_total",
			Help:      "Submissions rejected by request validation.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "searep",
			Name:      "analysis_duration_seconds",
			Help:      "Duration of a complete scoring and assembly run.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}
