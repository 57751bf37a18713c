package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
)

const resultError = "error"

// Metrics holds the reconcile counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	reconcileTotal    *prometheus.CounterVec
	reconcileDuration prometheus.Histogram
}

// NewMetrics creates and registers the reconcile metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reconcileTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cfdistro",
				Name:      "reconcile_total",
				Help:      "Total number of reconciliations by result",
			},
			[]string{"result"},
		),
		reconcileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "cfdistro",
				Name:      "reconcile_duration_seconds",
				Help:      "Duration of reconciliation in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
		),
	}
	m.registry.MustRegister(m.reconcileTotal, m.reconcileDuration)
	return m
}

// Gatherer exposes the registry, e.g. for promhttp or tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to path in the text exposition format
// read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// record is a no-op on a nil receiver so callers need no enabled check.
func (m *Metrics) record(result string, seconds float64) {
	if m == nil {
		return
	}
	m.reconcileTotal.WithLabelValues(result).Inc()
	m.reconcileDuration.Observe(seconds)
}
