package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records ledger operation metrics
type PrometheusMetrics struct {
	ledgerOperations *prometheus.CounterVec
	reportDuration   prometheus.Histogram
	authEvents       *prometheus.CounterVec
}

// NewPrometheusMetrics registers and returns the service metrics
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger mutations and reads by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_seconds",
				Help:    "Report aggregation duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_events_total",
				Help: "Total number of authentication events by type",
			},
			[]string{"event"},
		),
	}
}

func (m *PrometheusMetrics) RecordLedgerOperation(operation, status string) {
	m.ledgerOperations.WithLabelValues(operation, status).Inc()
}

func (m *PrometheusMetrics) ObserveReportDuration(d time.Duration) {
	m.reportDuration.Observe(d.Seconds())
}

func (m *PrometheusMetrics) RecordAuthEvent(event string) {
	m.authEvents.WithLabelValues(event).Inc()
}

// NoopMetrics discards all recordings. Used in tests.
type NoopMetrics struct{}

func (NoopMetrics) RecordLedgerOperation(operation, status string) {}
func (NoopMetrics) ObserveReportDuration(d time.Duration)         {}
func (NoopMetrics) RecordAuthEvent(event string)                  {}
