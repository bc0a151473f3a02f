package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	storeOperations     *prometheus.CounterVec
	persistFailures     *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	transactionsTotal   prometheus.Gauge
	seededTransactions  prometheus.Counter
	authenticationTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the store metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		storeOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_store_operations_total",
				Help: "Total number of transaction store operations",
			},
			[]string{"operation", "status"},
		),
		persistFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_store_persist_failures_total",
				Help: "Total number of failed writes of the transaction list",
			},
			[]string{"operation"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_store_operation_duration_milliseconds",
				Help:    "Transaction store operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		transactionsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "finance_store_transactions",
				Help: "Current number of transactions in the store",
			},
		),
		seededTransactions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_seeded_transactions_total",
				Help: "Total number of generated sample transactions added",
			},
		),
		authenticationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_authentication_events_total",
				Help: "Total number of API authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case "store.operation":
		m.storeOperations.WithLabelValues(operation, tags["status"]).Inc()
	case "store.persist.failed":
		m.persistFailures.WithLabelValues(operation).Inc()
	case "store.seeded":
		m.seededTransactions.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "store.load", "store.add", "store.remove", "store.seed":
		m.operationDuration.WithLabelValues(name[len("store."):]).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "store.transactions":
		m.transactionsTotal.Set(value)
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything, for the CLI and tests
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}

func (noopMetrics) RecordProcessingTime(string, time.Duration) {}

func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
