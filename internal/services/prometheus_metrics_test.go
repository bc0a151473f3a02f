package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)
	metrics := recorder.(*PrometheusMetrics)

	recorder.IncrementCounter("store.operation", map[string]string{"operation": "add", "status": "success"})
	recorder.IncrementCounter("store.operation", map[string]string{"operation": "add", "status": "success"})
	recorder.IncrementCounter("store.persist.failed", map[string]string{"operation": "remove"})
	recorder.IncrementCounter("store.seeded", nil)
	recorder.IncrementCounter("authentication_event", map[string]string{"event_type": "invalid_token"})
	recorder.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.storeOperations.WithLabelValues("add", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.persistFailures.WithLabelValues("remove")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.seededTransactions))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.authenticationTotal.WithLabelValues("invalid_token")))
}

func TestPrometheusMetrics_GaugeAndDurations(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)
	metrics := recorder.(*PrometheusMetrics)

	recorder.RecordGauge("store.transactions", 12, nil)
	recorder.RecordProcessingTime("store.add", 3*time.Millisecond)
	recorder.RecordProcessingTime("store.load", 10*time.Millisecond)

	assert.Equal(t, 12.0, testutil.ToFloat64(metrics.transactionsTotal))

	count, err := testutil.GatherAndCount(reg, "finance_store_operation_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

func TestNoopMetrics(t *testing.T) {
	recorder := NewNoopMetrics()
	assert.NotPanics(t, func() {
		recorder.IncrementCounter("store.operation", nil)
		recorder.RecordGauge("store.transactions", 1, nil)
		recorder.RecordProcessingTime("store.add", time.Second)
	})
}
