package api

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_SharedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()

	first, err := NewMetrics(registry)
	require.NoError(t, err)
	second, err := NewMetrics(registry)
	require.NoError(t, err)

	first.begin("GET", "v3/customers")
	second.end("GET", "v3/customers", 200, time.Millisecond)

	assert.Same(t, first.requestsTotal, second.requestsTotal)
	assert.Equal(t, 1.0, testutil.ToFloat64(first.requestsTotal.WithLabelValues("GET", "v3/customers", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.requestsInFlight.WithLabelValues("GET", "v3/customers")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.begin("GET", "v3/bill")
		m.attempt("GET", "v3/bill", 1)
		m.end("GET", "v3/bill", 500, time.Second)
		m.failure("GET", "v3/bill", "response")
	})
}

func TestNewMetrics_ConflictingRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "asaas_requests_total",
		Help: "Registered by someone else",
	}))

	var m *Metrics
	var err error
	require.NotPanics(t, func() { m, err = NewMetrics(registry) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register metrics")
	require.NotNil(t, m)

	m.begin("GET", "v3/customers")
	m.end("GET", "v3/customers", 200, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "v3/customers", "200")))
}
