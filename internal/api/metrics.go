package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records Prometheus metrics for API calls. It is safe for
// concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	attemptsTotal    *prometheus.CounterVec
	retriesTotal     *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
}

// NewMetrics registers the client metrics on registerer. Collectors already
// registered by another client on the same registerer are reused. When a
// collector cannot be registered, the first error is returned along with
// usable Metrics that keep that collector unregistered.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	r := &registrar{registerer: registerer}
	m := &Metrics{
		requestsTotal: register(r, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asaas_requests_total",
				Help: "Total number of API calls, by final status",
			},
			[]string{"method", "endpoint", "status_code"},
		)),
		requestDuration: register(r, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "asaas_request_duration_seconds",
				Help:    "Duration of API calls in seconds, retries included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status_code"},
		)),
		requestsInFlight: register(r, prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "asaas_requests_in_flight",
				Help: "Number of API calls currently in flight",
			},
			[]string{"method", "endpoint"},
		)),
		attemptsTotal: register(r, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asaas_attempts_total",
				Help: "Total number of HTTP attempts sent",
			},
			[]string{"method", "endpoint"},
		)),
		retriesTotal: register(r, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asaas_retries_total",
				Help: "Total number of retries",
			},
			[]string{"method", "endpoint", "attempt"},
		)),
		errorsTotal: register(r, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asaas_errors_total",
				Help: "Total number of failed API calls, by error kind",
			},
			[]string{"method", "endpoint", "kind"},
		)),
	}
	return m, r.err
}

// registrar keeps the first registration failure.
type registrar struct {
	registerer prometheus.Registerer
	err        error
}

func register[T prometheus.Collector](r *registrar, c T) T {
	if r.registerer == nil {
		return c
	}
	if err := r.registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		if r.err == nil {
			r.err = fmt.Errorf("register metrics: %w", err)
		}
	}
	return c
}

func (m *Metrics) begin(method, endpoint string) {
	if m == nil {
		return
	}
	m.requestsInFlight.WithLabelValues(method, endpoint).Inc()
}

func (m *Metrics) attempt(method, endpoint string, n int) {
	if m == nil {
		return
	}
	m.attemptsTotal.WithLabelValues(method, endpoint).Inc()
	if n > 0 {
		m.retriesTotal.WithLabelValues(method, endpoint, strconv.Itoa(n)).Inc()
	}
}

func (m *Metrics) end(method, endpoint string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := strconv.Itoa(statusCode)
	m.requestsInFlight.WithLabelValues(method, endpoint).Dec()
	m.requestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.requestDuration.WithLabelValues(method, endpoint, status).Observe(elapsed.Seconds())
}

func (m *Metrics) failure(method, endpoint, kind string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(method, endpoint, kind).Inc()
}
