package metrics

import (
	"net/http"

	apperrors "arith/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics represents the collection of calculator Prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	OperationsTotal    *prometheus.CounterVec
	FailuresTotal      *prometheus.CounterVec
	SpecializedCreated *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a private registry.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arith_operations_total",
			Help: "Total number of evaluated operations",
		},
		[]string{"operation"},
	)

	m.FailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arith_operation_failures_total",
			Help: "Total number of failed operations by error kind",
		},
		[]string{"operation", "kind"},
	)

	m.SpecializedCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arith_specialized_created_total",
			Help: "Total number of specialized calculators created",
		},
		[]string{"operation"},
	)

	m.registry.MustRegister(
		m.OperationsTotal,
		m.FailuresTotal,
		m.SpecializedCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Observe records one evaluation of op and, if err is non-nil, its failure kind.
func (m *Metrics) Observe(op string, err error) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(op).Inc()
	if err != nil {
		m.FailuresTotal.WithLabelValues(op, apperrors.KindOf(err).String()).Inc()
	}
}

// ObserveSpecialized records the creation of a specialized calculator.
func (m *Metrics) ObserveSpecialized(op string) {
	if m == nil {
		return
	}
	m.SpecializedCreated.WithLabelValues(op).Inc()
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
