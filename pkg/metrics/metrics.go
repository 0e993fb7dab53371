package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Config holds the metric naming settings.
type Config struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"reqcheck"`
}

// ValidationMetrics counts validation passes and the failures they recorded.
//
//	<namespace>_validation_passes_total{result="accepted|rejected"}
//	<namespace>_validation_failures_total{kind="null|blank|empty|below_minimum|above_maximum"}
type ValidationMetrics struct {
	registry *prometheus.Registry
	passes   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewValidationMetrics registers the counters on registry. A nil registry
// gets a fresh private one. Every label value is pre-initialised so that
// series exist before the first request.
func NewValidationMetrics(namespace string, registry *prometheus.Registry) *ValidationMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if namespace == "" {
		namespace = "reqcheck"
	}

	m := &ValidationMetrics{
		registry: registry,
		passes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "validation",
				Name:      "passes_total",
				Help:      "Validation passes by result.",
			},
			[]string{"result"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "validation",
				Name:      "failures_total",
				Help:      "Recorded validation failures by kind.",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(m.passes, m.failures)

	m.passes.WithLabelValues(ResultAccepted)
	m.passes.WithLabelValues(ResultRejected)
	for _, k := range validator.AllKinds() {
		m.failures.WithLabelValues(string(k))
	}

	return m
}

// Observe records one finished pass. A nil report counts as accepted.
// Safe on a nil receiver so that metrics can be switched off by passing nil.
func (m *ValidationMetrics) Observe(errs *validator.Errors) {
	if m == nil {
		return
	}
	if errs == nil || errs.IsEmpty() {
		m.passes.WithLabelValues(ResultAccepted).Inc()
		return
	}

	m.passes.WithLabelValues(ResultRejected).Inc()
	for kind, n := range errs.Kinds() {
		m.failures.WithLabelValues(string(kind)).Add(float64(n))
	}
}

func (m *ValidationMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus exposition format.
func (m *ValidationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
