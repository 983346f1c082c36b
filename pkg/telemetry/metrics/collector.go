package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"chargekit/ocpicheck/pkg/ocpi"
)

// Collector owns the Prometheus metrics for the validation engine. All
// metrics live in a dedicated registry so tests and embedders never
// collide with the global default registry.
type Collector struct {
	registry *prometheus.Registry

	validationsTotal *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	payloadSize      *prometheus.HistogramVec
}

// NewCollector creates a Collector with all metrics registered. If
// registry is nil a fresh one is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		validationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ocpicheck",
			Name:      "validations_total",
			Help:      "Total payload validations by object type and outcome.",
		}, []string{"object_type", "outcome"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ocpicheck",
			Name:      "validation_errors_total",
			Help:      "Total validation errors by object type and error kind.",
		}, []string{"object_type", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ocpicheck",
			Name:      "validation_duration_seconds",
			Help:      "Validation latency by object type.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}, []string{"object_type"}),
		payloadSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ocpicheck",
			Name:      "payload_size_bytes",
			Help:      "Size of validated payloads by object type.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}, []string{"object_type"}),
	}

	registry.MustRegister(c.validationsTotal, c.errorsTotal, c.duration, c.payloadSize)
	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordValidation records one completed validation: its outcome, every
// error kind it produced, its latency and the payload size.
func (c *Collector) RecordValidation(result ocpi.ValidationResult, payloadBytes int, elapsed time.Duration) {
	objectType := string(result.ObjectType)

	outcome := "valid"
	if !result.IsValid {
		outcome = "invalid"
	}
	c.validationsTotal.WithLabelValues(objectType, outcome).Inc()

	for _, err := range result.Errors {
		c.errorsTotal.WithLabelValues(objectType, string(err.Kind)).Inc()
	}

	c.duration.WithLabelValues(objectType).Observe(elapsed.Seconds())
	c.payloadSize.WithLabelValues(objectType).Observe(float64(payloadBytes))
}
