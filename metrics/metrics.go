// Package metrics exposes the Prometheus metrics of the simulations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Metrics groups the collectors of the simulation runs.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	samples  prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auv_simulations_total",
				Help: "Total number of simulations run.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "auv_simulation_duration_seconds",
				Help:    "Wall clock duration of a simulation in seconds.",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
		),
		samples: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "auv_samples_total",
				Help: "Total number of trajectory samples computed.",
			},
		),
	}
	reg.MustRegister(m.runs, m.duration, m.samples)
	return m
}

// Observe records one simulation.
func (m *Metrics) Observe(outcome string, elapsed time.Duration, samples int) {
	m.runs.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.samples.Add(float64(samples))
}

// Handler returns the Prometheus metrics HTTP handler for the given gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
