// Package metrics exports solver progress as Prometheus metrics.
//
// Collector owns a private registry so several collectors (tests, parallel
// runs in one process) never clash on registration. It implements
// genetic.Observer; hand it to the engine with genetic.WithObserver.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathfinding/genetic"
)

// Outcome labels for RecordRun.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector holds every metric of one process.
type Collector struct {
	registry *prometheus.Registry

	Generations        prometheus.Counter
	BestCost           prometheus.Gauge
	GenerationDuration prometheus.Histogram
	SeedFallbacks      prometheus.Counter

	Runs        *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec
}

var _ genetic.Observer = (*Collector)(nil)

// NewCollector creates and registers all metrics under namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Total number of completed GA generations",
		}),
		BestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_cost",
			Help:      "Cost of the best tour in the current population",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall-clock time of one GA generation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		SeedFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_fallbacks_total",
			Help:      "Random-walk steps that fell back to scanning the neighbour list",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of solver runs by solver and outcome",
		}, []string{"solver", "outcome"}),
		RunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock time of one solver run in seconds",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
		}, []string{"solver"}),
	}

	registry.MustRegister(
		c.Generations,
		c.BestCost,
		c.GenerationDuration,
		c.SeedFallbacks,
		c.Runs,
		c.RunDuration,
	)

	return c
}

// OnGeneration records one GA generation.
func (c *Collector) OnGeneration(s genetic.GenerationStats) {
	c.Generations.Inc()
	c.GenerationDuration.Observe(s.Duration.Seconds())
	c.SeedFallbacks.Add(float64(s.SeedFallbacks))
	if s.BestCost != genetic.WorstFitness {
		c.BestCost.Set(float64(s.BestCost))
	}
}

// RecordRun counts one finished solver run.
func (c *Collector) RecordRun(solver string, elapsed time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.Runs.WithLabelValues(solver, outcome).Inc()
	c.RunDuration.WithLabelValues(solver).Observe(elapsed.Seconds())
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
