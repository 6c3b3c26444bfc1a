package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Candidate outcomes recorded on the solve counter.
const (
	OutcomeFeasible   = "feasible"
	OutcomeInfeasible = "infeasible"
	OutcomeInvalid    = "invalid"
)

// SolverCollector bundles Prometheus metrics for solver runs and provides a
// ready-to-serve /metrics handler.
type SolverCollector struct {
	gatherer prometheus.Gatherer

	CandidatesEvaluated *prometheus.CounterVec
	SolveDuration       prometheus.Histogram
	CatalogBodies       prometheus.Gauge
}

// NewSolverCollector registers the solver metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewSolverCollector(reg prometheus.Registerer) (*SolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	candidates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scan_candidates_total",
		Help: "Total number of evaluated resonance candidates, labeled by outcome.",
	}, []string{"outcome"})
	candidates, err := registerCounterVec(reg, candidates, "scan_candidates_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scan_solve_duration_seconds",
		Help:    "Wall time spent tracing both sides of one resonance candidate.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	})
	duration, err = registerHistogram(reg, duration, "scan_solve_duration_seconds")
	if err != nil {
		return nil, err
	}

	bodies, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scan_catalog_bodies",
		Help: "Number of bodies available in the catalog.",
	}), "scan_catalog_bodies")
	if err != nil {
		return nil, err
	}

	return &SolverCollector{
		gatherer:            gatherer,
		CandidatesEvaluated: candidates,
		SolveDuration:       duration,
		CatalogBodies:       bodies,
	}, nil
}

// ObserveSolve records one candidate evaluation.
func (c *SolverCollector) ObserveSolve(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.CandidatesEvaluated != nil {
		c.CandidatesEvaluated.WithLabelValues(outcome).Inc()
	}
	if c.SolveDuration != nil {
		c.SolveDuration.Observe(elapsed.Seconds())
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SolverCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
