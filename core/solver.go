package core

import (
	"context"
	"fmt"
	"math"

	"github.com/signalsfoundry/scan-coverage-solver/internal/logging"
	"github.com/signalsfoundry/scan-coverage-solver/model"
)

const (
	// Tolerance is the absolute convergence and bracket-width tolerance
	// shared by every 1D solve.
	Tolerance = 1e-5

	// DefaultFOVMax is the cap, in degrees, applied to the scaled track
	// width. Above it the altitude-scaling term of the coverage inequality
	// is no longer valid and the fixed-track variant takes over.
	DefaultFOVMax = 20

	// DefaultReferenceRadius is the body radius, in metres, below which the
	// scanner's track width is amplified by sqrt(reference/radius).
	DefaultReferenceRadius = 600_000

	// maxSolveStep clamps the per-iteration step of directional root
	// searches so a Newton update cannot jump across the unit domain.
	maxSolveStep = 0.1
)

// SolverConfig binds a scanner to a body and carries the tunables.
// Zero-valued tunables take their defaults.
type SolverConfig struct {
	Scanner model.Scanner
	Body    model.CelestialBody

	FOVMax          float64
	ReferenceRadius float64
	Logger          logging.Logger
}

// Solver evaluates resonance candidates for one (scanner, body) pair. The
// derived context -- scaled track width, the altitude it applies at, and the
// proportionality constant k -- is computed once at construction and never
// mutated, so a single Solver is safe for concurrent use across candidates.
type Solver struct {
	scanner model.Scanner
	body    model.CelestialBody

	fov    float64 // scaled track width, degrees
	fovAlt float64 // altitude the scaled track width applies at, metres
	k      float64 // 180 * fovAlt / fov
	capped bool    // track width saturated at fovMax

	fovMax float64
	log    logging.Logger
}

// NewSolver validates the configuration and derives the solver context.
func NewSolver(cfg SolverConfig) (*Solver, error) {
	if cfg.Scanner.FOV <= 0 {
		return nil, fmt.Errorf("scanner fov must be positive, got %g", cfg.Scanner.FOV)
	}
	if cfg.Scanner.AltitudeMin > cfg.Scanner.AltitudeBest || cfg.Scanner.AltitudeBest > cfg.Scanner.AltitudeMax {
		return nil, fmt.Errorf("scanner altitudes must satisfy min <= best <= max")
	}
	if cfg.Body.Radius <= 0 || cfg.Body.GeoRadius <= 0 {
		return nil, fmt.Errorf("body %q has no valid derived radii; construct it via model.NewCelestialBody", cfg.Body.Name)
	}

	fovMax := cfg.FOVMax
	if fovMax <= 0 {
		fovMax = DefaultFOVMax
	}
	refRadius := cfg.ReferenceRadius
	if refRadius <= 0 {
		refRadius = DefaultReferenceRadius
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Noop()
	}

	fov := cfg.Scanner.FOV
	fovAlt := cfg.Scanner.AltitudeBest
	if cfg.Body.Radius < refRadius {
		// Track width only scales up for bodies smaller than the reference.
		fov *= math.Sqrt(refRadius / cfg.Body.Radius)
	}
	capped := fov > fovMax
	if capped {
		// Lower the altitude to where the track width saturates.
		fovAlt *= fovMax / fov
		fov = fovMax
	}

	return &Solver{
		scanner: cfg.Scanner,
		body:    cfg.Body,
		fov:     fov,
		fovAlt:  fovAlt,
		k:       180 * fovAlt / fov,
		capped:  capped,
		fovMax:  fovMax,
		log:     log,
	}, nil
}

// FOV returns the scaled track width in degrees.
func (s *Solver) FOV() float64 { return s.fov }

// FOVAltitude returns the altitude, in metres, at which the scaled track
// width applies.
func (s *Solver) FOVAltitude() float64 { return s.fovAlt }

// TrackCapped reports whether the scaled track width saturated at the cap,
// in which case coverage is checked with the fixed-track inequality.
func (s *Solver) TrackCapped() bool { return s.capped }

// SemiMajorAxis returns the semi-major axis of an orbit with period
// (p/q) * T, where T is the body's sidereal rotation period.
func (s *Solver) SemiMajorAxis(p, q int) float64 {
	return math.Pow(float64(p)/float64(q), 2.0/3.0) * s.body.GeoRadius
}

// Solve traces both sides of the latitude domain for the resonance p/q and
// assembles the admissible eccentricity range. The second return value is
// false when the candidate is infeasible -- no eccentricity gives
// full-latitude coverage -- which is an expected outcome, not an error.
// An error is returned only for invalid input.
func (s *Solver) Solve(p, q int) (model.SolutionParams, bool, error) {
	cand := model.ResonanceCandidate{P: p, Q: q}
	if err := cand.Validate(); err != nil {
		return model.SolutionParams{}, false, err
	}

	eccMin, okMin := s.traceBoundary(p, q, SideBottom)
	if !okMin {
		return model.SolutionParams{}, false, nil
	}
	eccMax, okMax := s.traceBoundary(p, q, SideTop)
	if !okMax {
		return model.SolutionParams{}, false, nil
	}
	if eccMin > eccMax {
		// The two sides crossed: no eccentricity satisfies both bounds.
		return model.SolutionParams{}, false, nil
	}

	return model.SolutionParams{
		P:               p,
		Q:               q,
		SemiMajorAxis:   s.SemiMajorAxis(p, q),
		EccentricityMin: eccMin,
		EccentricityMax: eccMax,
	}, true, nil
}

// value is the coverage inequality S*F - M, or its fixed-track variant when
// the track width is capped.
func (s *Solver) value(p, q int, x, y float64) float64 {
	if s.capped {
		return s.fixedTrackValue(p, q, x, y)
	}
	return s.inequalityValue(p, q, x, y)
}

func (s *Solver) valueDx(p, q int, x, y float64) float64 {
	if s.capped {
		return s.fixedTrackDx(p, q, x, y)
	}
	return s.inequalityDx(p, q, x, y)
}

func (s *Solver) valueDy(p, q int, x, y float64) float64 {
	if s.capped {
		return s.fixedTrackDy(p, q, x, y)
	}
	return s.inequalityDy(p, q, x, y)
}

// bisect wraps bisectRoot with the ambiguous-bracket diagnostic. The
// returned estimate is advisory only when bracketed is false.
func (s *Solver) bisect(f func(float64) float64, x0, x1 float64) (root float64, bracketed bool) {
	root, bracketed = bisectRoot(f, x0, x1)
	if !bracketed {
		s.log.Warn(context.Background(), "bisection interval does not bracket a sign change; returning best-effort estimate",
			logging.Float64("x0", x0),
			logging.Float64("x1", x1),
			logging.Float64("estimate", root),
		)
	}
	return root, bracketed
}
