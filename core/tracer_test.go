package core

import (
	"math"
	"sync"
	"testing"

	"github.com/signalsfoundry/scan-coverage-solver/model"
)

// A 180 degree track width with the cap lifted admits a closed-form check:
// the lower bound stays at a circular orbit, and the upper bound is set by
// the periapsis grazing the surface at the pole column, e = sqrt(1 - R/a).
func TestSolveWideTrackSynchronous(t *testing.T) {
	s := newKerbinSolver(t, 180, 360)

	params, ok, err := s.Solve(1, 1)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !ok {
		t.Fatalf("expected a feasible 1/1 resonance")
	}
	if s.TrackCapped() {
		t.Fatalf("track must not be capped with the cap at 360 degrees")
	}
	if params.EccentricityMin != 0 {
		t.Errorf("EccentricityMin = %v, want exactly 0", params.EccentricityMin)
	}
	want := math.Sqrt(1 - kerbinBody(t).Radius/kerbinBody(t).GeoRadius)
	if math.Abs(params.EccentricityMax-want) > 1e-3 {
		t.Errorf("EccentricityMax = %v, want ~%v", params.EccentricityMax, want)
	}
}

// With a 90 degree track the pole column no longer binds on its own and the
// upper bound comes from an interior tangency, strictly below the grazing
// eccentricity.
func TestSolveInteriorTangency(t *testing.T) {
	s := newKerbinSolver(t, 90, 360)

	params, ok, err := s.Solve(1, 1)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !ok {
		t.Fatalf("expected a feasible 1/1 resonance")
	}
	if params.EccentricityMin != 0 {
		t.Errorf("EccentricityMin = %v, want exactly 0", params.EccentricityMin)
	}
	grazing := math.Sqrt(1 - kerbinBody(t).Radius/kerbinBody(t).GeoRadius)
	if params.EccentricityMax <= 0 || params.EccentricityMax >= grazing {
		t.Errorf("EccentricityMax = %v, want in (0, %v)", params.EccentricityMax, grazing)
	}
}

// A narrow scanner on a high-denominator resonance orbits below the surface;
// every eccentricity column is uncovered and both traces must give up rather
// than report a bound.
func TestSolveInfeasibleResonance(t *testing.T) {
	sc, err := model.NewScanner(5, 70_000, 250_000, 500_000)
	if err != nil {
		t.Fatalf("scanner: %v", err)
	}
	s, err := NewSolver(SolverConfig{Scanner: sc, Body: kerbinBody(t)})
	if err != nil {
		t.Fatalf("solver: %v", err)
	}

	if _, ok := s.traceBoundary(1, 200, SideBottom); ok {
		t.Errorf("bottom trace found a bound for an orbit inside the body")
	}
	if _, ok := s.traceBoundary(1, 200, SideTop); ok {
		t.Errorf("top trace found a bound for an orbit inside the body")
	}
	if _, ok, err := s.Solve(1, 200); err != nil || ok {
		t.Errorf("Solve(1, 200) = ok=%v err=%v, want infeasible without error", ok, err)
	}
}

// Once the track width saturates, the fixed-track inequality must never admit
// a wider eccentricity range than the altitude-scaled one would.
func TestFixedTrackNoWiderThanScaled(t *testing.T) {
	sc, err := model.NewScanner(30, 25_000, 250_000, 500_000)
	if err != nil {
		t.Fatalf("scanner: %v", err)
	}
	s, err := NewSolver(SolverConfig{Scanner: sc, Body: minmusBody(t)})
	if err != nil {
		t.Fatalf("solver: %v", err)
	}
	if !s.TrackCapped() {
		t.Fatalf("expected the scaled track width to saturate on minmus")
	}

	fixed, fixedOK, err := s.Solve(1, 1)
	if err != nil {
		t.Fatalf("Solve (fixed track): %v", err)
	}

	scaled := *s
	scaled.capped = false
	std, stdOK, err := scaled.Solve(1, 1)
	if err != nil {
		t.Fatalf("Solve (scaled): %v", err)
	}
	if !stdOK {
		t.Fatalf("scaled inequality should be feasible for 1/1 on minmus")
	}
	if std.EccentricityMin != 0 {
		t.Errorf("scaled EccentricityMin = %v, want 0", std.EccentricityMin)
	}
	grazing := math.Sqrt(1 - minmusBody(t).Radius/minmusBody(t).GeoRadius)
	if std.EccentricityMax <= 0 || std.EccentricityMax >= grazing+1e-6 {
		t.Errorf("scaled EccentricityMax = %v, want in (0, %v]", std.EccentricityMax, grazing)
	}
	if fixedOK && fixed.EccentricityMax > std.EccentricityMax+1e-6 {
		t.Errorf("fixed-track EccentricityMax %v exceeds scaled %v",
			fixed.EccentricityMax, std.EccentricityMax)
	}
}

func TestSolveDeterministic(t *testing.T) {
	s := newKerbinSolver(t, 90, 360)

	first, ok1, err1 := s.Solve(1, 1)
	second, ok2, err2 := s.Solve(1, 1)
	if err1 != nil || err2 != nil {
		t.Fatalf("Solve: %v / %v", err1, err2)
	}
	if ok1 != ok2 || first != second {
		t.Errorf("repeated solves diverged: %+v vs %+v", first, second)
	}
}

// A single Solver is advertised as safe for concurrent use: concurrent
// solves must reproduce the serial results bit for bit.
func TestSolveConcurrent(t *testing.T) {
	s := newKerbinSolver(t, 90, 360)

	candidates := []model.ResonanceCandidate{
		{P: 1, Q: 1}, {P: 2, Q: 1}, {P: 3, Q: 2}, {P: 5, Q: 3}, {P: 7, Q: 4},
	}

	type outcome struct {
		params model.SolutionParams
		ok     bool
	}
	serial := make([]outcome, len(candidates))
	for i, c := range candidates {
		params, ok, err := s.Solve(c.P, c.Q)
		if err != nil {
			t.Fatalf("Solve(%s): %v", c, err)
		}
		serial[i] = outcome{params, ok}
	}

	concurrent := make([]outcome, len(candidates))
	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c model.ResonanceCandidate) {
			defer wg.Done()
			params, ok, err := s.Solve(c.P, c.Q)
			if err != nil {
				t.Errorf("Solve(%s): %v", c, err)
				return
			}
			concurrent[i] = outcome{params, ok}
		}(i, c)
	}
	wg.Wait()

	for i, c := range candidates {
		if serial[i] != concurrent[i] {
			t.Errorf("%s: concurrent result %+v differs from serial %+v", c, concurrent[i], serial[i])
		}
	}
}
