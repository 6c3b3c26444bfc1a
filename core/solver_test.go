package core

import (
	"math"
	"testing"

	"github.com/signalsfoundry/scan-coverage-solver/model"
)

func kerbinBody(t *testing.T) model.CelestialBody {
	t.Helper()
	b, err := model.NewCelestialBody("kerbin", 600_000, 21_549.425, 3.5316e12, 70_000, 84_159_286)
	if err != nil {
		t.Fatalf("kerbin: %v", err)
	}
	return b
}

func minmusBody(t *testing.T) model.CelestialBody {
	t.Helper()
	b, err := model.NewCelestialBody("minmus", 60_000, 40_400, 1.7658e9, 10_000, 2_247_428.4)
	if err != nil {
		t.Fatalf("minmus: %v", err)
	}
	return b
}

// newKerbinSolver builds a solver for a scanner with best altitude 500 km;
// fovMax <= 0 keeps the default cap.
func newKerbinSolver(t *testing.T, fov, fovMax float64) *Solver {
	t.Helper()
	sc, err := model.NewScanner(fov, 100_000, 500_000, 800_000)
	if err != nil {
		t.Fatalf("scanner: %v", err)
	}
	s, err := NewSolver(SolverConfig{Scanner: sc, Body: kerbinBody(t), FOVMax: fovMax})
	if err != nil {
		t.Fatalf("solver: %v", err)
	}
	return s
}

func TestNewSolverRejectsInvalidInput(t *testing.T) {
	body := kerbinBody(t)
	cases := []struct {
		name string
		cfg  SolverConfig
	}{
		{"zero fov", SolverConfig{Scanner: model.Scanner{AltitudeBest: 1, AltitudeMax: 1}, Body: body}},
		{"altitude order", SolverConfig{
			Scanner: model.Scanner{FOV: 5, AltitudeMin: 500_000, AltitudeBest: 250_000, AltitudeMax: 800_000},
			Body:    body,
		}},
		{"unconstructed body", SolverConfig{
			Scanner: model.Scanner{FOV: 5, AltitudeBest: 250_000, AltitudeMax: 500_000},
			Body:    model.CelestialBody{Name: "raw", Radius: 600_000},
		}},
	}
	for _, c := range cases {
		if _, err := NewSolver(c.cfg); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestNewSolverScalesTrackWidthForSmallBodies(t *testing.T) {
	sc, err := model.NewScanner(4, 25_000, 250_000, 500_000)
	if err != nil {
		t.Fatalf("scanner: %v", err)
	}
	s, err := NewSolver(SolverConfig{Scanner: sc, Body: minmusBody(t)})
	if err != nil {
		t.Fatalf("solver: %v", err)
	}

	// Minmus has a tenth of the reference radius, so the track width grows
	// by sqrt(10) but stays under the cap.
	want := 4 * math.Sqrt(10)
	if math.Abs(s.FOV()-want) > 1e-9 {
		t.Errorf("FOV = %v, want %v", s.FOV(), want)
	}
	if s.TrackCapped() {
		t.Errorf("track should not be capped at %v degrees", s.FOV())
	}
	if s.FOVAltitude() != 250_000 {
		t.Errorf("FOVAltitude = %v, want best altitude unchanged", s.FOVAltitude())
	}
}

func TestNewSolverCapsTrackWidth(t *testing.T) {
	sc, err := model.NewScanner(30, 25_000, 250_000, 500_000)
	if err != nil {
		t.Fatalf("scanner: %v", err)
	}
	s, err := NewSolver(SolverConfig{Scanner: sc, Body: minmusBody(t)})
	if err != nil {
		t.Fatalf("solver: %v", err)
	}

	// 30 * sqrt(10) = 94.868 degrees saturates the 20 degree cap, and the
	// applicable altitude drops by the same factor.
	if !s.TrackCapped() {
		t.Fatalf("expected the track width to be capped")
	}
	if s.FOV() != DefaultFOVMax {
		t.Errorf("FOV = %v, want %v", s.FOV(), float64(DefaultFOVMax))
	}
	wantAlt := 250_000 * DefaultFOVMax / (30 * math.Sqrt(10))
	if math.Abs(s.FOVAltitude()-wantAlt) > 0.5 {
		t.Errorf("FOVAltitude = %v, want ~%v", s.FOVAltitude(), wantAlt)
	}
	wantK := 180 * wantAlt / DefaultFOVMax
	if math.Abs(s.k-wantK) > 5 {
		t.Errorf("k = %v, want ~%v", s.k, wantK)
	}
}

func TestSemiMajorAxis(t *testing.T) {
	s := newKerbinSolver(t, 5, 0)

	if got, want := s.SemiMajorAxis(1, 1), kerbinBody(t).GeoRadius; math.Abs(got-want) > 1e-6 {
		t.Errorf("a(1/1) = %v, want the synchronous radius %v", got, want)
	}
	ratio := s.SemiMajorAxis(2, 1) / s.SemiMajorAxis(1, 1)
	if want := math.Pow(2, 2.0/3.0); math.Abs(ratio-want) > 1e-12 {
		t.Errorf("a(2/1)/a(1/1) = %v, want %v", ratio, want)
	}
}

func TestSolveRejectsInvalidCandidates(t *testing.T) {
	s := newKerbinSolver(t, 5, 0)

	if _, _, err := s.Solve(0, 1); err == nil {
		t.Errorf("expected an error for p=0")
	}
	if _, _, err := s.Solve(2, 4); err == nil {
		t.Errorf("expected an error for a non-reduced fraction")
	}
}
