package model

import "fmt"

// ResonanceCandidate is a reduced fraction p/q describing an orbital period
// of (p/q) * T, where T is the sidereal rotation period of the body.
type ResonanceCandidate struct {
	P int
	Q int
}

// Ratio returns the period ratio p/q.
func (c ResonanceCandidate) Ratio() float64 {
	return float64(c.P) / float64(c.Q)
}

// Validate checks that p and q are positive and coprime.
func (c ResonanceCandidate) Validate() error {
	if c.P < 1 || c.Q < 1 {
		return fmt.Errorf("resonance %d/%d: p and q must be positive", c.P, c.Q)
	}
	if GCD(c.P, c.Q) != 1 {
		return fmt.Errorf("resonance %d/%d: p and q must be coprime", c.P, c.Q)
	}
	return nil
}

func (c ResonanceCandidate) String() string {
	return fmt.Sprintf("%d/%d", c.P, c.Q)
}

// GCD returns the greatest common divisor of two positive integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SolutionParams is the result of tracing both sides of the latitude domain
// for one resonance candidate: the eccentricity range over which the scanner
// achieves full-latitude coverage on an orbit with semi-major axis
// SemiMajorAxis.
type SolutionParams struct {
	P               int
	Q               int
	SemiMajorAxis   float64
	EccentricityMin float64
	EccentricityMax float64
}
