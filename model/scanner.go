package model

import "fmt"

// Scanner describes a surface-scanning instrument. FOV is the track width
// swept per pass in degrees (not a cone angle); altitudes are metres above
// the surface. Immutable input to the solver.
type Scanner struct {
	FOV          float64
	AltitudeMin  float64
	AltitudeBest float64
	AltitudeMax  float64
}

// NewScanner validates the instrument parameters.
func NewScanner(fov, altMin, altBest, altMax float64) (Scanner, error) {
	if fov <= 0 {
		return Scanner{}, fmt.Errorf("scanner fov must be positive, got %g", fov)
	}
	if altMin < 0 {
		return Scanner{}, fmt.Errorf("scanner minimum altitude must not be negative, got %g", altMin)
	}
	if altMin > altBest || altBest > altMax {
		return Scanner{}, fmt.Errorf(
			"scanner altitudes must satisfy min <= best <= max, got %g/%g/%g",
			altMin, altBest, altMax,
		)
	}
	return Scanner{
		FOV:          fov,
		AltitudeMin:  altMin,
		AltitudeBest: altBest,
		AltitudeMax:  altMax,
	}, nil
}
