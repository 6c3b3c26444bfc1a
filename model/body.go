package model

import (
	"fmt"
	"math"
)

// CelestialBody describes a rotating body that can be orbited and scanned.
// Distances are metres, periods seconds, the gravitational parameter m^3/s^2.
// Construct via NewCelestialBody so derived fields are computed and validated
// once; values are treated as immutable afterwards.
type CelestialBody struct {
	Name           string
	Radius         float64
	RotationPeriod float64 // sidereal
	GravParameter  float64 // standard gravitational parameter, G*m
	SafeAltitude   float64
	SOIRadius      float64 // sphere of influence; +Inf for a primary star

	// GeoRadius is the semi-major axis of an orbit whose period matches the
	// body's sidereal rotation: cuberoot(mu * T^2 / (4 * pi^2)).
	GeoRadius float64
}

// NewCelestialBody validates the raw parameters and computes GeoRadius.
func NewCelestialBody(name string, radius, rotationPeriod, mu, safeAltitude, soiRadius float64) (CelestialBody, error) {
	if name == "" {
		return CelestialBody{}, fmt.Errorf("body name must not be empty")
	}
	if radius <= 0 {
		return CelestialBody{}, fmt.Errorf("body %q: radius must be positive, got %g", name, radius)
	}
	if rotationPeriod <= 0 {
		return CelestialBody{}, fmt.Errorf("body %q: rotation period must be positive, got %g", name, rotationPeriod)
	}
	if mu <= 0 {
		return CelestialBody{}, fmt.Errorf("body %q: gravitational parameter must be positive, got %g", name, mu)
	}
	if safeAltitude < 0 {
		return CelestialBody{}, fmt.Errorf("body %q: safe altitude must not be negative, got %g", name, safeAltitude)
	}
	if soiRadius <= radius {
		return CelestialBody{}, fmt.Errorf("body %q: sphere of influence must exceed the body radius", name)
	}

	return CelestialBody{
		Name:           name,
		Radius:         radius,
		RotationPeriod: rotationPeriod,
		GravParameter:  mu,
		SafeAltitude:   safeAltitude,
		SOIRadius:      soiRadius,
		GeoRadius:      math.Cbrt(mu * rotationPeriod * rotationPeriod / (4 * math.Pi * math.Pi)),
	}, nil
}
