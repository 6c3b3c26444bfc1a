package core

import "math"

// Coverage inequality S*F >= M over x = cos(latitude) in [0,1] and
// y = eccentricity in [0,1). The forms below are rearranged so that every
// term is evaluable anywhere on the closed domain: S carries the orbital
// angular speed inside the square root, and F is multiplied through by
// (1-xy) so no quotient appears. Only the derivative forms degenerate, and
// only at the single corner x=1, y=1, which callers never probe.

// speedRatio is S: the angular speed of the scanner track relative to the
// rotating surface, rearranged as sqrt(q^2 (1-xy)^4 + p^2 (1-y^2)^3).
func (s *Solver) speedRatio(p, q int, x, y float64) float64 {
	pf, qf := float64(p), float64(q)
	u := 1 - x*y
	w := 1 - y*y
	return math.Sqrt(qf*qf*u*u*u*u + pf*pf*w*w*w)
}

func (s *Solver) speedRatioDx(p, q int, x, y float64) float64 {
	qf := float64(q)
	u := 1 - x*y
	return -2 * qf * qf * y * u * u * u / s.speedRatio(p, q, x, y)
}

func (s *Solver) speedRatioDy(p, q int, x, y float64) float64 {
	pf, qf := float64(p), float64(q)
	u := 1 - x*y
	w := 1 - y*y
	return -(2*qf*qf*x*u*u*u + 3*pf*pf*y*w*w) / s.speedRatio(p, q, x, y)
}

// fovTerm is F: the track width available at each point of the orbit,
// rearranged as (1-y^2)*sma - (1-xy)*R to avoid dividing by (1-xy).
func (s *Solver) fovTerm(p, q int, x, y float64) float64 {
	return (1-y*y)*s.SemiMajorAxis(p, q) - (1-x*y)*s.body.Radius
}

func (s *Solver) fovTermDx(p, q int, x, y float64) float64 {
	return s.body.Radius * y
}

func (s *Solver) fovTermDy(p, q int, x, y float64) float64 {
	return x*s.body.Radius - 2*y*s.SemiMajorAxis(p, q)
}

// coverage is M: the track width required at each latitude, k*x*(1-xy)^3.
func (s *Solver) coverage(p, q int, x, y float64) float64 {
	u := 1 - x*y
	return s.k * x * u * u * u
}

func (s *Solver) coverageDx(p, q int, x, y float64) float64 {
	u := 1 - x*y
	return s.k * (1 - 4*x*y) * u * u
}

func (s *Solver) coverageDy(p, q int, x, y float64) float64 {
	u := 1 - x*y
	return -3 * s.k * x * x * u * u
}

// inequalityValue is the signed margin S*F - M; coverage holds where it is
// non-negative.
func (s *Solver) inequalityValue(p, q int, x, y float64) float64 {
	return s.speedRatio(p, q, x, y)*s.fovTerm(p, q, x, y) - s.coverage(p, q, x, y)
}

func (s *Solver) inequalityDx(p, q int, x, y float64) float64 {
	sr := s.speedRatio(p, q, x, y)
	ft := s.fovTerm(p, q, x, y)
	return sr*s.fovTermDx(p, q, x, y) + ft*s.speedRatioDx(p, q, x, y) - s.coverageDx(p, q, x, y)
}

func (s *Solver) inequalityDy(p, q int, x, y float64) float64 {
	sr := s.speedRatio(p, q, x, y)
	ft := s.fovTerm(p, q, x, y)
	return sr*s.fovTermDy(p, q, x, y) + ft*s.speedRatioDy(p, q, x, y) - s.coverageDy(p, q, x, y)
}

// fixedTrackValue is the variant S - M/fovAlt used once the track width has
// saturated at the cap: F's altitude scaling over-credits coverage above the
// saturation altitude, so the track width is checked unscaled.
func (s *Solver) fixedTrackValue(p, q int, x, y float64) float64 {
	return s.speedRatio(p, q, x, y) - s.coverage(p, q, x, y)/s.fovAlt
}

func (s *Solver) fixedTrackDx(p, q int, x, y float64) float64 {
	return s.speedRatioDx(p, q, x, y) - s.coverageDx(p, q, x, y)/s.fovAlt
}

func (s *Solver) fixedTrackDy(p, q int, x, y float64) float64 {
	return s.speedRatioDy(p, q, x, y) - s.coverageDy(p, q, x, y)/s.fovAlt
}
