package core

import (
	"context"
	"math"

	"github.com/signalsfoundry/scan-coverage-solver/internal/logging"
)

// Side selects which end of the latitude domain a boundary trace works
// from. Each variant carries its own starting point and slope sign rather
// than deriving them from an integer code.
type Side int

const (
	// SideBottom starts at the equator corner (x=1) with a circular orbit
	// (y=0) and yields the eccentricity minimum.
	SideBottom Side = iota
	// SideTop starts at the pole corner (x=0) with a maximally eccentric
	// orbit (y=1) and yields the eccentricity maximum.
	SideTop
)

func (s Side) String() string {
	if s == SideBottom {
		return "bottom"
	}
	return "top"
}

// startX is the x corner the trace begins at.
func (s Side) startX() float64 {
	if s == SideBottom {
		return 1
	}
	return 0
}

// startY is the y corner the trace begins at, and the value reported when
// coverage holds across the whole latitude domain there.
func (s Side) startY() float64 {
	if s == SideBottom {
		return 0
	}
	return 1
}

// slopeSign scales the x-derivative of the inequality so that a
// non-positive scaled slope at the trace's current point means the binding
// extremum sits at the domain edge itself.
func (s Side) slopeSign() float64 {
	if s == SideBottom {
		return 1
	}
	return -1
}

// traceBoundary finds the extremal eccentricity at which coverage becomes
// marginal somewhere in the latitude domain, approaching from the given
// side. Geometrically it walks the zero level set of the inequality to the
// point where the set is tangent to a line of constant y; that tangency
// fixes the binding eccentricity bound. ok=false means no bound exists for
// this side: the candidate is infeasible.
func (s *Solver) traceBoundary(p, q int, side Side) (ecc float64, ok bool) {
	x := side.startX()
	y := side.startY()

	if s.value(p, q, x, y) > 0 {
		// Coverage already holds at the corner. Search inward along x for
		// where it stops holding; if it never does, the corner eccentricity
		// bounds the whole domain.
		root, found := findRootDirectional(
			func(t float64) float64 { return s.value(p, q, t, y) },
			func(t float64) float64 { return s.valueDx(p, q, t, y) },
			x, -side.slopeSign(), maxSolveStep,
		)
		if !found {
			return y, true
		}
		x = root
	} else {
		// The corner is uncovered: pick up the boundary curve at this x.
		// y stays below 1 so the degenerate corner (1,1) is never probed.
		root, bracketed := s.bisect(
			func(t float64) float64 { return s.value(p, q, x, t) },
			0, 1-Tolerance,
		)
		if !bracketed {
			// The whole eccentricity column is uncovered; the advisory
			// estimate is not on the boundary curve, so no bound exists.
			s.log.Debug(context.Background(), "no coverage boundary in eccentricity column",
				logging.Int("p", p), logging.Int("q", q),
				logging.String("side", side.String()), logging.Float64("x", x),
			)
			return 0, false
		}
		y = root
	}

	if side.slopeSign()*s.valueDx(p, q, x, y) <= 0 {
		// Coverage only degrades past the domain edge; the current point is
		// already the binding extremum.
		return y, true
	}

	// Shrink an x-bracket around the tangency point. Each pass re-solves the
	// inequality's x-root at the current y to tighten the stale bracket
	// side, then re-solves y on the boundary curve at the bracket midpoint,
	// warm-started from the previous y.
	x0, x1 := 0.0, 1.0
	for math.Abs(x1-x0) > Tolerance {
		fx := func(t float64) float64 { return s.value(p, q, t, y) }
		if s.valueDx(p, q, x, y) < 0 {
			// Extremum lies at larger x.
			x0 = x
			x1, _ = s.bisect(fx, x, x1)
		} else {
			x1 = x
			x0, _ = s.bisect(fx, x0, x)
		}
		x = (x0 + x1) / 2

		v := s.value(p, q, x, y)
		dir := -side.slopeSign()
		if v < 0 {
			dir = -dir
		}
		yNext, found := findRootDirectional(
			func(t float64) float64 { return s.value(p, q, x, t) },
			func(t float64) float64 { return s.valueDy(p, q, x, t) },
			y, dir, maxSolveStep,
		)
		if !found {
			// The boundary curve left the domain: no constraint binds here.
			return 0, false
		}
		y = yNext
	}
	return y, true
}
