package core

import "math"

// findRootDirectional runs a bounded Newton iteration on f from x0, moving
// only in the given direction (+1 or -1) with steps clamped to maxStep. If
// the function value changes sign relative to its value at the start of the
// search, the root has been passed and the direction reverses; every
// observed crossing also halves the step clamp, so when the clamped stride
// keeps jumping the root the strides contract onto it rather than
// oscillating at a fixed width. The search reports ok=false as soon as an
// iterate would leave [0,1]: no root exists in the requested direction,
// which callers treat as an expected outcome.
//
// The iteration assumes f' is nonzero near the root and a locally single
// root; it is a local refiner, not a global solver.
func findRootDirectional(f, df func(float64) float64, x0, direction, maxStep float64) (root float64, ok bool) {
	x := x0
	y0 := f(x0)
	dir := direction
	step := maxStep

	for {
		y := f(x)
		if y == 0 {
			return x, true
		}
		if y*y0 <= 0 {
			// Passed the root: reverse, re-baseline, and tighten the clamp.
			// The root is inside the last stride, so half of it still
			// reaches, and the shrinking width forces termination.
			dir = -dir
			y0 = y
			step /= 2
		}

		dx := -y / df(x)
		if math.Abs(dx) > step {
			dx = math.Copysign(step, dx)
		}
		if dx*dir < 0 {
			dx = -dx
		}

		x += dx
		if x < 0 || x > 1 {
			return 0, false
		}
		if math.Abs(dx) < Tolerance {
			return x, true
		}
	}
}

// bisectRoot binary-searches [x0, x1] for a zero of f, expecting the
// endpoint values to straddle zero (either ordering). When they do not, no
// root is guaranteed: the interval is bisected anyway and the endpoint with
// the smaller |f| is returned as a best-effort estimate, flagged by
// bracketed=false. Callers on correctness-sensitive paths must treat that
// estimate as advisory only.
func bisectRoot(f func(float64) float64, x0, x1 float64) (root float64, bracketed bool) {
	y0, y1 := f(x0), f(x1)
	if y0 > y1 {
		// Orient the interval so f(x0) <= 0 <= f(x1) when it brackets.
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	bracketed = y0*y1 <= 0

	for math.Abs(x1-x0) > Tolerance {
		mid := (x0 + x1) / 2
		if f(mid) < 0 {
			x0 = mid
		} else {
			x1 = mid
		}
	}

	if !bracketed {
		if math.Abs(f(x0)) <= math.Abs(f(x1)) {
			return x0, false
		}
		return x1, false
	}
	return (x0 + x1) / 2, true
}
