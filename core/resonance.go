package core

import (
	"math"
	"sort"

	"github.com/signalsfoundry/scan-coverage-solver/model"
)

// Candidates enumerates the reduced resonance fractions p/q with q <= qMax
// and p <= pMax whose semi-major axis keeps the orbit between the body's
// safe altitude and its sphere of influence. Results are ordered by period
// ratio p/q, shortest period first, with smaller q first among equal
// ratios (equal reduced ratios cannot occur; the tie-break is for clarity).
func Candidates(body model.CelestialBody, qMax, pMax int) []model.ResonanceCandidate {
	ratioMin := math.Pow((body.Radius+body.SafeAltitude)/body.GeoRadius, 1.5)
	ratioMax := math.Inf(1)
	if !math.IsInf(body.SOIRadius, 1) {
		ratioMax = math.Pow(body.SOIRadius/body.GeoRadius, 1.5)
	}

	var out []model.ResonanceCandidate
	for q := 1; q <= qMax; q++ {
		for p := 1; p <= pMax; p++ {
			if model.GCD(p, q) != 1 {
				continue
			}
			ratio := float64(p) / float64(q)
			if ratio < ratioMin || ratio > ratioMax {
				continue
			}
			out = append(out, model.ResonanceCandidate{P: p, Q: q})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Ratio(), out[j].Ratio()
		if ri != rj {
			return ri < rj
		}
		return out[i].Q < out[j].Q
	})
	return out
}
