package main

import (
	"context"
	"strings"
	"testing"

	"github.com/signalsfoundry/scan-coverage-solver/core"
	"github.com/signalsfoundry/scan-coverage-solver/kb"
	"github.com/signalsfoundry/scan-coverage-solver/model"
)

func TestFormatResultFeasible(t *testing.T) {
	r := candidateResult{
		cand: model.ResonanceCandidate{P: 3, Q: 2},
		params: model.SolutionParams{
			P: 3, Q: 2,
			SemiMajorAxis:   4_538_000,
			EccentricityMin: 0,
			EccentricityMax: 0.1234,
		},
		feasible: true,
	}

	row := formatResult(r, 21_549.425)
	for _, want := range []string{"3/2", "4538.0", "0.0000", "0.1234"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
	// period = 1.5 * 21549.425 s, rounded to whole seconds.
	if !strings.Contains(row, "8h58m44s") {
		t.Errorf("row %q missing the orbital period", row)
	}
}

func TestFormatResultInfeasible(t *testing.T) {
	r := candidateResult{cand: model.ResonanceCandidate{P: 1, Q: 7}, feasible: false}

	row := formatResult(r, 21_549.425)
	if !strings.Contains(row, "infeasible") {
		t.Errorf("row %q should be marked infeasible", row)
	}
	if strings.Contains(row, "0.0000") {
		t.Errorf("row %q should not render eccentricity bounds", row)
	}
}

func TestCappedNote(t *testing.T) {
	if got := cappedNote(false); got != "" {
		t.Errorf("cappedNote(false) = %q, want empty", got)
	}
	if got := cappedNote(true); !strings.Contains(got, "capped") {
		t.Errorf("cappedNote(true) = %q", got)
	}
}

func TestEvaluateAllMatchesDirectSolve(t *testing.T) {
	catalog := kb.NewStockCatalog()
	body, ok := catalog.Get("kerbin")
	if !ok {
		t.Fatalf("kerbin missing from the stock catalog")
	}
	scanner, err := model.NewScanner(90, 100_000, 500_000, 800_000)
	if err != nil {
		t.Fatalf("scanner: %v", err)
	}
	solver, err := core.NewSolver(core.SolverConfig{Scanner: scanner, Body: body, FOVMax: 360})
	if err != nil {
		t.Fatalf("solver: %v", err)
	}

	candidates := core.Candidates(body, 3, 5)
	results := evaluateAll(context.Background(), solver, candidates, 4, nil)
	if len(results) != len(candidates) {
		t.Fatalf("got %d results for %d candidates", len(results), len(candidates))
	}

	for i, c := range candidates {
		params, feasible, err := solver.Solve(c.P, c.Q)
		if err != nil {
			t.Fatalf("Solve(%s): %v", c, err)
		}
		if results[i].cand != c {
			t.Errorf("result %d is for %s, want %s", i, results[i].cand, c)
		}
		if results[i].feasible != feasible || results[i].params != params {
			t.Errorf("%s: pooled result %+v/%v differs from direct solve %+v/%v",
				c, results[i].params, results[i].feasible, params, feasible)
		}
	}
}
