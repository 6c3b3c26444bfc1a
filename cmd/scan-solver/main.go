package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/scan-coverage-solver/core"
	"github.com/signalsfoundry/scan-coverage-solver/internal/logging"
	"github.com/signalsfoundry/scan-coverage-solver/internal/observability"
	"github.com/signalsfoundry/scan-coverage-solver/kb"
	"github.com/signalsfoundry/scan-coverage-solver/model"
)

func main() {
	bodyName := flag.String("body", "kerbin", "catalog name of the body to scan")
	fov := flag.Float64("fov", 5, "scanner track width in degrees")
	altMin := flag.Float64("alt-min", 70_000, "scanner minimum altitude in metres")
	altBest := flag.Float64("alt-best", 250_000, "scanner best altitude in metres")
	altMax := flag.Float64("alt-max", 500_000, "scanner maximum altitude in metres")
	maxQ := flag.Int("max-q", 8, "largest resonance denominator to consider")
	maxP := flag.Int("max-p", 30, "largest resonance numerator to consider")
	fovMax := flag.Float64("fov-max", core.DefaultFOVMax, "track width cap in degrees")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent candidate evaluations")
	metricsAddr := flag.String("metrics-addr", "", "listen address for /metrics (disabled when empty)")

	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	catalog := kb.NewStockCatalog()
	body, ok := catalog.Get(*bodyName)
	if !ok {
		log.Error(ctx, "unknown body",
			logging.String("body", *bodyName),
			logging.String("available", strings.Join(catalog.Names(), ", ")),
		)
		os.Exit(1)
	}

	scanner, err := model.NewScanner(*fov, *altMin, *altBest, *altMax)
	if err != nil {
		log.Error(ctx, "invalid scanner", logging.String("error", err.Error()))
		os.Exit(1)
	}

	solver, err := core.NewSolver(core.SolverConfig{
		Scanner: scanner,
		Body:    body,
		FOVMax:  *fovMax,
		Logger:  log,
	})
	if err != nil {
		log.Error(ctx, "solver construction failed", logging.String("error", err.Error()))
		os.Exit(1)
	}

	var collector *observability.SolverCollector
	if *metricsAddr != "" {
		collector, err = observability.NewSolverCollector(nil)
		if err != nil {
			log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
			os.Exit(1)
		}
		collector.CatalogBodies.Set(float64(catalog.Len()))

		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Error(ctx, "metrics listener failed", logging.String("error", err.Error()))
			}
		}()
		log.Info(ctx, "serving metrics", logging.String("addr", *metricsAddr))
	}

	candidates := core.Candidates(body, *maxQ, *maxP)
	log.Info(ctx, "evaluating candidates",
		logging.String("body", body.Name),
		logging.Int("candidates", len(candidates)),
		logging.Float64("scaled_fov", solver.FOV()),
		logging.Float64("fov_altitude", solver.FOVAltitude()),
		logging.Any("track_capped", solver.TrackCapped()),
	)

	results := evaluateAll(ctx, solver, candidates, *workers, collector)

	fmt.Printf("Scan coverage for %s (fov %.2f deg at %.0f m%s)\n",
		body.Name, solver.FOV(), solver.FOVAltitude(), cappedNote(solver.TrackCapped()))
	fmt.Printf("%8s  %12s  %14s  %9s  %9s\n", "p/q", "period", "sma (km)", "ecc min", "ecc max")
	for _, r := range results {
		fmt.Println(formatResult(r, body.RotationPeriod))
	}
}

// candidateResult pairs a candidate with its solve outcome.
type candidateResult struct {
	cand     model.ResonanceCandidate
	params   model.SolutionParams
	feasible bool
}

// evaluateAll solves every candidate on a worker pool, one candidate per
// worker at a time. Candidates are independent and the solver context is
// immutable, so no locking is needed beyond the job channel.
func evaluateAll(ctx context.Context, solver *core.Solver, candidates []model.ResonanceCandidate, workers int, collector *observability.SolverCollector) []candidateResult {
	if workers < 1 {
		workers = 1
	}
	tracer := otel.Tracer("scan-solver")

	results := make([]candidateResult, len(candidates))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cand := candidates[i]
				_, span := tracer.Start(ctx, "solve",
					trace.WithAttributes(attribute.Int("p", cand.P), attribute.Int("q", cand.Q)),
				)
				start := time.Now()
				params, feasible, err := solver.Solve(cand.P, cand.Q)
				elapsed := time.Since(start)

				outcome := observability.OutcomeFeasible
				switch {
				case err != nil:
					outcome = observability.OutcomeInvalid
				case !feasible:
					outcome = observability.OutcomeInfeasible
				}
				collector.ObserveSolve(outcome, elapsed)
				span.SetAttributes(attribute.String("outcome", outcome))
				span.End()

				results[i] = candidateResult{cand: cand, params: params, feasible: feasible && err == nil}
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// formatResult renders one table row. rotationPeriod is the body's sidereal
// rotation period in seconds.
func formatResult(r candidateResult, rotationPeriod float64) string {
	period := time.Duration(r.cand.Ratio() * rotationPeriod * float64(time.Second)).Round(time.Second)
	if !r.feasible {
		return fmt.Sprintf("%8s  %12s  %14s  %20s", r.cand, period, "-", "infeasible")
	}
	return fmt.Sprintf("%8s  %12s  %14.1f  %9.4f  %9.4f",
		r.cand, period, r.params.SemiMajorAxis/1000, r.params.EccentricityMin, r.params.EccentricityMax)
}

func cappedNote(capped bool) string {
	if capped {
		return ", track capped"
	}
	return ""
}
