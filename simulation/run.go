package simulation

import (
	"context"
	"fmt"

	"github.com/fraudik/petrisim/baseline"
	"github.com/fraudik/petrisim/clog"
	"github.com/fraudik/petrisim/config"
	"github.com/fraudik/petrisim/net"
	"github.com/fraudik/petrisim/workerpool"
)

// Result is the outcome of RunWithOptionalBaseline: the proposed
// algorithm's stats, plus, when requested, the baseline comparison figure.
type Result struct {
	EventsPerSecond     float64
	EventsCount         int
	Trace               []net.Name
	EventsDistribution  map[net.Name]int
	BaselineEventsPerSec *float64
}

// RunWithOptionalBaseline runs the proposed event-driven algorithm on n
// under cfg, prints the configured stats view, and, when
// cfg.IsComparingWithBaselineAlgorithm is set, additionally runs the
// baseline scan-and-fire algorithm on a freshly rebuilt copy of n's
// original structure and marking under the same timeout, recording its
// events/sec (spec.md §6, supplementing run_comparison.py). formula selects
// the workflow variant exactly as Manager.Build does.
func RunWithOptionalBaseline(ctx context.Context, n *net.Net, cfg config.Config, formula string) (Result, error) {
	originalDef := n.Def()

	pool := workerpool.NewPool(originalDef)
	if err := pool.Start(cfg.WorkersNum); err != nil {
		return Result{}, fmt.Errorf("starting worker pool: %w", err)
	}
	defer pool.Stop()

	logger := clog.New("simulation ")
	if cfg.IsDebug {
		clog.EnableDebug()
	}

	m := NewManager(pool, logger)
	m.Build(n, formula)

	runCtx, cancel := context.WithTimeout(ctx, cfg.SimulationTimeout)
	defer cancel()

	if err := m.Startup(runCtx); err != nil {
		return Result{}, fmt.Errorf("running simulation: %w", err)
	}

	if cfg.IsBenchmarking {
		m.PrintStatsForBenchmarks()
	} else {
		m.PrintStats()
	}

	result := Result{
		EventsPerSecond:    m.EventsPerSecond(),
		EventsCount:        m.EventsCount(),
		Trace:              m.Trace(),
		EventsDistribution: m.EventsDistribution(),
	}

	if !cfg.IsComparingWithBaselineAlgorithm {
		return result, nil
	}

	baselineNet, err := net.FromDef(originalDef)
	if err != nil {
		return result, fmt.Errorf("rebuilding net for baseline comparison: %w", err)
	}
	baseCtx, baseCancel := context.WithTimeout(ctx, cfg.SimulationTimeout)
	defer baseCancel()

	baseResult := baseline.Run(baseCtx, baselineNet)
	eps := baseResult.EventsPerSecond
	result.BaselineEventsPerSec = &eps
	if !cfg.IsBenchmarking {
		fmt.Printf("baseline events/sec: %.2f\n", eps)
	} else {
		fmt.Printf("%.2f\n", eps)
	}

	return result, nil
}
