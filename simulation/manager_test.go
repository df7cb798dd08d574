package simulation_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fraudik/petrisim/config"
	"github.com/fraudik/petrisim/examplenets"
	"github.com/fraudik/petrisim/net"
	"github.com/fraudik/petrisim/simulation"
	"github.com/fraudik/petrisim/workerpool"
	"github.com/stretchr/testify/require"
)

// TestMain lets this test binary double as the worker process, exactly as
// in package workerpool's tests: RunWithOptionalBaseline spawns real
// worker subprocesses via os/exec self-exec.
func TestMain(m *testing.M) {
	for _, a := range os.Args[1:] {
		if a == workerpool.WorkerFlag {
			if err := workerpool.RunWorkerProcess(os.Stdin, os.Stdout); err != nil {
				os.Exit(1)
			}
			os.Exit(0)
		}
	}
	os.Exit(m.Run())
}

// TestCycleScenarioObeysEnablement is spec.md §8 scenario A: every
// committed fire must only happen when the pre-fire marking had a token on
// the transition's sole input place.
func TestCycleScenarioObeysEnablement(t *testing.T) {
	n, err := examplenets.Cycle(4)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.SimulationTimeout = 100 * time.Millisecond
	cfg.WorkersNum = 2

	result, err := simulation.RunWithOptionalBaseline(context.Background(), n, cfg, "")
	require.NoError(t, err)
	require.Greater(t, result.EventsCount, 0)

	marking := net.Marking{"p0": 1}
	for _, name := range result.Trace {
		tr, ok := n.Transition(name)
		require.True(t, ok)
		mv := net.Movement{Start: tr.Pre, End: tr.Post}
		require.True(t, mv.Enabled(marking), "transition %s committed while not enabled against %s", name, marking)
		marking = marking.Sub(mv.Start).Add(mv.End)
	}
	require.Equal(t, result.EventsCount, len(result.Trace))
}

// TestConflictPairScenarioStallsAfterOneFire is spec.md §8 scenario B.
func TestConflictPairScenarioStallsAfterOneFire(t *testing.T) {
	n, err := examplenets.ConflictPair()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.SimulationTimeout = 80 * time.Millisecond
	cfg.WorkersNum = 2

	result, err := simulation.RunWithOptionalBaseline(context.Background(), n, cfg, "")
	require.NoError(t, err)
	require.Equal(t, 1, result.EventsCount)
}

// TestProducerConsumerScenarioAlternates is spec.md §8 scenario C.
func TestProducerConsumerScenarioAlternates(t *testing.T) {
	n, err := examplenets.ProducerConsumer()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.SimulationTimeout = 60 * time.Millisecond
	cfg.WorkersNum = 2

	result, err := simulation.RunWithOptionalBaseline(context.Background(), n, cfg, "")
	require.NoError(t, err)
	require.Greater(t, result.EventsCount, 2)

	for i, name := range result.Trace {
		if i%2 == 0 {
			require.Equal(t, net.Name("t_prod"), name)
		} else {
			require.Equal(t, net.Name("t_cons"), name)
		}
	}
}

// TestWorkflowPrecedesBlocksUntilA is spec.md §8 scenario D.
func TestWorkflowPrecedesBlocksUntilA(t *testing.T) {
	n, err := examplenets.WorkflowPrecedes()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.SimulationTimeout = 60 * time.Millisecond
	cfg.WorkersNum = 2

	result, err := simulation.RunWithOptionalBaseline(context.Background(), n, cfg, "a◁b")
	require.NoError(t, err)

	firstB := -1
	firstA := -1
	for i, name := range result.Trace {
		if name == "a" && firstA == -1 {
			firstA = i
		}
		if name == "b" && firstB == -1 {
			firstB = i
		}
	}
	if firstB != -1 {
		require.NotEqual(t, -1, firstA, "b fired before a ever fired")
		require.Less(t, firstA, firstB)
	}
}

// TestWorkflowNotPrecedesStopsAfterA is spec.md §8 scenario E.
func TestWorkflowNotPrecedesStopsAfterA(t *testing.T) {
	n, err := examplenets.WorkflowNotPrecedes()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.SimulationTimeout = 60 * time.Millisecond
	cfg.WorkersNum = 2

	result, err := simulation.RunWithOptionalBaseline(context.Background(), n, cfg, "a~◁b")
	require.NoError(t, err)

	firstA := -1
	for i, name := range result.Trace {
		if name == "a" {
			firstA = i
			break
		}
	}
	if firstA != -1 {
		for _, name := range result.Trace[firstA+1:] {
			require.NotEqual(t, net.Name("b"), name, "b fired after a despite a~◁b")
		}
	}
}

// TestBaselineComparisonRecordsBothFigures exercises
// is_comparing_with_baseline_algorithm end to end.
func TestBaselineComparisonRecordsBothFigures(t *testing.T) {
	n, err := examplenets.Cycle(4)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.SimulationTimeout = 60 * time.Millisecond
	cfg.WorkersNum = 2
	cfg.IsComparingWithBaselineAlgorithm = true
	cfg.IsBenchmarking = true

	result, err := simulation.RunWithOptionalBaseline(context.Background(), n, cfg, "")
	require.NoError(t, err)
	require.NotNil(t, result.BaselineEventsPerSec)
}
