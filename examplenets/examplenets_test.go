package examplenets_test

import (
	"testing"

	"github.com/fraudik/petrisim/examplenets"
	"github.com/stretchr/testify/require"
)

func TestCycleBuildsAndHasOneTokenOnP0(t *testing.T) {
	n, err := examplenets.Cycle(4)
	require.NoError(t, err)
	require.Equal(t, 1, n.Marking()["p0"])
	require.Len(t, n.Transitions(), 4)
}

func TestCycleRejectsTooShort(t *testing.T) {
	_, err := examplenets.Cycle(1)
	require.Error(t, err)
}

func TestConflictPair(t *testing.T) {
	n, err := examplenets.ConflictPair()
	require.NoError(t, err)
	require.Equal(t, 1, n.Marking()["p0"])
	require.Len(t, n.Transitions(), 2)
}

func TestProducerConsumer(t *testing.T) {
	n, err := examplenets.ProducerConsumer()
	require.NoError(t, err)
	tr, ok := n.Transition("t_prod")
	require.True(t, ok)
	require.Equal(t, 1, tr.Pre["source"])
}

func TestWorkflowPair(t *testing.T) {
	n, err := examplenets.WorkflowPrecedes()
	require.NoError(t, err)
	require.Equal(t, 1, n.Marking()["pa"])
	require.Equal(t, 1, n.Marking()["pb"])

	n2, err := examplenets.WorkflowNotPrecedes()
	require.NoError(t, err)
	require.Equal(t, n.Marking(), n2.Marking())
}

func TestBaselineEquivalentChain(t *testing.T) {
	n, err := examplenets.BaselineEquivalent(5)
	require.NoError(t, err)
	require.Len(t, n.Transitions(), 5)
}
