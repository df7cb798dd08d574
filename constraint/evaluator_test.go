package constraint

import (
	"testing"

	"github.com/fraudik/petrisim/constraint/lang"
	"github.com/fraudik/petrisim/net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecedesBlocksUntilSeen(t *testing.T) {
	f, err := lang.ParseString("a ◁ b")
	require.NoError(t, err)

	empty := NewTraceSet(nil)
	res := Evaluate(f, empty, "b")
	assert.False(t, res.Allowed)

	withA := NewTraceSet([]net.Name{"a"})
	res = Evaluate(f, withA, "b")
	assert.True(t, res.Allowed)
}

func TestPrecedesIrrelevantToOtherCandidate(t *testing.T) {
	f, err := lang.ParseString("a ◁ b")
	require.NoError(t, err)
	res := Evaluate(f, NewTraceSet(nil), "c")
	assert.True(t, res.Allowed)
}

func TestPrecedesAccumulatesPossiblyEnabled(t *testing.T) {
	f, err := lang.ParseString("a ◁ b")
	require.NoError(t, err)
	res := Evaluate(f, NewTraceSet(nil), "a")
	assert.True(t, res.Allowed) // a is not the right operand, so irrelevant->true
	assert.Equal(t, []net.Name{"b"}, res.PossiblyEnabled)
	assert.Empty(t, res.PossiblyDisabled)
}

func TestNotPrecedesAllowsUntilSeenThenBlocks(t *testing.T) {
	f, err := lang.ParseString("a ~◁ b")
	require.NoError(t, err)

	res := Evaluate(f, NewTraceSet(nil), "b")
	assert.True(t, res.Allowed)

	res = Evaluate(f, NewTraceSet([]net.Name{"a"}), "b")
	assert.False(t, res.Allowed)
}

func TestNotPrecedesAccumulatesPossiblyDisabled(t *testing.T) {
	f, err := lang.ParseString("a ~◁ b")
	require.NoError(t, err)
	res := Evaluate(f, NewTraceSet(nil), "a")
	assert.Equal(t, []net.Name{"b"}, res.PossiblyDisabled)
	assert.Empty(t, res.PossiblyEnabled)
}

func TestConjunctionBothMustHold(t *testing.T) {
	f, err := lang.ParseString("a◁c ∧ b◁c")
	require.NoError(t, err)
	res := Evaluate(f, NewTraceSet([]net.Name{"a"}), "c")
	assert.False(t, res.Allowed) // b hasn't occurred
	res = Evaluate(f, NewTraceSet([]net.Name{"a", "b"}), "c")
	assert.True(t, res.Allowed)
}

func TestDisjunctionEitherSuffices(t *testing.T) {
	f, err := lang.ParseString("a◁c ∨ b◁c")
	require.NoError(t, err)
	res := Evaluate(f, NewTraceSet([]net.Name{"a"}), "c")
	assert.True(t, res.Allowed)
}
