package net

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCycle(t *testing.T, length, tokens int) *Net {
	t.Helper()
	b := NewBuilder("cycle")
	for i := 0; i < length; i++ {
		initial := 0
		if i < tokens {
			initial = 1
		}
		b.AddPlace(Name(placeName(i)), initial)
		b.AddTransition(Name(transName(i)))
	}
	for i := 0; i < length; i++ {
		b.AddInput(Name(placeName(i)), Name(transName(i)), 1)
		b.AddOutput(Name(transName(i)), Name(placeName((i+1)%length)), 1)
	}
	n, err := b.Build()
	require.NoError(t, err)
	return n
}

func placeName(i int) string { return "p" + string(rune('0'+i)) }
func transName(i int) string { return "t" + string(rune('0'+i)) }

func TestBuilderBuildsValidNet(t *testing.T) {
	n := buildCycle(t, 4, 1)
	assert.ElementsMatch(t, []Name{"p0", "p1", "p2", "p3"}, n.Places())
	assert.ElementsMatch(t, []Name{"t0", "t1", "t2", "t3"}, n.Transitions())
}

func TestBuilderRejectsUnknownPlace(t *testing.T) {
	b := NewBuilder("broken")
	b.AddTransition("t0")
	b.AddInput("missing", "t0", 1)
	_, err := b.Build()
	require.Error(t, err)
}

func TestPostPre(t *testing.T) {
	n := buildCycle(t, 4, 1)
	// t0: p0 -> p1
	assert.Equal(t, []Name{"p1"}, n.Post("t0"))
	assert.Equal(t, []Name{"p0"}, n.Pre("t0"))
	// downstream transitions consuming from p1: t1
	assert.Equal(t, []Name{"t1"}, n.Post("p1"))
	assert.Equal(t, []Name{"t0"}, n.Pre("p1"))
}

func TestMovementEnablement(t *testing.T) {
	n := buildCycle(t, 4, 1)
	mv, ok := n.Movement("t0")
	require.True(t, ok)
	assert.True(t, mv.Enabled(n.Marking()))
	assert.False(t, mv.Enabled(NewMarking(map[Name]int{"p1": 1})))
}
