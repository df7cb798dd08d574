package net

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefRoundTrip(t *testing.T) {
	n := buildCycle(t, 4, 1)
	d := n.Def()
	n2, err := FromDef(d)
	require.NoError(t, err)
	assert.True(t, n.Marking().Equal(n2.Marking()))
	assert.ElementsMatch(t, n.Transitions(), n2.Transitions())
	mv1, ok1 := n.Movement("t0")
	mv2, ok2 := n2.Movement("t0")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, mv1.Start.Equal(mv2.Start))
	assert.True(t, mv1.End.Equal(mv2.End))
}

func TestFromDefRejectsUnknownPlace(t *testing.T) {
	d := Def{
		Name:        "bad",
		Transitions: []TransitionDef{{Name: "t0", Pre: map[Name]int{"missing": 1}}},
	}
	_, err := FromDef(d)
	assert.Error(t, err)
}
