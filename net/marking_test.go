package net

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkingLessEq(t *testing.T) {
	a := NewMarking(map[Name]int{"p0": 1})
	b := NewMarking(map[Name]int{"p0": 2, "p1": 1})
	assert.True(t, a.LessEq(b))
	assert.False(t, b.LessEq(a))
}

func TestMarkingSubAdd(t *testing.T) {
	m := NewMarking(map[Name]int{"p0": 2, "p1": 1})
	sub := NewMarking(map[Name]int{"p0": 1})
	got := m.Sub(sub).Add(NewMarking(map[Name]int{"p2": 1}))
	want := NewMarking(map[Name]int{"p0": 1, "p1": 1, "p2": 1})
	assert.True(t, got.Equal(want))
}

func TestMarkingSubPanicsOnUnderflow(t *testing.T) {
	m := NewMarking(map[Name]int{"p0": 1})
	require.Panics(t, func() {
		m.Sub(NewMarking(map[Name]int{"p0": 2}))
	})
}

func TestMarkingStringIsSorted(t *testing.T) {
	m := NewMarking(map[Name]int{"b": 1, "a": 2})
	assert.Equal(t, "{a:2, b:1}", m.String())
}
