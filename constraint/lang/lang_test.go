package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimplePrecedes(t *testing.T) {
	f, err := ParseString("a ◁ b")
	require.NoError(t, err)
	assert.Equal(t, Precedes{A: "a", B: "b"}, f)
}

func TestParseNotPrecedes(t *testing.T) {
	f, err := ParseString("a~◁b")
	require.NoError(t, err)
	assert.Equal(t, NotPrecedes{A: "a", B: "b"}, f)
}

func TestParseConjunctionDisjunction(t *testing.T) {
	f, err := ParseString("a◁b ∧ c~◁d ∨ e◁f")
	require.NoError(t, err)
	// left-assoc: (a◁b ∧ c~◁d) ∨ e◁f
	or, ok := f.(Or)
	require.True(t, ok)
	and, ok := or.Left.(And)
	require.True(t, ok)
	assert.Equal(t, Precedes{A: "a", B: "b"}, and.Left)
	assert.Equal(t, NotPrecedes{A: "c", B: "d"}, and.Right)
	assert.Equal(t, Precedes{A: "e", B: "f"}, or.Right)
}

func TestParseParentheses(t *testing.T) {
	f, err := ParseString("(a◁b ∨ c◁d) ∧ e◁f")
	require.NoError(t, err)
	and, ok := f.(And)
	require.True(t, ok)
	_, ok = and.Left.(Or)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("a ◁")
	assert.Error(t, err)
	_, err = ParseString("(a◁b")
	assert.Error(t, err)
	_, err = ParseString("a ◁ b )")
	assert.Error(t, err)
}
