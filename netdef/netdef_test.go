package netdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
name: conflict-pair
places:
  - name: p0
    initial: 1
  - name: pa
  - name: pb
transitions:
  - name: ta
    pre: {p0: 1}
    post: {pa: 1}
  - name: tb
    pre: {p0: 1}
    post: {pb: 1}
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	n, err := Load(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ta", "tb"}, namesToStrings(n.Transitions()))
}

func namesToStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
