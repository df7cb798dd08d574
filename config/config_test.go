package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers_num: 8\nis_benchmarking: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.WorkersNum)
	assert.True(t, cfg.IsBenchmarking)
	assert.Equal(t, Default().SimulationTimeout, cfg.SimulationTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultSaneValues(t *testing.T) {
	cfg := Default()
	assert.Greater(t, cfg.WorkersNum, 0)
	assert.Greater(t, cfg.SimulationTimeout, time.Duration(0))
}
