// Package config defines the runtime options recognized by the simulator
// (spec.md §6). It is deliberately small: CLI/config wiring beyond loading
// these fields is a Non-goal; cmd/petrisim is the only caller that builds
// a Config from flags or a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the options spec.md §6 recognizes.
type Config struct {
	// SimulationTimeout is the wall-clock duration after which all
	// cooperative tasks are canceled.
	SimulationTimeout time.Duration `yaml:"simulation_timeout"`
	// WorkersNum is the size of the worker pool.
	WorkersNum int `yaml:"workers_num"`
	// IsComparingWithBaselineAlgorithm, when true, runs the baseline
	// algorithm after the proposed run completes and records its
	// events/sec too.
	IsComparingWithBaselineAlgorithm bool `yaml:"is_comparing_with_baseline_algorithm"`
	// IsDebug enables verbose tracing of handler state transitions,
	// neighbor sets, and pre/post markings.
	IsDebug bool `yaml:"is_debug"`
	// IsBenchmarking, when true, emits only the events/sec line instead of
	// the full stats block.
	IsBenchmarking bool `yaml:"is_benchmarking"`
}

// Default returns the baseline configuration used when no flags or file
// override it.
func Default() Config {
	return Config{
		SimulationTimeout:                10 * time.Second,
		WorkersNum:                       4,
		IsComparingWithBaselineAlgorithm: false,
		IsDebug:                          false,
		IsBenchmarking:                   false,
	}
}

// Load reads a YAML config file, overlaying its fields onto Default().
// Unset fields in the file keep the default's zero-free values since YAML
// unmarshal only overwrites keys present in the document.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return cfg, nil
}
