// Package netdef loads Petri nets from a small declarative YAML format. It
// exists only as ambient CLI convenience for cmd/petrisim: PNML loading and
// net generation are explicit Non-goals (spec.md §1); this format is
// intentionally not PNML and not a general-purpose net-modeling language.
package netdef

import (
	"fmt"
	"os"

	"github.com/fraudik/petrisim/net"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML-encoded net.Def from path and builds the Net.
func Load(path string) (*net.Net, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading net definition %q: %w", path, err)
	}
	var def net.Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing net definition %q: %w", path, err)
	}
	n, err := net.FromDef(def)
	if err != nil {
		return nil, fmt.Errorf("building net from %q: %w", path, err)
	}
	return n, nil
}
