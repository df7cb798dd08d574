package handler

import (
	"math/rand/v2"

	"github.com/fraudik/petrisim/net"
)

// union returns the deduplicated concatenation of the given name slices, in
// a shuffled order (spec.md §4.5.2: "shuffling before wake is a fairness
// device"; reproducibility is not required, so math/rand/v2's default
// source is sufficient).
func union(sets ...[]net.Name) []net.Name {
	seen := make(map[net.Name]struct{})
	var out []net.Name
	for _, set := range sets {
		for _, n := range set {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func toSet(names []net.Name) map[net.Name]struct{} {
	s := make(map[net.Name]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}
