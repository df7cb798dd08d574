// Package net provides the in-memory Petri net model: places, transitions,
// arcs, and marking arithmetic (spec component C1).
package net

import (
	"fmt"
	"sort"
	"strings"
)

// Name identifies a place or a transition. Names are opaque but totally
// ordered so that neighbor sets have a deterministic iteration order before
// they are shuffled.
type Name string

// Marking is a multiset of tokens per place. Only black (uncolored) tokens
// are modeled: a marking simply counts how many tokens sit on each place,
// matching the `dot`-token SNAKES nets exercised by the original simulator.
type Marking map[Name]int

// NewMarking builds a Marking from place->count pairs, omitting zero counts.
func NewMarking(counts map[Name]int) Marking {
	m := make(Marking, len(counts))
	for p, c := range counts {
		if c != 0 {
			m[p] = c
		}
	}
	return m
}

// Clone returns an independent copy.
func (m Marking) Clone() Marking {
	c := make(Marking, len(m))
	for p, n := range m {
		c[p] = n
	}
	return c
}

// LessEq reports whether m is pointwise dominated by other (m ≤ other).
func (m Marking) LessEq(other Marking) bool {
	for p, n := range m {
		if other[p] < n {
			return false
		}
	}
	return true
}

// Sub returns m - other. Panics if other is not dominated by m (m must
// satisfy other ≤ m); per spec.md §3/§7 this is a build/runtime invariant
// and should never trigger if the enablement recheck ordering in package
// handler is correct.
func (m Marking) Sub(other Marking) Marking {
	r := m.Clone()
	for p, n := range other {
		if r[p] < n {
			panic(fmt.Sprintf("marking underflow: place %q has %d tokens, cannot subtract %d", p, r[p], n))
		}
		r[p] -= n
		if r[p] == 0 {
			delete(r, p)
		}
	}
	return r
}

// Add returns m + other.
func (m Marking) Add(other Marking) Marking {
	r := m.Clone()
	for p, n := range other {
		r[p] += n
	}
	return r
}

// Equal reports whether m and other hold identical token counts.
func (m Marking) Equal(other Marking) bool {
	if len(m) != len(other) {
		return false
	}
	for p, n := range m {
		if other[p] != n {
			return false
		}
	}
	return true
}

// String renders the marking as a stable, sorted textual form for logging.
// It is not parsed back anywhere; the worker pool sends markings gob-encoded.
func (m Marking) String() string {
	names := make([]string, 0, len(m))
	for p := range m {
		names = append(names, string(p))
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, p := range names {
		parts[i] = fmt.Sprintf("%s:%d", p, m[Name(p)])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
