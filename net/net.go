package net

import (
	"fmt"
	"sort"
)

// Place is a node hosting a multiset of tokens, identified by Name.
type Place struct {
	Name Name
}

// Transition is a node parameterized by its input-arc multiset (pre) and
// output-arc multiset (post), identified by Name.
type Transition struct {
	Name Name
	Pre  Marking // input arc weights, keyed by place name
	Post Marking // output arc weights, keyed by place name
}

// Net is the in-memory model of places, transitions, arcs and the current
// marking (spec component C1). It is the single point of truth a worker
// process consults to compute a transition's Movement.
type Net struct {
	Name_       string
	places      map[Name]Place
	transitions map[Name]Transition
	marking     Marking
}

// Places returns the net's place names in a stable (sorted) order.
func (n *Net) Places() []Name {
	out := make([]Name, 0, len(n.places))
	for p := range n.places {
		out = append(out, p)
	}
	sortNames(out)
	return out
}

// Transitions returns the net's transition names in a stable (sorted) order.
func (n *Net) Transitions() []Name {
	out := make([]Name, 0, len(n.transitions))
	for t := range n.transitions {
		out = append(out, t)
	}
	sortNames(out)
	return out
}

// Transition looks up a transition definition by name.
func (n *Net) Transition(name Name) (Transition, bool) {
	t, ok := n.transitions[name]
	return t, ok
}

// Post returns the downstream names reachable from x in one arc hop: for a
// place it is the transitions consuming from it, for a transition it is the
// places it produces into.
func (n *Net) Post(x Name) []Name {
	if t, ok := n.transitions[x]; ok {
		out := make([]Name, 0, len(t.Post))
		for p := range t.Post {
			out = append(out, p)
		}
		sortNames(out)
		return out
	}
	var out []Name
	for tName, t := range n.transitions {
		if _, ok := t.Pre[x]; ok {
			out = append(out, tName)
		}
	}
	sortNames(out)
	return out
}

// Pre is the symmetric counterpart of Post: for a place, the transitions
// that consume from it; for a transition, the places it consumes from.
func (n *Net) Pre(x Name) []Name {
	if t, ok := n.transitions[x]; ok {
		out := make([]Name, 0, len(t.Pre))
		for p := range t.Pre {
			out = append(out, p)
		}
		sortNames(out)
		return out
	}
	var out []Name
	for tName, t := range n.transitions {
		if _, ok := t.Post[x]; ok {
			out = append(out, tName)
		}
	}
	sortNames(out)
	return out
}

// Marking returns the net's current marking.
func (n *Net) Marking() Marking {
	return n.marking
}

// SetMarking replaces the net's current marking, used by a worker process
// before evaluating a transition's movement against a caller-supplied
// marking snapshot.
func (n *Net) SetMarking(m Marking) {
	n.marking = m
}

// Movement computes the single firing mode of transition t, or false if the
// transition is unknown. It does not check enablement against the current
// marking — that is the caller's (handler's) responsibility per spec.md
// §4.5.2 step 1, re-checked against the *current* marking after a possibly
// stale computation.
func (n *Net) Movement(t Name) (Movement, bool) {
	tr, ok := n.transitions[t]
	if !ok {
		return Movement{}, false
	}
	return Movement{Start: tr.Pre, End: tr.Post}, true
}

func sortNames(s []Name) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// Builder constructs a Net incrementally and validates it on Build.
type Builder struct {
	name        string
	places      map[Name]Place
	transitions map[Name]Transition
	initial     Marking
}

// NewBuilder creates a Builder for a net with the given display name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:        name,
		places:      make(map[Name]Place),
		transitions: make(map[Name]Transition),
		initial:     make(Marking),
	}
}

// AddPlace registers a place, optionally with an initial token count.
func (b *Builder) AddPlace(name Name, initialTokens int) *Builder {
	b.places[name] = Place{Name: name}
	if initialTokens != 0 {
		b.initial[name] = initialTokens
	}
	return b
}

// AddTransition registers a transition with no arcs yet.
func (b *Builder) AddTransition(name Name) *Builder {
	b.transitions[name] = Transition{Name: name, Pre: Marking{}, Post: Marking{}}
	return b
}

// AddInput adds an input arc place -> transition of the given weight.
func (b *Builder) AddInput(place, transition Name, weight int) *Builder {
	t := b.transitions[transition]
	if t.Pre == nil {
		t.Pre = Marking{}
	}
	t.Pre[place] += weight
	b.transitions[transition] = t
	return b
}

// AddOutput adds an output arc transition -> place of the given weight.
func (b *Builder) AddOutput(transition, place Name, weight int) *Builder {
	t := b.transitions[transition]
	if t.Post == nil {
		t.Post = Marking{}
	}
	t.Post[place] += weight
	b.transitions[transition] = t
	return b
}

// Build validates the net (every arc must reference a registered place and
// transition) and returns the immutable Net. No partial simulation is ever
// started on a build error, per spec.md §7.
func (b *Builder) Build() (*Net, error) {
	for tName, t := range b.transitions {
		for p := range t.Pre {
			if _, ok := b.places[p]; !ok {
				return nil, fmt.Errorf("transition %q references unknown input place %q", tName, p)
			}
		}
		for p := range t.Post {
			if _, ok := b.places[p]; !ok {
				return nil, fmt.Errorf("transition %q references unknown output place %q", tName, p)
			}
		}
	}
	return &Net{
		Name_:       b.name,
		places:      b.places,
		transitions: b.transitions,
		marking:     b.initial.Clone(),
	}, nil
}
