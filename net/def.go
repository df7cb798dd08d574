package net

// Def is an exported, serialization-friendly description of a Net: it is
// the wire/file form used both to hand a net snapshot to a worker process
// (gob-encoded, once per worker at startup — see package workerpool) and to
// load a net from a declarative file (YAML, see package netdef). Def is
// never itself a PNML reader/writer: PNML parsing remains an external
// collaborator per spec.md's Non-goals.
type Def struct {
	Name        string          `yaml:"name"`
	Places      []PlaceDef      `yaml:"places"`
	Transitions []TransitionDef `yaml:"transitions"`
}

// PlaceDef declares one place and its initial token count.
type PlaceDef struct {
	Name    Name `yaml:"name"`
	Initial int  `yaml:"initial"`
}

// TransitionDef declares one transition and its input/output arc weights.
type TransitionDef struct {
	Name Name         `yaml:"name"`
	Pre  map[Name]int `yaml:"pre"`
	Post map[Name]int `yaml:"post"`
}

// Def exports the net's current structure and marking as a Def.
func (n *Net) Def() Def {
	d := Def{Name: n.Name_}
	for _, p := range n.Places() {
		d.Places = append(d.Places, PlaceDef{Name: p, Initial: n.marking[p]})
	}
	for _, tName := range n.Transitions() {
		t := n.transitions[tName]
		d.Transitions = append(d.Transitions, TransitionDef{
			Name: tName,
			Pre:  map[Name]int(t.Pre),
			Post: map[Name]int(t.Post),
		})
	}
	return d
}

// FromDef builds a Net from a Def, validating arcs exactly as Builder.Build
// does (a Def referencing an unknown place is a build-time error, never a
// partial simulation, per spec.md §7).
func FromDef(d Def) (*Net, error) {
	b := NewBuilder(d.Name)
	for _, p := range d.Places {
		b.AddPlace(p.Name, p.Initial)
	}
	for _, t := range d.Transitions {
		b.AddTransition(t.Name)
	}
	for _, t := range d.Transitions {
		for p, w := range t.Pre {
			b.AddInput(p, t.Name, w)
		}
		for p, w := range t.Post {
			b.AddOutput(t.Name, p, w)
		}
	}
	return b.Build()
}
