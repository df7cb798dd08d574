package net

import "fmt"

// Movement is the pre/post multiset pair of a single firing mode of a
// transition (spec.md §3). At most one Movement exists per transition per
// marking for the ordinary Petri nets handled here.
type Movement struct {
	Start Marking // tokens consumed
	End   Marking // tokens produced
}

// String matches the original AnnotatedMovement.__str__ format, kept for
// log-output continuity with the source algorithm's debug traces.
func (mv Movement) String() string {
	return fmt.Sprintf("from %s to %s", mv.Start, mv.End)
}

// Enabled reports whether mv can fire against marking m (mv.Start ≤ m).
func (mv Movement) Enabled(m Marking) bool {
	return mv.Start.LessEq(m)
}
