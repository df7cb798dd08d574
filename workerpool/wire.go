package workerpool

import "github.com/fraudik/petrisim/net"

// Request is one worker task item (spec.md §3/§6): the transition to
// evaluate against a marking snapshot, plus, for the workflow variant, the
// current trace and constraint formula text. FormulaText is empty for the
// base Petri-net variant.
type Request struct {
	Transition  net.Name
	Marking     net.Marking
	Trace       []net.Name
	FormulaText string
}

// Response is the worker's answer: the computed movement (if any) plus,
// for the workflow variant, the possibly-enabled/possibly-disabled
// transitions accumulated by the constraint evaluator. Err is set, and
// HasMovement is false, when the worker could not compute a movement —
// this is equivalent to "no movement available" per spec.md §4.2/§7 and is
// never surfaced as a hard error to the handler.
type Response struct {
	Movement         net.Movement
	HasMovement      bool
	PossiblyEnabled  []net.Name
	PossiblyDisabled []net.Name
	Err              string
}
