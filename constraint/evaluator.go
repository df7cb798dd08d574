// Package constraint implements the workflow-net declarative constraint
// evaluator (spec component C3). It is used only by the workflow-net
// variant of the simulator: given a boolean formula over the firing trace
// and a candidate transition proposing to fire, it decides whether the
// candidate is allowed to fire and reports which other transitions became
// possibly-enabled/possibly-disabled as a side effect of that decision.
package constraint

import (
	"github.com/fraudik/petrisim/constraint/lang"
	"github.com/fraudik/petrisim/net"
)

// TraceSet is the trace viewed as a membership-testable set, as required by
// the evaluator (spec.md §3: "observable to the constraint evaluator as a
// set membership test").
type TraceSet map[net.Name]struct{}

// NewTraceSet builds a TraceSet from an ordered trace.
func NewTraceSet(trace []net.Name) TraceSet {
	s := make(TraceSet, len(trace))
	for _, t := range trace {
		s[t] = struct{}{}
	}
	return s
}

func (s TraceSet) has(name string) bool {
	_, ok := s[net.Name(name)]
	return ok
}

// Result carries the verdict and wake hints produced by Evaluate.
type Result struct {
	Allowed          bool
	PossiblyEnabled  []net.Name
	PossiblyDisabled []net.Name
}

// Evaluate implements spec.md §4.3: evaluate formula with respect to the
// candidate transition T and the current trace. For every constraint
// encountered with T as the right operand, the verdict is checked against
// the trace (A ∈ trace for ◁, A ∉ trace for ~◁); constraints with T as the
// left operand (A) instead accumulate the right operand into
// PossiblyEnabled (for ◁) or PossiblyDisabled (for ~◁), regardless of
// whether T is also the right operand of that same constraint.
func Evaluate(formula lang.Formula, trace TraceSet, candidate net.Name) Result {
	e := &evaluation{trace: trace, candidate: string(candidate)}
	allowed := e.eval(formula)
	return Result{
		Allowed:          allowed,
		PossiblyEnabled:  e.possiblyEnabled,
		PossiblyDisabled: e.possiblyDisabled,
	}
}

type evaluation struct {
	trace            TraceSet
	candidate        string
	possiblyEnabled  []net.Name
	possiblyDisabled []net.Name
}

func (e *evaluation) eval(f lang.Formula) bool {
	switch n := f.(type) {
	case nil:
		// An empty/absent formula imposes no constraint.
		return true
	case lang.Precedes:
		if n.A == e.candidate {
			e.possiblyEnabled = append(e.possiblyEnabled, net.Name(n.B))
		}
		if n.B != e.candidate {
			return true
		}
		return e.trace.has(n.A)
	case lang.NotPrecedes:
		if n.A == e.candidate {
			e.possiblyDisabled = append(e.possiblyDisabled, net.Name(n.B))
		}
		if n.B != e.candidate {
			return true
		}
		return !e.trace.has(n.A)
	case lang.And:
		left := e.eval(n.Left)
		right := e.eval(n.Right)
		return left && right
	case lang.Or:
		left := e.eval(n.Left)
		right := e.eval(n.Right)
		return left || right
	default:
		return true
	}
}
