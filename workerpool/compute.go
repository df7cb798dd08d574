package workerpool

import (
	"github.com/fraudik/petrisim/constraint"
	"github.com/fraudik/petrisim/constraint/lang"
	"github.com/fraudik/petrisim/net"
)

// compute performs the CPU-bound "enablement + movement" calculation for
// one request against the given net (spec component C2's payload,
// spec.md §4.2). It is the function a worker process runs for every
// request it reads off its pipe; it never mutates shared state beyond the
// worker-local net n, which is safe since each worker owns its own copy.
//
// For the base variant (req.FormulaText == "") only the movement is
// computed. For the workflow variant, the movement is computed first (a
// "lighter check", matching the original's comment that SNAKES-mode
// computation should run before the heavier constraint evaluation) and the
// formula is only parsed and evaluated if a movement exists at all.
func compute(n *net.Net, req Request) Response {
	n.SetMarking(req.Marking)

	mv, ok := n.Movement(req.Transition)
	if !ok || !mv.Enabled(req.Marking) {
		return Response{}
	}

	if req.FormulaText == "" {
		return Response{Movement: mv, HasMovement: true}
	}

	formula, err := lang.ParseString(req.FormulaText)
	if err != nil {
		return Response{Err: err.Error()}
	}

	result := constraint.Evaluate(formula, constraint.NewTraceSet(req.Trace), req.Transition)
	if !result.Allowed {
		// Per spec.md §4.3/§5.3: when disallowed, no movement and no
		// wake hints are returned — the check for possible movement is
		// done before filling possibly_enabled/possibly_disabled.
		return Response{}
	}

	return Response{
		Movement:         mv,
		HasMovement:      true,
		PossiblyEnabled:  result.PossiblyEnabled,
		PossiblyDisabled: result.PossiblyDisabled,
	}
}
