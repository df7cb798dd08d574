// Package baseline implements the BASELINE scan-and-fire reference
// algorithm (spec.md §1/§8 scenario F): no handlers, no worker pool, no
// wake/retry protocol — just a loop that repeatedly scans every transition
// in a fixed order and fires each one it finds enabled, until the
// context is canceled (the simulation_timeout firing). It exists solely so
// simulation.RunWithOptionalBaseline can report a comparison events/sec
// figure (spec.md §6 is_comparing_with_baseline_algorithm), and as the
// ground truth for spec.md §8 scenario F (baseline/proposed equivalence on
// a conflict-free net).
package baseline

import (
	"context"
	"time"

	"github.com/fraudik/petrisim/net"
)

// Result mirrors the subset of simulation.Manager's stats that a baseline
// run can produce.
type Result struct {
	EventsPerSecond float64
	EventsCount     int
	Trace           []net.Name
}

// Run scans n's transitions in a fixed (sorted) order, pass after pass,
// firing each transition that is enabled against the marking at the moment
// the scan reaches it, until ctx is done. A full pass that finds no
// enabled transition means the net has stalled; Run then simply waits for
// ctx to end rather than busy-spinning, since no future pass can change the
// outcome without external input this package does not model.
func Run(ctx context.Context, n *net.Net) Result {
	start := time.Now()
	names := n.Transitions()
	var trace []net.Name

	for {
		select {
		case <-ctx.Done():
			return finish(start, trace)
		default:
		}

		fired := false
		for _, name := range names {
			select {
			case <-ctx.Done():
				return finish(start, trace)
			default:
			}

			mv, ok := n.Movement(name)
			if !ok || !mv.Enabled(n.Marking()) {
				continue
			}
			n.SetMarking(n.Marking().Sub(mv.Start).Add(mv.End))
			trace = append(trace, name)
			fired = true
		}

		if !fired {
			<-ctx.Done()
			return finish(start, trace)
		}
	}
}

func finish(start time.Time, trace []net.Name) Result {
	d := time.Since(start).Seconds()
	var eps float64
	if d > 0 {
		eps = float64(len(trace)) / d
	}
	return Result{EventsPerSecond: eps, EventsCount: len(trace), Trace: trace}
}
