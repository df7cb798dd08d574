package handler

import (
	"context"

	"github.com/fraudik/petrisim/net"
	"github.com/fraudik/petrisim/workerpool"
)

// Scheduler is the narrow view of simulation.Manager that an activation
// task needs. It is declared here, the consumer side, rather than in
// package simulation, so that handler never imports simulation — Manager
// implements this interface instead, which is what lets simulation import
// handler (to spawn activation tasks) without a import cycle.
type Scheduler interface {
	// Submit asks the worker pool to evaluate name against a snapshot of
	// the current marking (and, in workflow mode, trace and formula),
	// suspending the calling goroutine until a response arrives or ctx is
	// done. ok is false only on context cancellation.
	Submit(ctx context.Context, name net.Name) (resp workerpool.Response, ok bool)

	// Do runs fn to completion on the single commit goroutine before
	// returning, giving fn atomic, lock-free access to shared state via
	// Tx. Everything between "just committed" and "neighbors marked or
	// spawned" in §4.5.2/§4.5.3 happens inside one Do call.
	Do(fn func(tx Tx))

	// IsWorkflow reports whether the constraint-extended wake/retry rules
	// (§4.5.3) apply instead of the base rules (§4.5.2).
	IsWorkflow() bool

	// Debugf emits verbose state-transition tracing, gated by is_debug.
	Debugf(format string, a ...any)
}

// Tx is the set of operations an activation task may perform while inside a
// Scheduler.Do callback. Every method reads or writes shared state directly
// (no further synchronization) because Do guarantees the callback runs
// alone on the commit goroutine.
type Tx interface {
	// State returns name's current handler state.
	State(name net.Name) State
	// SetState sets name's handler state.
	SetState(name net.Name, s State)
	// Consuming returns the transitions that consume from any place name
	// produces into (downstream).
	Consuming(name net.Name) []net.Name
	// Concurrent returns the transitions sharing at least one input place
	// with name.
	Concurrent(name net.Name) []net.Name
	// Enabled reports whether mv is enabled against the CURRENT marking —
	// the re-check mandated by §4.5.2 step 1, since the marking may have
	// changed while the activation task was suspended awaiting a response.
	Enabled(mv net.Movement) bool
	// Commit performs the atomic perform_movement step: subtract
	// mv.Start, add mv.End, append name to the trace, update counters.
	// Callers must only invoke this after Enabled(mv) returned true in the
	// same Do callback.
	Commit(name net.Name, mv net.Movement)
	// Spawn schedules a fresh activation task for name. It only enqueues
	// the goroutine launch; it does not block, so calling it from inside
	// Do never stalls the commit goroutine.
	Spawn(name net.Name)
}
