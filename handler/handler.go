package handler

import "github.com/fraudik/petrisim/net"

// Handler is the per-transition record (spec's TransitionHandler): identity,
// current State, and its two neighbor sets. Neighbors are stored as
// net.Name references rather than pointers, so that the inherently cyclic
// dependency graph (a ring of transitions forms a cycle of consuming
// neighbors) never becomes an owning-reference cycle — the table that owns
// every Handler lives in simulation.Manager, which resolves names back to
// records on demand.
type Handler struct {
	Name               net.Name
	State              State
	ConsumingHandlers  []net.Name // downstream: consume from places we produce into
	ConcurrentHandlers []net.Name // share at least one input place with us
}

// New creates a Handler in its initial Stale state; Startup forces it to
// Enqueued and spawns its first activation task.
func New(name net.Name) *Handler {
	return &Handler{Name: name, State: Stale}
}
