package simulation

import (
	"context"

	"github.com/fraudik/petrisim/handler"
	"github.com/fraudik/petrisim/net"
	"github.com/fraudik/petrisim/workerpool"
)

// Do runs fn to completion on the single commit goroutine before returning,
// implementing handler.Scheduler.Do. If the commit goroutine has already
// exited (simulation timed out or finished), fn does not run — by that
// point every handler goroutine is also shutting down, so the no-op is
// harmless.
func (m *Manager) Do(fn func(tx handler.Tx)) {
	done := make(chan struct{})
	cmd := func() {
		fn(&tx{m: m})
		close(done)
	}
	select {
	case m.cmds <- cmd:
	case <-m.stopped:
		return
	}
	select {
	case <-done:
	case <-m.stopped:
	}
}

// Submit implements handler.Scheduler.Submit: it takes a consistent
// snapshot of the current marking (and, in workflow mode, the trace and
// this transition's formula) via the commit goroutine, then hands the
// request to the worker pool, suspending only the calling goroutine.
func (m *Manager) Submit(ctx context.Context, name net.Name) (workerpool.Response, bool) {
	type snapshot struct {
		marking net.Marking
		trace   []net.Name
		formula string
	}
	snapshotCh := make(chan snapshot, 1)
	cmd := func() {
		snapshotCh <- snapshot{
			marking: m.marking.Clone(),
			trace:   append([]net.Name(nil), m.trace...),
			formula: m.formula,
		}
	}

	select {
	case m.cmds <- cmd:
	case <-m.stopped:
		return workerpool.Response{}, false
	case <-ctx.Done():
		return workerpool.Response{}, false
	}

	var snap snapshot
	select {
	case snap = <-snapshotCh:
	case <-ctx.Done():
		return workerpool.Response{}, false
	}

	resp, err := m.pool.Submit(ctx, workerpool.Request{
		Transition:  name,
		Marking:     snap.marking,
		Trace:       snap.trace,
		FormulaText: snap.formula,
	})
	if err != nil {
		return workerpool.Response{}, false
	}
	return resp, true
}

func (m *Manager) spawn(name net.Name) {
	m.group.Go(func() error {
		handler.Run(m.runCtx, m, name)
		return nil
	})
}

// runCommitLoop is the single commit goroutine: it runs every command sent
// to m.cmds one at a time until ctx is done, which is how two commits are
// guaranteed to never interleave (spec.md §5).
func (m *Manager) runCommitLoop(ctx context.Context) {
	defer close(m.stopped)
	for {
		select {
		case cmd := <-m.cmds:
			cmd()
		case <-ctx.Done():
			return
		}
	}
}

// tx implements handler.Tx by operating directly on Manager's fields; it is
// only ever constructed and used from inside a closure running on the
// commit goroutine (via Do), so it needs no synchronization of its own.
type tx struct{ m *Manager }

func (t *tx) State(name net.Name) handler.State {
	if h, ok := t.m.handlers[name]; ok {
		return h.State
	}
	return handler.Stale
}

func (t *tx) SetState(name net.Name, s handler.State) {
	if h, ok := t.m.handlers[name]; ok {
		h.State = s
	}
}

func (t *tx) Consuming(name net.Name) []net.Name {
	if h, ok := t.m.handlers[name]; ok {
		return h.ConsumingHandlers
	}
	return nil
}

func (t *tx) Concurrent(name net.Name) []net.Name {
	if h, ok := t.m.handlers[name]; ok {
		return h.ConcurrentHandlers
	}
	return nil
}

func (t *tx) Enabled(mv net.Movement) bool {
	return mv.Enabled(t.m.marking)
}

func (t *tx) Commit(name net.Name, mv net.Movement) {
	t.m.PerformMovement(name, mv)
}

func (t *tx) Spawn(name net.Name) {
	t.m.spawn(name)
}
