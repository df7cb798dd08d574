package handler

import (
	"context"

	"github.com/fraudik/petrisim/net"
)

// Run is one activation task (spec's activate_transition): decide whether
// name can fire given the current marking (and, in workflow mode, trace and
// formula), commit the fire if so, and wake or mark-for-retry the
// appropriate neighbors. It suspends only at two kinds of points: inside
// sched.Submit (awaiting the worker response) and inside each sched.Do call
// (awaiting the commit goroutine) — the suspension points named in
// spec.md §5.
func Run(ctx context.Context, sched Scheduler, name net.Name) {
	select {
	case <-ctx.Done():
		return
	default:
	}

	if sched.IsWorkflow() {
		runWorkflow(ctx, sched, name)
		return
	}
	runBase(ctx, sched, name)
}

// runBase implements spec.md §4.5.1/§4.5.2's {Stale, Enqueued, ToRetry}
// machine.
func runBase(ctx context.Context, sched Scheduler, name net.Name) {
	// Entry always sets Enqueued, even when this task is itself a retry
	// spawn whose handler may already have been reassigned ToRetry by a
	// neighbor in the same turn — benign under the commit goroutine's
	// serialization (see DESIGN.md, "state-update race on retry").
	sched.Do(func(tx Tx) { tx.SetState(name, Enqueued) })
	sched.Debugf("%s: enqueued, requesting movement", name)

	resp, ok := sched.Submit(ctx, name)
	if !ok {
		return
	}

	retry := false
	sched.Do(func(tx Tx) {
		enabled := resp.HasMovement && tx.Enabled(resp.Movement)
		state := tx.State(name)

		if !enabled {
			if state == ToRetry {
				sched.Debugf("%s: not enabled, flagged TO_RETRY, respawning", name)
				retry = true
				return
			}
			sched.Debugf("%s: not enabled, going STALE", name)
			tx.SetState(name, Stale)
			return
		}

		sched.Debugf("%s: committing %s", name, resp.Movement)
		tx.Commit(name, resp.Movement)
		wakeBase(tx, name)
		// name may be its own neighbor (a transition that refills its own
		// input place): the wake pass above may have flagged our own state
		// TO_RETRY instead of leaving it untouched. Only force STALE when
		// that did not happen; otherwise respawn immediately, exactly as
		// the not-enabled/TO_RETRY path above does.
		switch tx.State(name) {
		case Enqueued:
			tx.SetState(name, Stale)
		case ToRetry:
			retry = true
		}
	})

	if retry {
		sched.Do(func(tx Tx) { tx.Spawn(name) })
	}
}

// wakeBase implements the neighbor wake pass of spec.md §4.5.2 step 4. It
// must run inside the same Do callback that performed the commit, so the
// transition from "just committed" to "neighbors marked/spawned" is atomic.
func wakeBase(tx Tx, name net.Name) {
	consuming := tx.Consuming(name)
	neighbors := union(tx.Concurrent(name), consuming)
	consumingSet := toSet(consuming)

	for _, nb := range neighbors {
		switch tx.State(nb) {
		case Stale:
			tx.SetState(nb, Enqueued)
			tx.Spawn(nb)
		case Enqueued:
			if _, ok := consumingSet[nb]; ok {
				tx.SetState(nb, ToRetry)
			}
		}
	}
}

// runWorkflow implements spec.md §4.5.3's
// {Stale, Enqueued, PossiblyEnabled, PossiblyDisabled} machine.
func runWorkflow(ctx context.Context, sched Scheduler, name net.Name) {
	sched.Do(func(tx Tx) { tx.SetState(name, Enqueued) })
	sched.Debugf("%s: enqueued, requesting movement", name)

	resp, ok := sched.Submit(ctx, name)
	if !ok {
		return
	}

	retry := false
	sched.Do(func(tx Tx) {
		state := tx.State(name)
		enabled := resp.HasMovement && tx.Enabled(resp.Movement)

		switch {
		case state == PossiblyDisabled:
			// Constraint state changed underneath us; discard this answer
			// regardless of what it says.
			sched.Debugf("%s: POSSIBLY_DISABLED, discarding answer, respawning", name)
			retry = true
			return
		case state == PossiblyEnabled && !enabled:
			sched.Debugf("%s: POSSIBLY_ENABLED but not enabled, respawning", name)
			retry = true
			return
		case !enabled:
			sched.Debugf("%s: not enabled, going STALE", name)
			tx.SetState(name, Stale)
			return
		}

		sched.Debugf("%s: committing %s", name, resp.Movement)
		tx.Commit(name, resp.Movement)
		wakeWorkflow(tx, name, resp.PossiblyEnabled, resp.PossiblyDisabled)
		// name may be its own neighbor via a self-loop arc: the wake pass
		// above may have reassigned our own state instead of leaving it
		// Enqueued. Respawn immediately in that case rather than clobbering
		// the reassignment back to Stale.
		switch tx.State(name) {
		case Enqueued:
			tx.SetState(name, Stale)
		case PossiblyEnabled, PossiblyDisabled:
			retry = true
		}
	})

	if retry {
		sched.Do(func(tx Tx) { tx.Spawn(name) })
	}
}

// wakeWorkflow implements the neighbor wake pass of spec.md §4.5.3. The
// possibly-disabled pass must run after the enable pass and must not spawn
// tasks, per spec.md's explicit ordering requirement.
func wakeWorkflow(tx Tx, name net.Name, possiblyEnabled, possiblyDisabled []net.Name) {
	neighbors := union(tx.Consuming(name), possiblyEnabled)
	for _, nb := range neighbors {
		switch tx.State(nb) {
		case Stale:
			tx.SetState(nb, Enqueued)
			tx.Spawn(nb)
		case Enqueued:
			tx.SetState(nb, PossiblyEnabled)
		}
	}

	for _, nb := range possiblyDisabled {
		if tx.State(nb) == Enqueued {
			tx.SetState(nb, PossiblyDisabled)
		}
	}
}
