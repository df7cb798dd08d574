package simulation

import (
	"context"
	"time"

	"github.com/fraudik/petrisim/handler"
	"golang.org/x/sync/errgroup"
)

// Startup records the simulation start time, spawns one cooperative task
// per handler, and joins all of them (spec.md §4.4). It starts the commit
// goroutine and keeps it alive for exactly the lifetime of ctx: when ctx is
// canceled (the wall-clock timeout of spec.md §6 firing, or an explicit
// cancellation), every activation task's next suspension point observes it
// and returns, the commit goroutine observes it via the same ctx and stops
// accepting commands, and Startup returns once errgroup.Wait unblocks.
//
// errgroup.Group is the direct analogue of the cooperative pool.Group this
// design is modeled on: Go ≈ spawn, Wait ≈ joinAll, the suspension point
// named in spec.md §5 item 3.
func (m *Manager) Startup(ctx context.Context) error {
	m.simulationStart = time.Now()
	m.cmds = make(chan func())
	m.stopped = make(chan struct{})
	m.runCtx = ctx

	go m.runCommitLoop(ctx)

	g, _ := errgroup.WithContext(ctx)
	m.group = g

	for _, name := range m.net.Transitions() {
		name := name
		g.Go(func() error {
			handler.Run(ctx, m, name)
			return nil
		})
	}

	err := g.Wait()
	m.simulationEnd = time.Now()
	return err
}
