// Package simulation owns the shared marking, trace, statistics and
// transition-handler table (component C4), and is the sole implementation
// of handler.Scheduler: every mutation a handler activation task needs is
// routed through Manager's single commit goroutine, which is how this
// package reproduces spec.md §5's "no locks required on shared state"
// discipline in a runtime where goroutines, unlike the cooperative
// greenlets the design is modeled on, are preemptively scheduled.
package simulation

import (
	"context"
	"sort"
	"time"

	"github.com/fraudik/petrisim/clog"
	"github.com/fraudik/petrisim/handler"
	"github.com/fraudik/petrisim/net"
	"github.com/fraudik/petrisim/workerpool"
)

// Manager is the simulation manager (spec's SimulationManager).
type Manager struct {
	net      *net.Net
	pool     *workerpool.Pool
	logger   *clog.CLogger
	handlers map[net.Name]*handler.Handler
	formula  string // shared constraint formula text; "" selects the base variant

	marking            net.Marking
	trace              []net.Name
	eventsCount        int
	eventsDistribution map[net.Name]int

	buildDuration   time.Duration
	simulationStart time.Time
	simulationEnd   time.Time

	cmds    chan func()
	stopped chan struct{}
	group   runner
	runCtx  context.Context
}

// NewManager creates a Manager bound to pool; Build must be called before
// Startup.
func NewManager(pool *workerpool.Pool, logger *clog.CLogger) *Manager {
	return &Manager{pool: pool, logger: logger}
}

// Build constructs one handler per transition of n and populates each
// handler's ConcurrentHandlers (transitions sharing an input place) and
// ConsumingHandlers (downstream transitions consuming from a place n
// produces into), per spec.md §4.4. formula is the workflow constraint
// formula text shared by every transition's request (every handler submits
// the same formula with itself as the candidate, per spec.md §4.3); an
// empty formula selects the base Petri-net variant. Build is idempotent:
// calling it again on the same net rebuilds the handler table from scratch
// and resets the marking to n's current marking.
func (m *Manager) Build(n *net.Net, formula string) {
	start := time.Now()

	m.net = n
	m.marking = n.Marking().Clone()
	m.formula = formula
	m.handlers = make(map[net.Name]*handler.Handler, len(n.Transitions()))
	m.trace = nil
	m.eventsCount = 0
	m.eventsDistribution = make(map[net.Name]int)

	for _, t := range n.Transitions() {
		m.handlers[t] = handler.New(t)
	}
	for _, t := range n.Transitions() {
		h := m.handlers[t]
		h.ConsumingHandlers = sortedKeys(consumingSetOf(n, t))
		h.ConcurrentHandlers = sortedKeys(concurrentSetOf(n, t, t))
	}

	m.buildDuration = time.Since(start)
}

// consumingSetOf collects, for every place t produces into, the transitions
// that consume from that place (spec.md §3: "consuming_handlers — the set
// of transitions that consume from any place this transition produces
// into").
func consumingSetOf(n *net.Net, t net.Name) map[net.Name]struct{} {
	set := make(map[net.Name]struct{})
	for _, p := range n.Post(t) {
		for _, consumer := range n.Post(p) {
			set[consumer] = struct{}{}
		}
	}
	return set
}

// concurrentSetOf collects the transitions sharing at least one input
// place with t, excluding self (spec.md §3: "concurrent_handlers — the set
// of transitions sharing at least one input place with this one").
func concurrentSetOf(n *net.Net, t net.Name, self net.Name) map[net.Name]struct{} {
	set := make(map[net.Name]struct{})
	for _, p := range n.Pre(t) {
		for _, other := range n.Post(p) {
			if other != self {
				set[other] = struct{}{}
			}
		}
	}
	return set
}

func sortedKeys(set map[net.Name]struct{}) []net.Name {
	out := make([]net.Name, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsWorkflow reports whether the workflow-variant wake/retry rules apply.
func (m *Manager) IsWorkflow() bool { return m.formula != "" }

// Debugf implements handler.Scheduler.
func (m *Manager) Debugf(format string, a ...any) { m.logger.Debugf(format, a...) }

// PerformMovement atomically subtracts mv.Start, adds mv.End, appends name
// to the trace, and updates the event counters (spec.md §4.4). It must only
// be called by the handler whose transition is name, after a positive
// enablement check against the CURRENT marking — in production that is
// always true because it is only ever reached through a handler.Tx.Commit
// call made from inside the commit goroutine; tests may call it directly
// on a freshly built Manager (no commit goroutine running yet) to exercise
// the invariant in spec.md §8 property 1 and 3.
func (m *Manager) PerformMovement(name net.Name, mv net.Movement) {
	m.marking = m.marking.Sub(mv.Start).Add(mv.End)
	m.trace = append(m.trace, name)
	m.eventsCount++
	m.eventsDistribution[name]++
	m.logger.Debugf("%s: marking now %s", name, m.marking)
}

// Marking returns the current marking. Safe to call once Startup has
// returned; reading it concurrently with a running simulation requires
// going through Do, which handler activation tasks do transparently via
// Submit.
func (m *Manager) Marking() net.Marking { return m.marking.Clone() }

// Trace returns the committed firing sequence so far.
func (m *Manager) Trace() []net.Name { return append([]net.Name(nil), m.trace...) }

// EventsCount returns len(Trace()).
func (m *Manager) EventsCount() int { return m.eventsCount }

// EventsDistribution returns the per-transition firing counts.
func (m *Manager) EventsDistribution() map[net.Name]int {
	out := make(map[net.Name]int, len(m.eventsDistribution))
	for k, v := range m.eventsDistribution {
		out[k] = v
	}
	return out
}

// runner is the subset of *errgroup.Group Manager needs, named here so
// commit.go does not have to import errgroup just to store the field type
// inline.
type runner interface {
	Go(f func() error)
	Wait() error
}
