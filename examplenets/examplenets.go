// Package examplenets bundles the named net (and, for the workflow
// scenarios, constraint-formula) fixtures used by spec.md §8's concrete
// end-to-end scenarios A-F. The original exercises these same nets in
// cycle_test_case.py as part of how the system is tested and demonstrated,
// not merely as benchmarking plumbing, so they are carried over here as
// first-class, named, reusable constructors rather than dropped with the
// rest of benchmark_utilities.
package examplenets

import (
	"fmt"

	"github.com/fraudik/petrisim/net"
)

// Cycle builds scenario A: a single-token cycle of length n. Transition
// t_i moves the token from p_i to p_(i+1 mod n). With one token and no
// conflicts, the committed trace is expected to round-robin t0, t1, ..., t(n-1).
func Cycle(n int) (*net.Net, error) {
	if n < 2 {
		return nil, fmt.Errorf("examplenets: cycle length must be >= 2, got %d", n)
	}
	b := net.NewBuilder("cycle")
	b.AddPlace("p0", 1)
	for i := 1; i < n; i++ {
		b.AddPlace(place(i), 0)
	}
	for i := 0; i < n; i++ {
		t := transition(i)
		b.AddTransition(t)
		b.AddInput(place(i), t, 1)
		b.AddOutput(t, place((i+1)%n), 1)
	}
	return b.Build()
}

// ConflictPair builds scenario B: one token on p0 feeding two competing
// transitions ta, tb producing into distinct places pa, pb. After either
// fires, the other has no token left on p0 and no producer ever refills it,
// so the simulation stalls at events_count == 1.
func ConflictPair() (*net.Net, error) {
	b := net.NewBuilder("conflict-pair")
	b.AddPlace("p0", 1)
	b.AddPlace("pa", 0)
	b.AddPlace("pb", 0)
	b.AddTransition("ta")
	b.AddTransition("tb")
	b.AddInput("p0", "ta", 1)
	b.AddOutput("ta", "pa", 1)
	b.AddInput("p0", "tb", 1)
	b.AddOutput("tb", "pb", 1)
	return b.Build()
}

// ProducerConsumer builds scenario C: a self-loop on source keeps t_prod
// perpetually willing to fire ("a token source allowing t_prod to always
// fire"), while a single-token slot place forces strict alternation with
// t_cons: t_prod cannot fire again until t_cons returns the slot, and
// t_cons cannot fire until t_prod has filled p. Since t_prod both consumes
// from and produces into source, t_prod is its own neighbor; committing
// t_prod marks its own handler for an immediate retry rather than going
// stale, which is what keeps it willing to fire again instead of firing
// only once.
func ProducerConsumer() (*net.Net, error) {
	b := net.NewBuilder("producer-consumer")
	b.AddPlace("source", 1)
	b.AddPlace("slot", 1)
	b.AddPlace("p", 0)
	b.AddPlace("sink", 0)
	b.AddTransition("t_prod")
	b.AddTransition("t_cons")
	b.AddInput("source", "t_prod", 1)
	b.AddOutput("t_prod", "source", 1)
	b.AddInput("slot", "t_prod", 1)
	b.AddOutput("t_prod", "p", 1)
	b.AddInput("p", "t_cons", 1)
	b.AddOutput("t_cons", "slot", 1)
	b.AddOutput("t_cons", "sink", 1)
	return b.Build()
}

// WorkflowPrecedes builds scenario D's net: transitions a and b are each
// independently enabled on the initial marking. Pair it with the
// constraint formula "a◁b" so b never fires until a is in the trace.
func WorkflowPrecedes() (*net.Net, error) {
	return workflowPair()
}

// WorkflowNotPrecedes builds scenario E's net: same shape as
// WorkflowPrecedes, paired instead with the formula "a~◁b" so b fires
// freely until a fires, then stalls.
func WorkflowNotPrecedes() (*net.Net, error) {
	return workflowPair()
}

func workflowPair() (*net.Net, error) {
	b := net.NewBuilder("workflow-pair")
	b.AddPlace("pa", 1)
	b.AddPlace("pb", 1)
	b.AddPlace("qa", 0)
	b.AddPlace("qb", 0)
	b.AddTransition("a")
	b.AddTransition("b")
	b.AddInput("pa", "a", 1)
	b.AddOutput("a", "qa", 1)
	b.AddInput("pb", "b", 1)
	b.AddOutput("b", "qb", 1)
	return b.Build()
}

// BaselineEquivalent builds scenario F: a net with at most one enabled
// transition per marking (a straight chain with no conflicts and no
// cycles), on which the baseline and proposed algorithms must produce
// identical traces up to a shared prefix, since there are no scheduling
// choices to make.
func BaselineEquivalent(steps int) (*net.Net, error) {
	if steps < 1 {
		return nil, fmt.Errorf("examplenets: chain length must be >= 1, got %d", steps)
	}
	b := net.NewBuilder("chain")
	b.AddPlace(place(0), 1)
	for i := 1; i <= steps; i++ {
		b.AddPlace(place(i), 0)
	}
	for i := 0; i < steps; i++ {
		t := transition(i)
		b.AddTransition(t)
		b.AddInput(place(i), t, 1)
		b.AddOutput(t, place(i+1), 1)
	}
	return b.Build()
}

func place(i int) net.Name      { return net.Name(fmt.Sprintf("p%d", i)) }
func transition(i int) net.Name { return net.Name(fmt.Sprintf("t%d", i)) }
