/*
Starts a petrisim simulation run: loads a Petri net (a built-in example or a
netdef YAML file), runs the proposed event-driven algorithm under a worker
pool, optionally compares against the baseline scan-and-fire algorithm, and
prints the resulting stats.

This same binary doubles as a worker process: when re-exec'd with
workerpool.WorkerFlag (as Pool.Start does), it skips straight to
workerpool.RunWorkerProcess instead of parsing any of the flags below. That
check must happen before flag.Parse, since the worker is invoked with a
single bare flag and no other arguments.

For usage details, run petrisim with the command line flag -h or --help.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/fraudik/petrisim/clog"
	"github.com/fraudik/petrisim/config"
	"github.com/fraudik/petrisim/examplenets"
	"github.com/fraudik/petrisim/net"
	"github.com/fraudik/petrisim/netdef"
	"github.com/fraudik/petrisim/simulation"
	"github.com/fraudik/petrisim/workerpool"
)

// builtins maps -net names to example net constructors (spec.md §8 scenarios
// A-F), so a run can be reproduced without an on-disk netdef file.
var builtins = map[string]func() (*net.Net, error){
	"cycle":                 func() (*net.Net, error) { return examplenets.Cycle(4) },
	"conflict-pair":         examplenets.ConflictPair,
	"producer-consumer":     examplenets.ProducerConsumer,
	"workflow-precedes":     examplenets.WorkflowPrecedes,
	"workflow-not-precedes": examplenets.WorkflowNotPrecedes,
	"baseline-equivalent":   func() (*net.Net, error) { return examplenets.BaselineEquivalent(5) },
}

func main() {
	for _, a := range os.Args[1:] {
		if a == workerpool.WorkerFlag {
			if err := workerpool.RunWorkerProcess(os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "petrisim worker: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	var netName string
	var netFile string
	var formula string
	var configFile string
	var timeout time.Duration
	var workers int
	var compareBaseline bool
	var debug bool
	var benchmark bool
	var help bool
	var log bool

	flag.Usage = usage
	flag.StringVar(&netName, "net", "cycle", "built-in net name (see -h) or, with -net-file, ignored")
	flag.StringVar(&netFile, "net-file", "", "path to a netdef YAML file (overrides -net)")
	flag.StringVar(&formula, "formula", "", "constraint formula string; non-empty selects workflow mode")
	flag.StringVar(&configFile, "config", "", "path to a YAML config file, overlaid onto the defaults below")
	flag.DurationVar(&timeout, "timeout", config.Default().SimulationTimeout, "simulation wall-clock timeout")
	flag.IntVar(&workers, "workers", config.Default().WorkersNum, "worker pool size")
	flag.BoolVar(&compareBaseline, "compare-baseline", false, "also run the baseline scan-and-fire algorithm and report its events/sec")
	flag.BoolVar(&debug, "debug", false, "verbose handler-state-transition tracing")
	flag.BoolVar(&benchmark, "benchmark", false, "print only the events/sec line")
	flag.BoolVar(&help, "h", false, "Show usage information")
	flag.BoolVar(&log, "l", false, "Show logging output (for debugging)")
	flag.Parse()

	if help {
		usage()
		os.Exit(0)
	}

	if log {
		clog.Enable()
	}

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "petrisim: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// Only flags given explicitly on the command line override the file;
	// otherwise the file's values (or the defaults) stand.
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if setFlags["timeout"] {
		cfg.SimulationTimeout = timeout
	}
	if setFlags["workers"] {
		cfg.WorkersNum = workers
	}
	cfg.IsComparingWithBaselineAlgorithm = compareBaseline || cfg.IsComparingWithBaselineAlgorithm
	cfg.IsDebug = debug || cfg.IsDebug
	cfg.IsBenchmarking = benchmark || cfg.IsBenchmarking

	n, err := loadNet(netName, netFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "petrisim: %v\n", err)
		os.Exit(1)
	}

	// Handle SIGTERM/SIGINT by canceling the simulation's context, giving the
	// commit goroutine and handler tasks a chance to unwind gracefully
	// instead of being killed mid-commit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-sigCh; ok {
			fmt.Fprintln(os.Stderr, "petrisim: terminating on signal...")
			cancel()
		}
	}()

	if _, err := simulation.RunWithOptionalBaseline(ctx, n, cfg, formula); err != nil {
		fmt.Fprintf(os.Stderr, "petrisim: %v\n", err)
		os.Exit(1)
	}
}

// loadNet resolves -net-file first (a netdef YAML path), falling back to the
// -net built-in name.
func loadNet(netName, netFile string) (*net.Net, error) {
	if netFile != "" {
		return netdef.Load(netFile)
	}
	build, ok := builtins[netName]
	if !ok {
		return nil, fmt.Errorf("unknown built-in net %q (see -h for the list)", netName)
	}
	return build()
}

func usage() {
	fmt.Printf(`usage: petrisim [-h|--help] [-l] [flags...]

Runs a petrisim simulation: fires enabled transitions against a shared
marking using the event-driven algorithm, off-loading enablement
computation to a worker pool, until the timeout elapses or the net stalls.

Built-in -net names:

`)
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("\nFlags:")
	flag.PrintDefaults()
}
