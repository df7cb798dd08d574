// Package workerpool offloads the CPU-bound "enablement + movement"
// calculation (spec component C2) to a pool of OS-process-level workers, so
// the single-scheduler-goroutine discipline in package handler never stalls
// on CPU-bound work. Each worker is this same binary re-exec'd with
// WorkerFlag, communicating over a duplex pipe (stdin/stdout) using
// encoding/gob — the Go analogue of the original's gipc duplex pipes.
package workerpool

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fraudik/petrisim/clog"
	"github.com/fraudik/petrisim/net"
	"github.com/google/uuid"
)

var logger = clog.New("workerpool ")

// ErrPoolStopped is returned by Submit once Stop has been called.
var ErrPoolStopped = errors.New("workerpool: pool stopped")

// Pool manages a fixed-size set of worker processes and an idle-handle FIFO
// (spec.md §4.2/§5). Submit is the only method safe to call concurrently
// from many handler goroutines; Start/Stop are called once each from the
// simulation manager.
type Pool struct {
	exe string
	def net.Def
	n   int

	idle    chan *workerHandle
	tracker *tracker

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	handles  []*workerHandle
	stopped  bool
	respawns sync.WaitGroup
}

type workerHandle struct {
	id  string
	cmd *exec.Cmd
	in  io.WriteCloser
	out io.ReadCloser
	enc *gob.Encoder
	dec *gob.Decoder
}

// NewPool prepares a Pool for the given net definition; Start spawns the
// worker processes.
func NewPool(def net.Def) *Pool {
	return &Pool{def: def, tracker: newTracker()}
}

// Start launches n worker processes (spec.md §4.2 "start(n)"). It re-execs
// the currently running binary; cmd/petrisim must check for WorkerFlag
// before doing its normal flag parsing and dispatch to RunWorkerProcess.
func (p *Pool) Start(n int) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("workerpool: resolving executable path: %w", err)
	}
	p.exe = exe
	p.n = n
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.idle = make(chan *workerHandle, n)

	for i := 0; i < n; i++ {
		h, err := p.spawn()
		if err != nil {
			p.cancel()
			return fmt.Errorf("workerpool: starting worker %d/%d: %w", i+1, n, err)
		}
		p.idle <- h
	}
	return nil
}

func (p *Pool) spawn() (*workerHandle, error) {
	cmd := exec.Command(p.exe, WorkerFlag)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	h := &workerHandle{
		id:  uuid.NewString(),
		cmd: cmd,
		in:  stdin,
		out: stdout,
		enc: gob.NewEncoder(stdin),
		dec: gob.NewDecoder(stdout),
	}
	if err := h.enc.Encode(&p.def); err != nil {
		_ = stdin.Close()
		_ = cmd.Process.Kill()
		return nil, fmt.Errorf("handing net definition to worker: %w", err)
	}

	p.mu.Lock()
	p.handles = append(p.handles, h)
	p.mu.Unlock()
	p.tracker.join(h.id)
	logger.Debugf("worker %s started", h.id)
	return h, nil
}

// Submit evaluates one (transition, marking[, trace, formula]) request on
// an idle worker (spec.md §4.2 "submit"). It suspends the calling goroutine
// — never the whole scheduler — until a worker handle is free and a
// response arrives. Worker failures (crash, broken pipe, bad gob decode)
// surface as a zero-value Response with HasMovement == false, equivalent to
// "no movement available", never as an error; only context cancellation or
// Submit being called after Stop returns an error.
func (p *Pool) Submit(ctx context.Context, req Request) (Response, error) {
	var h *workerHandle
	select {
	case h = <-p.idle:
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-p.ctx.Done():
		return Response{}, ErrPoolStopped
	}

	resp, err := p.roundTrip(h, req)
	if err != nil {
		logger.Debugf("worker %s failed: %v", h.id, err)
		p.retire(h)
		go p.respawnAndRequeue()
		return Response{}, nil
	}

	p.idle <- h
	if resp.Err != "" {
		return Response{}, nil
	}
	return resp, nil
}

func (p *Pool) roundTrip(h *workerHandle, req Request) (Response, error) {
	if err := h.enc.Encode(&req); err != nil {
		return Response{}, err
	}
	var resp Response
	if err := h.dec.Decode(&resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// retire removes a dead handle from bookkeeping and closes its pipes; it
// does not block waiting for the subprocess to exit.
func (p *Pool) retire(h *workerHandle) {
	p.tracker.leave(h.id)
	_ = h.in.Close()
	_ = h.out.Close()
	p.mu.Lock()
	for i, hh := range p.handles {
		if hh == h {
			p.handles = append(p.handles[:i], p.handles[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
}

// respawnAndRequeue replaces a crashed worker with exponential backoff
// (an ambient hardening feature the original gipc-based pool does not need
// — see DESIGN.md) and, on success, returns the replacement handle to the
// idle FIFO so pool capacity is restored without changing any state-machine
// semantics in package handler.
func (p *Pool) respawnAndRequeue() {
	p.respawns.Add(1)
	defer p.respawns.Done()

	bo := backoff.WithContext(backoff.NewExponentialBackOff(), p.ctx)
	var h *workerHandle
	err := backoff.Retry(func() error {
		if p.ctx.Err() != nil {
			return backoff.Permanent(p.ctx.Err())
		}
		var spawnErr error
		h, spawnErr = p.spawn()
		return spawnErr
	}, bo)
	if err != nil {
		logger.Errorf("workerpool: giving up respawning a worker: %v", err)
		return
	}
	select {
	case p.idle <- h:
	case <-p.ctx.Done():
		p.retire(h)
	}
}

// Stop closes every worker's stdin (triggering the worker's read loop to
// observe EOF and exit), waits briefly for the subprocesses, and kills any
// stragglers. It must not deadlock even with requests mid-flight (spec.md
// §4.2/§5): in-flight Submit calls observe a closed-pipe error and treat it
// as "no movement available", per the error policy above.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	handles := append([]*workerHandle(nil), p.handles...)
	p.mu.Unlock()

	p.cancel()        // stop respawn loop from starting new attempts
	p.respawns.Wait() // let any in-flight respawn attempt observe cancellation

	for _, h := range handles {
		_ = h.in.Close()
	}

	done := make(chan struct{})
	go func() {
		for _, h := range handles {
			_ = h.cmd.Wait()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		for _, h := range handles {
			if h.cmd.Process != nil {
				_ = h.cmd.Process.Kill()
			}
		}
	}
}

// AliveWorkers returns the number of worker processes currently tracked as
// alive.
func (p *Pool) AliveWorkers() int {
	return p.tracker.count()
}
