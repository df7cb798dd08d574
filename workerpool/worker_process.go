package workerpool

import (
	"encoding/gob"
	"errors"
	"io"

	"github.com/fraudik/petrisim/net"
)

// WorkerFlag is the hidden command-line flag cmd/petrisim checks for before
// normal flag parsing: its presence re-execs the binary into worker-process
// mode (spec.md §4.2/§9: "OS-process-level workers", "duplex pipes are the
// source model"). It is exported so cmd/petrisim and Pool agree on the
// exact flag without duplicating the literal.
const WorkerFlag = "-petrisim-worker"

// RunWorkerProcess is the entry point a re-exec'd worker process runs. It
// loads the net once from the first gob value read from r (spec.md §4.2:
// "loading PNML once per worker, not per request" — here, loading the net
// definition once), then loops: decode a Request, compute, encode a
// Response, until r is exhausted (EOF, the pool closed this worker's
// stdin). It never returns an error for a single bad/failing request — per
// spec.md §7 those are confined to the Response's Err field — only for the
// initial net handoff or unrecoverable pipe errors.
func RunWorkerProcess(r io.Reader, w io.Writer) error {
	dec := gob.NewDecoder(r)
	enc := gob.NewEncoder(w)

	var def net.Def
	if err := dec.Decode(&def); err != nil {
		return err
	}
	n, err := net.FromDef(def)
	if err != nil {
		return err
	}

	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		resp := safeCompute(n, req)

		if err := enc.Encode(&resp); err != nil {
			return err
		}
	}
}

// safeCompute guards against a panic inside compute (e.g. a bug in a future
// extension of the enablement calculation) turning into a crashed worker
// process; a panic is equivalent to "worker failure" per spec.md §7.
func safeCompute(n *net.Net, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{Err: panicMessage(r)}
		}
	}()
	return compute(n, req)
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return "worker panic"
}
