package main

import (
	"errors"
	"io"
	"syscall"
)

// errPipeClosed signals that the output pipe went away (EPIPE). Emitting
// stops and the process exits cleanly instead of dying on SIGPIPE noise.
var errPipeClosed = errors.New("output pipe closed")

// pipeWriter wraps an output writer, converting EPIPE into the
// errPipeClosed sentinel. Other write errors pass through.
type pipeWriter struct {
	w      io.Writer
	broken bool
}

func newPipeWriter(w io.Writer) *pipeWriter {
	return &pipeWriter{w: w}
}

func (p *pipeWriter) Write(b []byte) (int, error) {
	if p.broken {
		return 0, errPipeClosed
	}
	n, err := p.w.Write(b)
	if errors.Is(err, syscall.EPIPE) {
		p.broken = true
		return n, errPipeClosed
	}
	return n, err
}
