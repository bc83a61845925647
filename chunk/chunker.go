package chunk

import (
	"io"

	"github.com/signadot/ysplit/debug"
	"github.com/signadot/ysplit/stream"
)

// Chunker yields one byte span per document in a YAML stream. The input
// must be canonical UTF-8 (see package transcode); the chunker must be
// the only reader of it.
type Chunker struct {
	cr     *CaptureReader
	events stream.EventReader
	err    error
}

type options struct {
	newEvents func(io.Reader) stream.EventReader
}

// Option configures a Chunker.
type Option func(*options)

// WithEventSource substitutes the boundary-event source built over the
// chunker's capturing reader. The source must read the stream only
// through the reader it is given.
func WithEventSource(f func(io.Reader) stream.EventReader) Option {
	return func(o *options) {
		o.newEvents = f
	}
}

// New creates a Chunker over r.
func New(r io.Reader, opts ...Option) *Chunker {
	o := &options{
		newEvents: func(r io.Reader) stream.EventReader {
			return stream.NewScanner(r)
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	cr := NewCaptureReader(r)
	return &Chunker{cr: cr, events: o.newEvents(cr)}
}

// Next returns the next document's bytes. It returns io.EOF after the
// final document. Errors, including io.EOF, are sticky.
//
// If the event source fails because the underlying stream failed, the
// stream's error takes precedence over the event source's diagnostic.
func (c *Chunker) Next() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	for {
		ev, err := c.events.ReadEvent()
		if err != nil {
			if err != io.EOF {
				if ioErr := c.cr.Err(); ioErr != nil {
					err = ioErr
				}
			}
			c.err = err
			return nil, err
		}
		if debug.Chunk() {
			debug.Logf("chunk: %s at %d (capture [%d, %d])\n", ev.Type, ev.Offset, c.cr.StartPos(), c.cr.EndPos())
		}
		switch ev.Type {
		case stream.EventStreamEnd:
			c.err = io.EOF
			return nil, io.EOF
		case stream.EventDocumentStart:
			// Discard inter-document material: directives, blank and
			// comment lines, the previous document's "..." terminator.
			c.cr.TrimToStart(ev.Offset)
		case stream.EventDocumentEnd:
			return c.cr.TakeToEnd(ev.Offset), nil
		}
	}
}

// Close releases the event source if it holds resources.
func (c *Chunker) Close() error {
	if cl, ok := c.events.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
