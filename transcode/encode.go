package transcode

import (
	"io"
	"unicode/utf8"
)

// utf8Encoder re-encodes a rune source as a UTF-8 byte stream. It pairs
// with utf16Decoder or utf32Decoder and implements io.Reader over
// caller-supplied buffers of any size, carrying partially emitted
// characters across calls. If the source starts with a BOM, the encoder
// skips it and reading begins with the actual text content.
type utf8Encoder struct {
	src     io.RuneReader
	carry   *fixedBuffer
	started bool

	// A source error that arrived after bytes were already written in
	// the same Read call, surfaced on the next call.
	stashed error
}

func newUTF8Encoder(src io.RuneReader) *utf8Encoder {
	return &utf8Encoder{src: src, carry: newFixedBuffer(utf8.UTFMax)}
}

func (e *utf8Encoder) next() (rune, int, error) {
	r, size, err := e.src.ReadRune()
	if !e.started {
		e.started = true
		if err == nil && r == '\uFEFF' {
			return e.src.ReadRune()
		}
	}
	return r, size, err
}

func (e *utf8Encoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	written := 0

	// First, before encoding any new characters, emit the remainder of
	// any character generated by a previous read.
	if !e.carry.empty() {
		n := copy(p, e.carry.unread())
		e.carry.pos += n
		written += n
		p = p[n:]
		if !e.carry.empty() {
			return written, nil
		}
	}

	if e.stashed != nil {
		err := e.stashed
		e.stashed = nil
		return written, err
	}

	// Second, emit as much as we can directly into the destination.
	for len(p) >= utf8.UTFMax {
		r, _, err := e.next()
		if err != nil {
			return e.surface(written, err)
		}
		n := utf8.EncodeRune(p, r)
		p = p[n:]
		written += n
	}

	// Finally, fill the destination's remaining space, storing the tail
	// of any character that does not fully fit.
	for len(p) > 0 {
		r, _, err := e.next()
		if err != nil {
			return e.surface(written, err)
		}
		var tmp [utf8.UTFMax]byte
		n := utf8.EncodeRune(tmp[:], r)
		m := copy(p, tmp[:n])
		p = p[m:]
		written += m
		if m < n {
			e.carry.set(tmp[m:n])
		}
	}
	return written, nil
}

// surface returns a source error without dropping bytes already encoded
// in this call: if any were written, the error is held back until the
// next call so output is identical for every read-size sequence.
func (e *utf8Encoder) surface(written int, err error) (int, error) {
	if written > 0 {
		e.stashed = err
		return written, nil
	}
	return 0, err
}
