package chunk

import (
	"fmt"
	"io"
)

// CaptureReader wraps a byte stream and records every byte read through
// it, addressable by absolute stream offset. The capture grows only via
// reads and shrinks only via TrimToStart and TakeToEnd, so it holds
// exactly the stream bytes in [StartPos(), EndPos()).
type CaptureReader struct {
	reader  io.Reader
	capture []byte
	// startPos is the absolute stream offset of capture's first byte.
	startPos int64
	err      error
}

// NewCaptureReader creates a CaptureReader over r.
func NewCaptureReader(r io.Reader) *CaptureReader {
	return &CaptureReader{reader: r}
}

// Read reads from the underlying stream, appending exactly the bytes the
// underlying read returned to the capture. The first non-EOF read error
// is also recorded for retrieval via Err.
func (cr *CaptureReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	if n > 0 {
		cr.capture = append(cr.capture, p[:n]...)
	}
	if err != nil && err != io.EOF && cr.err == nil {
		cr.err = err
	}
	return n, err
}

// StartPos returns the absolute offset of the first captured byte.
func (cr *CaptureReader) StartPos() int64 {
	return cr.startPos
}

// EndPos returns the absolute offset one past the last captured byte,
// which equals the total bytes read from the underlying stream.
func (cr *CaptureReader) EndPos() int64 {
	return cr.startPos + int64(len(cr.capture))
}

// Err returns the first non-EOF error returned by the underlying stream,
// if any.
func (cr *CaptureReader) Err() error {
	return cr.err
}

// TrimToStart discards captured bytes before pos. Calling it with a
// position outside [StartPos(), EndPos()] is a programming error and
// panics.
func (cr *CaptureReader) TrimToStart(pos int64) {
	k := cr.offsetOf(pos, "TrimToStart")
	cr.capture = append(cr.capture[:0], cr.capture[k:]...)
	cr.startPos = pos
}

// TakeToEnd removes and returns the captured bytes before pos. The
// returned slice is owned by the caller; the retained tail is copied so
// later reads never alias it. Positions outside [StartPos(), EndPos()]
// panic as in TrimToStart.
func (cr *CaptureReader) TakeToEnd(pos int64) []byte {
	k := cr.offsetOf(pos, "TakeToEnd")
	chunk := cr.capture[:k:k]
	cr.capture = append([]byte(nil), cr.capture[k:]...)
	cr.startPos = pos
	return chunk
}

func (cr *CaptureReader) offsetOf(pos int64, op string) int {
	if pos < cr.startPos || pos > cr.EndPos() {
		panic(fmt.Sprintf("chunk: %s(%d) outside captured range [%d, %d]", op, pos, cr.startPos, cr.EndPos()))
	}
	return int(pos - cr.startPos)
}
