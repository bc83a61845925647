package transcode

import (
	"fmt"
	"io"
)

// fixedBuffer is a reusable fixed-capacity buffer with one-way read and
// write cursors. The backing array is logically divided into a consumed
// region [0, pos), an unread region [pos, n), and an unwritten region
// [n, cap). Writes append to the unread region; consumed space is only
// reclaimed by set.
type fixedBuffer struct {
	buf []byte
	pos int
	n   int
}

func newFixedBuffer(size int) *fixedBuffer {
	return &fixedBuffer{buf: make([]byte, size)}
}

func (b *fixedBuffer) unread() []byte {
	return b.buf[b.pos:b.n]
}

func (b *fixedBuffer) empty() bool {
	return b.pos >= b.n
}

// set empties the buffer and reinitializes it with p as the unread
// content. It panics if p exceeds the buffer's capacity.
func (b *fixedBuffer) set(p []byte) {
	if len(p) > len(b.buf) {
		panic(fmt.Sprintf("transcode: fixedBuffer.set with %d bytes on a buffer of size %d", len(p), len(b.buf)))
	}
	copy(b.buf, p)
	b.pos = 0
	b.n = len(p)
}

// Read drains the unread region. It returns io.EOF when the region is
// empty, so a fixedBuffer chains cleanly under io.MultiReader.
func (b *fixedBuffer) Read(p []byte) (int, error) {
	if b.empty() {
		return 0, io.EOF
	}
	n := copy(p, b.unread())
	b.pos += n
	return n, nil
}

// Write appends to the unread region, truncating at capacity.
func (b *fixedBuffer) Write(p []byte) (int, error) {
	n := copy(b.buf[b.n:], p)
	b.n += n
	return n, nil
}
