package stream

import (
	"io"

	"github.com/signadot/ysplit/debug"
)

// Scanner provides streaming document-boundary events from an io.Reader.
// It classifies the stream line by line, consuming bytes as it goes, so
// memory stays bounded for arbitrarily long lines.
//
// The input must be UTF-8 (see package transcode). Scanner recognizes
// line structure only: "---" and "..." markers at column 0, "%"
// directives, comment-only lines, and blank lines. It does not parse
// document content.
type Scanner struct {
	reader io.Reader

	// Internal buffer management
	buf      []byte
	bufStart int64 // Absolute offset where buf starts in stream
	bufPos   int   // Current position within buf

	// Scan state (persisted across reads)
	queue     []*Event
	docOpen   bool
	directive bool
	line      int

	// EOF handling
	eof  bool
	done bool
	err  error

	bufferSize int
}

const defaultBufferSize = 4096

// NewScanner creates a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		reader:     r,
		bufferSize: defaultBufferSize,
	}
	s.queue = append(s.queue, &Event{Type: EventStreamStart, Offset: 0})
	return s
}

// ReadEvent returns the next boundary event. After EventStreamEnd it
// returns io.EOF. Scan errors are positioned *Error values and are
// sticky.
func (s *Scanner) ReadEvent() (*Event, error) {
	for len(s.queue) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		if s.done {
			return nil, io.EOF
		}
		if err := s.scanLine(); err != nil {
			s.err = err
			return nil, err
		}
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	if debug.Scan() {
		debug.Logf("scan: %s at %d\n", ev.Type, ev.Offset)
	}
	return ev, nil
}

// pos is the absolute offset of the next unconsumed byte.
func (s *Scanner) pos() int64 {
	return s.bufStart + int64(s.bufPos)
}

func (s *Scanner) fillBuffer() error {
	s.bufStart += int64(len(s.buf))
	s.bufPos = 0
	if cap(s.buf) < s.bufferSize {
		s.buf = make([]byte, s.bufferSize)
	}
	s.buf = s.buf[:cap(s.buf)]
	n, err := s.reader.Read(s.buf)
	s.buf = s.buf[:n]
	if n > 0 {
		return nil
	}
	if err == nil {
		// A zero-byte read with no error; try again on the next pass.
		return nil
	}
	return err
}

// scanLine consumes one line (through its newline, or to EOF) and queues
// any events its classification produces.
func (s *Scanner) scanLine() error {
	lineStart := s.pos()
	var prefix [4]byte
	prefixLen := 0
	contentOff := int64(-1)
	var contentByte byte

	for {
		if s.bufPos >= len(s.buf) {
			if err := s.fillBuffer(); err != nil {
				if err != io.EOF {
					return err
				}
				s.eof = true
				break
			}
			continue
		}
		b := s.buf[s.bufPos]
		s.bufPos++
		if b == '\n' {
			if err := s.classify(lineStart, prefix[:prefixLen], contentOff, contentByte); err != nil {
				return err
			}
			s.line++
			return nil
		}
		if prefixLen < len(prefix) {
			prefix[prefixLen] = b
			prefixLen++
		}
		if contentOff < 0 && b != ' ' && b != '\t' && b != '\r' {
			contentOff = s.pos() - 1
			contentByte = b
		}
	}

	// EOF: classify the final unterminated line, if any, then close out
	// the stream.
	if s.pos() > lineStart {
		if err := s.classify(lineStart, prefix[:prefixLen], contentOff, contentByte); err != nil {
			return err
		}
	}
	total := s.pos()
	if s.docOpen {
		s.docOpen = false
		s.queue = append(s.queue, &Event{Type: EventDocumentEnd, Offset: total})
	}
	s.queue = append(s.queue, &Event{Type: EventStreamEnd, Offset: total})
	s.done = true
	return nil
}

func (s *Scanner) classify(lineStart int64, prefix []byte, contentOff int64, contentByte byte) error {
	switch {
	case contentOff < 0:
		// Blank line.
	case isMarker(prefix, '-'):
		if s.docOpen {
			s.queue = append(s.queue, &Event{Type: EventDocumentEnd, Offset: lineStart})
		}
		s.directive = false
		s.docOpen = true
		s.queue = append(s.queue, &Event{Type: EventDocumentStart, Offset: lineStart})
	case isMarker(prefix, '.'):
		if s.docOpen {
			s.docOpen = false
			s.queue = append(s.queue, &Event{Type: EventDocumentEnd, Offset: lineStart + 3})
		} else if s.directive {
			return s.errorAt(`expected "---" after directives`, lineStart, lineStart)
		}
		// A stray "..." with no open document is inter-document material.
	case prefix[0] == '%':
		if s.docOpen {
			return s.errorAt("directive inside document", lineStart, lineStart)
		}
		s.directive = true
	case contentByte == '#':
		// Comment-only line.
	default:
		if !s.docOpen {
			if s.directive {
				return s.errorAt(`expected "---" after directives`, contentOff, lineStart)
			}
			s.docOpen = true
			s.queue = append(s.queue, &Event{Type: EventDocumentStart, Offset: contentOff})
		}
	}
	return nil
}

// isMarker reports whether a line beginning with the given prefix bytes
// is a "---" or "..." marker line: three of c at column 0 followed by
// space, tab, carriage return, newline, or end of stream.
func isMarker(prefix []byte, c byte) bool {
	if len(prefix) < 3 || prefix[0] != c || prefix[1] != c || prefix[2] != c {
		return false
	}
	if len(prefix) == 3 {
		return true
	}
	switch prefix[3] {
	case ' ', '\t', '\r':
		return true
	}
	return false
}

func (s *Scanner) errorAt(msg string, off, lineStart int64) error {
	return &Error{
		Msg:    msg,
		Offset: off,
		Line:   s.line + 1,
		Column: int(off-lineStart) + 1,
	}
}
