package stream

import "io"

// EventReader provides boundary events from a source (scanner, scripted
// test source, etc.). ReadEvent returns io.EOF after the final event.
type EventReader interface {
	ReadEvent() (*Event, error)
}

// EmptyEventReader provides an empty event stream.
type EmptyEventReader struct{}

// NewEmptyEventReader creates an empty event reader.
func NewEmptyEventReader() *EmptyEventReader {
	return &EmptyEventReader{}
}

// ReadEvent returns io.EOF immediately (empty stream).
func (r *EmptyEventReader) ReadEvent() (*Event, error) {
	return nil, io.EOF
}
