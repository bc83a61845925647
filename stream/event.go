package stream

import "fmt"

// Event marks a structural boundary in a YAML stream. Offset is an
// absolute byte offset into the stream.
//
// For EventDocumentStart, Offset is the first byte of the document,
// including its "---" line when present. For EventDocumentEnd, Offset is
// one past the document's last byte. For EventStreamEnd, Offset is the
// total stream length.
type Event struct {
	Type   EventType
	Offset int64
}

// EventType represents the type of a boundary event.
type EventType int

const (
	EventStreamStart EventType = iota
	EventDocumentStart
	EventDocumentEnd
	EventStreamEnd
)

func (t EventType) String() string {
	switch t {
	case EventStreamStart:
		return "StreamStart"
	case EventDocumentStart:
		return "DocumentStart"
	case EventDocumentEnd:
		return "DocumentEnd"
	case EventStreamEnd:
		return "StreamEnd"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	pt, ok := map[string]EventType{
		"StreamStart":   EventStreamStart,
		"DocumentStart": EventDocumentStart,
		"DocumentEnd":   EventDocumentEnd,
		"StreamEnd":     EventStreamEnd,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unknown event type %q", string(d))
	}
	*t = pt
	return nil
}
