package stream

import "fmt"

// Error represents a positioned scan error. Offset is an absolute byte
// offset; Line and Column are 1-based.
type Error struct {
	Msg    string
	Offset int64
	Line   int
	Column int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s at position %d", e.Msg, e.Offset)
	}
	return fmt.Sprintf("%s at line %d column %d", e.Msg, e.Line, e.Column)
}
