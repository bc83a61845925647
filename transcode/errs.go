package transcode

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// UnitError reports an invalid or unexpected code unit in a UTF-16 or
// UTF-32 stream. Offset is the byte position of the unit within the
// decoder's source, counted from the start of decoding.
type UnitError struct {
	Unit   uint32
	Offset int64
	Bits   int
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("invalid or unexpected UTF-%d code unit 0x%x at byte %d", e.Bits, e.Unit, e.Offset)
}
