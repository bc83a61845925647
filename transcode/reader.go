package transcode

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/signadot/ysplit/debug"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader reads a YAML stream as UTF-8 regardless of its source encoding.
// UTF-16 and UTF-32 input is transparently re-encoded; UTF-8 input is
// passed through. In every case a single leading byte order mark is
// stripped.
type Reader struct {
	enc Encoding
	r   io.Reader
}

// NewReader detects the source encoding from the first bytes of r and
// returns a reader over the re-encoded stream. The bytes consumed for
// detection are replayed, not lost.
func NewReader(r io.Reader) (*Reader, error) {
	prefix := newFixedBuffer(detectLen)
	if _, err := io.CopyN(prefix, r, detectLen); err != nil && err != io.EOF {
		return nil, err
	}
	enc := Detect(prefix.unread())
	if debug.Transcode() {
		debug.Logf("transcode: detected %s from prefix % x\n", enc, prefix.unread())
	}
	return NewReaderEncoding(io.MultiReader(prefix, r), enc)
}

// NewReaderEncoding is NewReader with a known source encoding.
func NewReaderEncoding(r io.Reader, enc Encoding) (*Reader, error) {
	res := &Reader{enc: enc}
	switch enc {
	case UTF8:
		inner, err := stripUTF8BOM(r)
		if err != nil {
			return nil, err
		}
		res.r = inner
	case UTF16BE:
		res.r = newUTF8Encoder(&utf16Decoder{src: r, order: binary.BigEndian})
	case UTF16LE:
		res.r = newUTF8Encoder(&utf16Decoder{src: r, order: binary.LittleEndian})
	case UTF32BE:
		res.r = newUTF8Encoder(&utf32Decoder{src: r, order: binary.BigEndian})
	case UTF32LE:
		res.r = newUTF8Encoder(&utf32Decoder{src: r, order: binary.LittleEndian})
	default:
		return nil, ErrUnknownEncoding
	}
	return res, nil
}

// Encoding reports the source encoding of the stream.
func (t *Reader) Encoding() Encoding {
	return t.enc
}

func (t *Reader) Read(p []byte) (int, error) {
	return t.r.Read(p)
}

// stripUTF8BOM peeks up to 3 bytes, drops them if they are the UTF-8
// encoding of U+FEFF, and replays them otherwise.
func stripUTF8BOM(r io.Reader) (io.Reader, error) {
	peek := newFixedBuffer(len(utf8BOM))
	if _, err := io.CopyN(peek, r, int64(len(utf8BOM))); err != nil && err != io.EOF {
		return nil, err
	}
	if bytes.Equal(peek.unread(), utf8BOM) {
		return r, nil
	}
	return io.MultiReader(peek, r), nil
}
