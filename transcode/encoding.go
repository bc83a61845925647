package transcode

// Encoding represents the text encoding of a YAML stream.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16BE
	UTF16LE
	UTF32BE
	UTF32LE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16BE:
		return "UTF-16BE"
	case UTF16LE:
		return "UTF-16LE"
	case UTF32BE:
		return "UTF-32BE"
	case UTF32LE:
		return "UTF-32LE"
	default:
		return "Unknown"
	}
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Encoding) UnmarshalText(d []byte) error {
	pe, ok := map[string]Encoding{
		"UTF-8":    UTF8,
		"UTF-16BE": UTF16BE,
		"UTF-16LE": UTF16LE,
		"UTF-32BE": UTF32BE,
		"UTF-32LE": UTF32LE,
	}[string(d)]
	if !ok {
		return ErrUnknownEncoding
	}
	*e = pe
	return nil
}

// detectLen is the desired prefix length for encoding detection.
const detectLen = 4

// Detect determines the text encoding of a YAML stream from its leading
// bytes, per section 5.2 of the YAML 1.2.2 specification.
//
// Detect examines up to 4 bytes of prefix. Shorter prefixes fall through
// to the 2-byte rule and finally to UTF-8. A valid YAML stream begins
// with a byte order mark or an ASCII character; the result for other
// inputs may be incorrect.
func Detect(prefix []byte) Encoding {
	if len(prefix) >= 4 {
		switch {
		case prefix[0] == 0 && prefix[1] == 0 && prefix[2] == 0xFE && prefix[3] == 0xFF,
			prefix[0] == 0 && prefix[1] == 0 && prefix[2] == 0:
			return UTF32BE
		case prefix[0] == 0xFF && prefix[1] == 0xFE && prefix[2] == 0 && prefix[3] == 0,
			prefix[1] == 0 && prefix[2] == 0 && prefix[3] == 0:
			return UTF32LE
		}
	}
	if len(prefix) >= 2 {
		switch {
		case prefix[0] == 0xFE && prefix[1] == 0xFF, prefix[0] == 0:
			return UTF16BE
		case prefix[0] == 0xFF && prefix[1] == 0xFE, prefix[1] == 0:
			return UTF16LE
		}
	}
	return UTF8
}
