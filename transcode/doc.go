// Package transcode reads YAML 1.2 streams as UTF-8 regardless of their
// source encoding.
//
// [Detect] implements the encoding detection rule from section 5.2 of the
// YAML 1.2.2 specification, which relies on a valid stream beginning with
// either a byte order mark or an ASCII character. Detection behavior for
// non-YAML inputs is best effort.
//
// [NewReader] wraps a byte source, detects its encoding from the leading
// bytes without losing them, and re-encodes UTF-16 and UTF-32 input to
// UTF-8 incrementally. A single leading byte order mark is stripped.
//
// # Example
//
//	r, err := transcode.NewReader(f)
//	if err != nil {
//	    return err
//	}
//	// r.Encoding() reports the detected source encoding.
//	// All reads from r yield UTF-8 with no leading BOM.
package transcode
