package transcode

import (
	"bytes"
	"testing"
)

func FuzzReader(f *testing.F) {
	seeds := [][]byte{
		nil,
		[]byte("a"),
		[]byte("key: value\n"),
		{0xFE, 0xFF, 0x00, 0x41},
		{0xFF, 0xFE, 0x41, 0x00},
		{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x41},
		{0xFF, 0xFE, 0x00, 0x00, 0x41, 0x00, 0x00, 0x00},
		{0xEF, 0xBB, 0xBF, 'h', 'i'},
		{0x00, 0x41, 0xDC, 0x00, 0x00, 0x42},
		{0x00, 0x41, 0xD8, 0x00, 0x00, 0x42},
		{0x00, 0x41, 0x00},
		{0x00, 0x00, 0x00, 0x41, 0x00, 0x00, 0xD8, 0x00},
		[]byte("doc1\n---\ndoc2\n"),
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		// The transcoder must never panic, must agree with Detect, and
		// must produce identical output for any read-size sequence.
		r, err := NewReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		prefix := data
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		if want := Detect(prefix); r.Encoding() != want {
			t.Fatalf("facade encoding %s, Detect says %s", r.Encoding(), want)
		}
		big, bigErr := readSizes(r, []int{4096})

		r2, err := NewReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("NewReader: %v", err)
		}
		small, smallErr := readSizes(r2, []int{1, 2, 3})

		if !bytes.Equal(big, small) {
			t.Errorf("read-size dependent output:\nbig:   % x\nsmall: % x", big, small)
		}
		if (bigErr == nil) != (smallErr == nil) {
			t.Errorf("read-size dependent errors: %v vs %v", bigErr, smallErr)
		} else if bigErr != nil && bigErr.Error() != smallErr.Error() {
			t.Errorf("read-size dependent errors: %q vs %q", bigErr, smallErr)
		}
	})
}
