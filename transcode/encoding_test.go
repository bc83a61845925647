package transcode

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name   string
		prefix []byte
		want   Encoding
	}{
		{"utf32be-bom", []byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
		{"utf32be-ascii", []byte{0x00, 0x00, 0x00, 0x41}, UTF32BE},
		{"utf32le-bom", []byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE},
		{"utf32le-ascii", []byte{0x41, 0x00, 0x00, 0x00}, UTF32LE},
		{"utf16be-bom", []byte{0xFE, 0xFF, 0x00, 0x41}, UTF16BE},
		{"utf16be-ascii", []byte{0x00, 0x41, 0x00, 0x42}, UTF16BE},
		{"utf16le-bom", []byte{0xFF, 0xFE, 0x41, 0x00}, UTF16LE},
		{"utf16le-ascii", []byte{0x41, 0x00, 0x42, 0x00}, UTF16LE},
		{"utf8-bom", []byte{0xEF, 0xBB, 0xBF, 0x41}, UTF8},
		{"utf8-ascii", []byte{'k', 'e', 'y', ':'}, UTF8},
		{"short-utf16be-bom", []byte{0xFE, 0xFF}, UTF16BE},
		{"short-utf16le-bom", []byte{0xFF, 0xFE}, UTF16LE},
		{"short-utf16be-ascii", []byte{0x00, 0x41}, UTF16BE},
		{"short-utf16le-ascii", []byte{0x41, 0x00}, UTF16LE},
		{"short-ascii", []byte{'a', 'b'}, UTF8},
		{"one-byte", []byte{'a'}, UTF8},
		{"empty", nil, UTF8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Detect(c.prefix); got != c.want {
				t.Errorf("Detect(% x) = %s, want %s", c.prefix, got, c.want)
			}
		})
	}
}

func TestEncodingText(t *testing.T) {
	for _, e := range []Encoding{UTF8, UTF16BE, UTF16LE, UTF32BE, UTF32LE} {
		d, err := e.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", e, err)
		}
		var back Encoding
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if back != e {
			t.Errorf("round trip of %s gave %s", e, back)
		}
	}
	var e Encoding
	if err := e.UnmarshalText([]byte("EBCDIC")); err == nil {
		t.Error("UnmarshalText accepted an unknown encoding name")
	}
}
