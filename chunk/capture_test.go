package chunk

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestCaptureReaderInvariant(t *testing.T) {
	src := strings.Repeat("0123456789", 10)
	cr := NewCaptureReader(strings.NewReader(src))
	total := int64(0)
	for _, size := range []int{1, 7, 3, 32, 64} {
		buf := make([]byte, size)
		n, err := cr.Read(buf)
		if err != nil && err != io.EOF {
			t.Fatalf("Read: %v", err)
		}
		total += int64(n)
		if cr.EndPos() != total {
			t.Fatalf("EndPos() = %d after %d bytes read", cr.EndPos(), total)
		}
	}
	cr.TrimToStart(10)
	if cr.StartPos() != 10 || cr.EndPos() != total {
		t.Errorf("after trim: StartPos=%d EndPos=%d, want 10, %d", cr.StartPos(), cr.EndPos(), total)
	}
	_ = cr.TakeToEnd(30)
	if cr.StartPos() != 30 || cr.EndPos() != total {
		t.Errorf("after take: StartPos=%d EndPos=%d, want 30, %d", cr.StartPos(), cr.EndPos(), total)
	}
}

func TestCaptureReaderTrimThenTake(t *testing.T) {
	src := "junk-doc-one-doc-two"
	cr := NewCaptureReader(strings.NewReader(src))
	if _, err := io.Copy(io.Discard, cr); err != nil {
		t.Fatal(err)
	}
	cr.TrimToStart(5)
	got := cr.TakeToEnd(13)
	if string(got) != src[5:13] {
		t.Errorf("TakeToEnd returned %q, want %q", got, src[5:13])
	}
	got = cr.TakeToEnd(20)
	if string(got) != src[13:20] {
		t.Errorf("second TakeToEnd returned %q, want %q", got, src[13:20])
	}
	if cr.StartPos() != 20 || cr.EndPos() != 20 {
		t.Errorf("after final take: [%d, %d)", cr.StartPos(), cr.EndPos())
	}
}

func TestCaptureReaderTakeDoesNotAlias(t *testing.T) {
	pr, pw := io.Pipe()
	go func() {
		pw.Write([]byte("first."))
		pw.Write([]byte("second"))
		pw.Close()
	}()
	cr := NewCaptureReader(pr)
	buf := make([]byte, 6)
	if _, err := io.ReadFull(cr, buf); err != nil {
		t.Fatal(err)
	}
	chunk := cr.TakeToEnd(6)
	if _, err := io.ReadFull(cr, buf); err != nil {
		t.Fatal(err)
	}
	if string(chunk) != "first." {
		t.Errorf("chunk changed after later reads: %q", chunk)
	}
}

func TestCaptureReaderOutOfRangePanics(t *testing.T) {
	cr := NewCaptureReader(strings.NewReader("abcdef"))
	if _, err := io.Copy(io.Discard, cr); err != nil {
		t.Fatal(err)
	}
	cr.TrimToStart(2)

	for _, c := range []struct {
		name string
		call func()
	}{
		{"trim-before-start", func() { cr.TrimToStart(1) }},
		{"trim-past-end", func() { cr.TrimToStart(7) }},
		{"take-before-start", func() { cr.TakeToEnd(1) }},
		{"take-past-end", func() { cr.TakeToEnd(7) }},
	} {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic for out-of-range position")
				}
			}()
			c.call()
		})
	}
}

type failReader struct {
	data []byte
	err  error
}

func (f *failReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestCaptureReaderRecordsError(t *testing.T) {
	boom := errors.New("boom")
	cr := NewCaptureReader(&failReader{data: []byte("ab"), err: boom})
	out, err := io.ReadAll(cr)
	if err != boom {
		t.Fatalf("ReadAll error %v, want boom", err)
	}
	if !bytes.Equal(out, []byte("ab")) {
		t.Errorf("read %q before failure", out)
	}
	if cr.Err() != boom {
		t.Errorf("Err() = %v, want boom", cr.Err())
	}
}
