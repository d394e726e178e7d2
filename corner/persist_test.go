package corner

import (
	"bytes"
	"io"
	"testing"
)

func TestWriteExactByteCount(t *testing.T) {
	tbl := Allocate()
	tbl.Set(42, 5)
	var buf bytes.Buffer
	if err := Write(tbl, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != TotalBytes {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), TotalBytes)
	}
}

func TestReadShortSourceFails(t *testing.T) {
	tbl := Allocate()
	short := bytes.NewReader(make([]byte, TotalBytes-1))
	if err := Read(tbl, short); err == nil {
		t.Fatalf("expected error reading a short source")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	tbl := Allocate()
	tbl.Set(0, 3)
	tbl.Set(1, 9)
	tbl.Set(TotalEntries-1, 12)

	var buf bytes.Buffer
	if err := Write(tbl, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	restored := Allocate()
	if err := Read(restored, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(tbl.Bytes(), restored.Bytes()) {
		t.Fatalf("restored table differs from original")
	}
}

type shortWriter struct{ limit int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		return w.limit, io.ErrShortWrite
	}
	return len(p), nil
}

func TestWriteShortSinkFails(t *testing.T) {
	tbl := Allocate()
	if err := Write(tbl, &shortWriter{limit: 10}); err == nil {
		t.Fatalf("expected error writing to a short sink")
	}
}
