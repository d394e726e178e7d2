package corner

import (
	"io"

	"github.com/pkg/errors"
)

// Write serializes t as exactly TotalBytes raw bytes, no header, index 0 in
// the low nibble of byte 0. It fails if the sink accepts fewer bytes than
// that.
func Write(t *Table, w io.Writer) error {
	n, err := w.Write(t.bytes)
	if err != nil {
		return errors.Wrap(err, "corner: write table")
	}
	if n != TotalBytes {
		return errors.Errorf("corner: write table: wrote %d of %d bytes", n, TotalBytes)
	}
	return nil
}

// Read populates t from exactly TotalBytes raw bytes read from source. It
// fails if fewer bytes are available.
func Read(t *Table, r io.Reader) error {
	n, err := io.ReadFull(r, t.bytes)
	if err != nil {
		return errors.Wrapf(err, "corner: read table: got %d of %d bytes", n, TotalBytes)
	}
	return nil
}
