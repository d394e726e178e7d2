package corner

import (
	"encoding/hex"

	"github.com/gtank/blake2s"
	"github.com/pkg/errors"
)

// Checksum computes a BLAKE2s-256 digest over the table's raw packed bytes
// and returns it hex-encoded. It is a diagnostic convenience logged by the
// CLI (by `cornergen generate --checksum` and always by `cornergen verify`,
// which reports it without comparing it to anything); it is never part of
// the persisted file format, which stays exactly TotalBytes raw bytes.
func Checksum(t *Table) (string, error) {
	d, err := blake2s.NewDigest(nil, nil, nil, blake2s.MaxOutput)
	if err != nil {
		return "", errors.Wrap(err, "corner: checksum: init")
	}
	if _, err := d.Write(t.bytes); err != nil {
		return "", errors.Wrap(err, "corner: checksum: write")
	}
	return hex.EncodeToString(d.Sum(nil)), nil
}
