package snapshot

import (
	"encoding/gob"
	"fmt"
	"os"

	"skuld/domain/mergebuf"
)

// Load restores the buffer from the image at path and returns the
// seq it was captured at plus the issued-tag table. A missing image
// is a fresh start, not an error; WAL replay begins at zero.
func Load(path string, buf *mergebuf.Buffer) (uint64, []uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, nil, err
	}

	if len(s.Tags) != len(s.Slots) {
		return 0, nil, fmt.Errorf("snapshot: %d tags for %d slots", len(s.Tags), len(s.Slots))
	}
	if err := buf.Restore(s.state()); err != nil {
		return 0, nil, err
	}

	return s.Seq, s.Tags, nil
}
