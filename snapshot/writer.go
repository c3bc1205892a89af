package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"skuld/domain/mergebuf"
)

type Writer struct {
	Dir string
}

// Write persists an engine image captured at seq. The image lands in
// a temp file first and is renamed over snapshot.bin, so a crash mid-
// write leaves the previous image intact.
func (w *Writer) Write(seq uint64, st mergebuf.State, tags []uint64) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	s := fromState(seq, st, tags)
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
