package service

import (
	"context"
	"log"
	"time"

	"skuld/snapshot"
)

// StartSnapshotJob periodically persists the engine image and trims
// both logs behind it: entry WAL segments fully covered by the image
// and acked outbox records up to its seq.
func (s *CompletionService) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}

			seq, st, tags := s.SnapshotState()

			if err := w.Write(seq, st, tags); err != nil {
				log.Printf("[snapshot] write failed: %v", err)
				continue
			}

			// Truncate ENTRY WAL after snapshot
			_ = s.entryWAL.TruncateBefore(seq)

			// GC EXIT outbox (acked only)
			_ = s.outbox.TruncateAckedUpTo(seq)
		}
	}()
}
