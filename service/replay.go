package service

import (
	"encoding/json"
	"fmt"
	"log"

	"skuld/domain/mergebuf"
	entrywal "skuld/infra/wal/entry"
	"skuld/snapshot"
)

/*
Recover rebuilds in-memory state from the snapshot image and the
entry WAL.

IMPORTANT:
- This MUST run before accepting traffic
- The exit outbox is NOT replayed; the broadcaster drains whatever
  is still pending in it
*/

func (s *CompletionService) Recover(snapshotPath, walDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapSeq, tags, err := snapshot.Load(snapshotPath, s.buf)
	if err != nil {
		return fmt.Errorf("snapshot load: %w", err)
	}
	if tags != nil {
		if len(tags) != len(s.tags) {
			return fmt.Errorf("snapshot tags for %d slots, buffer has %d", len(tags), len(s.tags))
		}
		copy(s.tags, tags)
	}

	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= snapSeq {
			// Already inside the image.
			return nil
		}
		return s.replayRecord(rec)
	})
	if err != nil {
		return fmt.Errorf("wal replay: %w", err)
	}

	// Operations whose completing fragment was the last thing logged
	// are still waiting on a scan. Drain them here, with outbox dedup,
	// so the engine does not re-outbox an already delivered release on
	// its first tick.
	if err := s.drainReplayReleases(); err != nil {
		return fmt.Errorf("wal replay: %w", err)
	}

	// Resume sequencing AFTER replay
	if lastSeq < snapSeq {
		lastSeq = snapSeq
	}
	s.seqGen.Reset(lastSeq)

	log.Printf("[replay] recovery completed (last seq = %d)", lastSeq)
	return nil
}

// replayRecord re-applies one logged command. Commands were valid
// when logged, so a rejected step here means the log and the image
// have diverged.
func (s *CompletionService) replayRecord(rec *entrywal.Record) error {
	switch rec.Type {
	case entrywal.RecordSubmit:
		sub, err := entrywal.DecodeSubmit(rec.Data)
		if err != nil {
			return err
		}
		// The log holds only commands, not the idle ticks between
		// them. A submit logged right after such a tick freed its
		// slot finds the buffer still full here; releases the live
		// engine had already scanned out are pending ones now.
		for !s.buf.Grants()[0].Valid {
			out, err := s.buf.Step(mergebuf.StepInput{})
			if err != nil {
				return err
			}
			if len(out.Released) == 0 {
				return fmt.Errorf("replay diverged: seq %d allocated with a full buffer", rec.Seq)
			}
			s.replayReleases(out.Released)
		}
		out, err := s.buf.Step(mergebuf.StepInput{Allocs: 1})
		if err != nil {
			return err
		}
		if len(out.Allocated) != 1 || out.Allocated[0] != sub.Slot {
			return fmt.Errorf("replay diverged: seq %d allocated %v, logged slot %d",
				rec.Seq, out.Allocated, sub.Slot)
		}
		s.tags[sub.Slot] = rec.Seq
		s.replayReleases(out.Released)

	case entrywal.RecordFragment:
		frag, err := entrywal.DecodeFragment(rec.Data)
		if err != nil {
			return err
		}
		out, err := s.buf.Step(mergebuf.StepInput{Fragments: []mergebuf.Fragment{
			{Index: frag.Slot, Mask: mergebuf.LaneMask(frag.Mask), Owner: frag.Owner},
		}})
		if err != nil {
			return err
		}
		s.replayReleases(out.Released)

	case entrywal.RecordCancel:
		cl, err := entrywal.DecodeCancel(rec.Data)
		if err != nil {
			return err
		}
		// Same empty-fragment pairing the live Cancel path uses.
		out, err := s.buf.Step(mergebuf.StepInput{
			Fragments: []mergebuf.Fragment{{Index: cl.Slot, Mask: 0, Owner: cl.Owner}},
			Cancels:   []mergebuf.Cancel{{Index: cl.Slot, Owner: cl.Owner}},
		})
		if err != nil {
			return err
		}
		s.replayReleases(out.Released)

	default:
		return fmt.Errorf("unknown record type %d at seq %d", rec.Type, rec.Seq)
	}
	return nil
}

// drainReplayReleases scans until no release is pending.
func (s *CompletionService) drainReplayReleases() error {
	for {
		out, err := s.buf.Step(mergebuf.StepInput{})
		if err != nil {
			return err
		}
		if len(out.Released) == 0 {
			return nil
		}
		s.replayReleases(out.Released)
	}
}

// replayReleases re-outboxes releases reproduced by replay. A seq
// already present in the outbox kept its pre-crash delivery state;
// overwriting it would re-publish an acked completion.
func (s *CompletionService) replayReleases(rels []mergebuf.Release) {
	for _, rel := range rels {
		seq := s.tags[rel.Index]
		if _, err := s.outbox.Get(seq); err == nil {
			continue
		}
		payload, err := json.Marshal(newCompletionEvent(rel, seq))
		if err != nil {
			log.Printf("[replay] encode completion seq=%d: %v", seq, err)
			continue
		}
		if err := s.outbox.PutNew(seq, payload); err != nil {
			log.Printf("[replay] outbox put seq=%d: %v", seq, err)
		}
	}
}
