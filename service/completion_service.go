package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"skuld/domain/mergebuf"
	"skuld/infra/kafka"
	"skuld/infra/memory"
	"skuld/infra/sequence"
	entrywal "skuld/infra/wal/entry"
	exitwal "skuld/infra/wal/exit"
	"skuld/snapshot"
)

/*
CompletionService is the ONLY write entry point into the system.

All coordination between:
- domain (mergebuf)
- infra (memory, sequence, wal, kafka)
- snapshot
happens here. Every externally triggered transition runs as exactly
one step transaction under the engine mutex.
*/

// ErrFull is the backpressure signal: no allocation grant is valid.
var ErrFull = errors.New("service: merge buffer full")

// ErrBacklog refuses a fragment when the staging ring is full; the
// consumer holds its offset and retries.
var ErrBacklog = errors.New("service: fragment staging backlog full")

const recentCap = 1024

type CompletionService struct {
	mu sync.Mutex

	buf      *mergebuf.Buffer
	pool     *memory.Pool[CompletionRecord]
	retired  *memory.Ring
	staging  *memory.Ring
	reader   *snapshot.Reader
	seqGen   *sequence.Sequencer
	entryWAL *entrywal.WAL
	outbox   *exitwal.Outbox

	fragPool *memory.Pool[fragmentRecord]

	// tags holds the issued owner tag per slot. It is authoritative
	// for boundary validation: the buffer's own owner field lags one
	// fragment behind after every reallocation.
	tags []uint64

	// deferred holds fragments whose WAL append failed; they retry
	// ahead of freshly staged ones on the next tick.
	deferred []fragmentRecord

	recent     []*CompletionRecord
	recentNext int
}

// NewCompletionService wires all dependencies.
// No globals. No magic.
func NewCompletionService(
	buf *mergebuf.Buffer,
	pool *memory.Pool[CompletionRecord],
	retired *memory.Ring,
	staging *memory.Ring,
	reader *snapshot.Reader,
	seqGen *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	outbox *exitwal.Outbox,
) *CompletionService {
	return &CompletionService{
		buf:      buf,
		pool:     pool,
		retired:  retired,
		staging:  staging,
		reader:   reader,
		seqGen:   seqGen,
		entryWAL: entryWAL,
		outbox:   outbox,
		fragPool: memory.NewPool(func() *fragmentRecord { return &fragmentRecord{} }),
		tags:     make([]uint64, buf.Capacity()),
		recent:   make([]*CompletionRecord, recentCap),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Submit admits one operation. It returns the issued seq, which is
// the owner tag its fragments must carry, and the granted slot.
func (s *CompletionService) Submit(clientID uint64) (uint64, uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grants := s.buf.Grants()
	if len(grants) == 0 || !grants[0].Valid {
		return 0, 0, ErrFull
	}
	slot := grants[0].Index
	seq := s.seqGen.Next()

	rec := entrywal.NewRecord(
		entrywal.RecordSubmit,
		seq,
		entrywal.Submit{Client: clientID, Slot: slot}.Encode(),
	)
	if err := s.entryWAL.Append(rec); err != nil {
		return 0, 0, err
	}

	out, err := s.buf.Step(mergebuf.StepInput{Allocs: 1})
	if err != nil {
		return 0, 0, err
	}
	s.tags[slot] = seq
	s.applyReleases(out.Released)
	return seq, slot, nil
}

// Report merges one fragment directly, the gRPC path. It returns
// false when the fragment is stale: redelivery after release is
// normal traffic, not an invariant violation.
func (s *CompletionService) Report(slot uint32, mask, owner uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.liveLocked(slot, owner) {
		log.Printf("[service] dropping stale fragment slot=%d owner=%d", slot, owner)
		return false, nil
	}

	rec := entrywal.NewRecord(
		entrywal.RecordFragment,
		s.seqGen.Next(),
		entrywal.Fragment{Slot: slot, Mask: mask, Owner: owner}.Encode(),
	)
	if err := s.entryWAL.Append(rec); err != nil {
		return false, err
	}

	out, err := s.buf.Step(mergebuf.StepInput{Fragments: []mergebuf.Fragment{
		{Index: slot, Mask: mergebuf.LaneMask(mask), Owner: owner},
	}})
	if err != nil {
		return false, err
	}
	s.applyReleases(out.Released)
	return true, nil
}

// Cancel drains the operation without waiting for its remaining
// lanes. The release still happens in order and carries Cancelled.
func (s *CompletionService) Cancel(slot uint32, owner uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.liveLocked(slot, owner) {
		log.Printf("[service] dropping stale cancel slot=%d owner=%d", slot, owner)
		return false, nil
	}

	rec := entrywal.NewRecord(
		entrywal.RecordCancel,
		s.seqGen.Next(),
		entrywal.Cancel{Slot: slot, Owner: owner}.Encode(),
	)
	if err := s.entryWAL.Append(rec); err != nil {
		return false, err
	}

	// The empty fragment establishes the owner tag first: a freshly
	// granted slot still carries its previous occupant's tag until a
	// fragment adopts the new one, and the cancel matches on it.
	out, err := s.buf.Step(mergebuf.StepInput{
		Fragments: []mergebuf.Fragment{{Index: slot, Mask: 0, Owner: owner}},
		Cancels:   []mergebuf.Cancel{{Index: slot, Owner: owner}},
	})
	if err != nil {
		return false, err
	}
	s.applyReleases(out.Released)
	return true, nil
}

// EnqueueFragment stages a decoded fragment event for the engine
// loop, the Kafka path. It never blocks.
func (s *CompletionService) EnqueueFragment(ev kafka.FragmentEvent) error {
	rec := s.fragPool.Get()
	rec.Slot, rec.Mask, rec.Owner = ev.Slot, ev.Mask, ev.Seq
	if !s.staging.Enqueue(rec) {
		s.fragPool.Put(rec)
		return ErrBacklog
	}
	return nil
}

//
// ──────────────────────────────────────────────────────────
// Engine loop
// ──────────────────────────────────────────────────────────
//

// Run drives the engine until ctx is cancelled. Each tick drains
// staged fragments into step transactions; the empty step on an idle
// tick still runs the release scan, which is what moves operations
// completed by the previous step out of the buffer.
func (s *CompletionService) Run(ctx context.Context, tick time.Duration) error {
	t := time.NewTicker(tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			for s.tickOnce() {
			}
		}
	}
}

// tickOnce runs one step transaction and reports whether staged
// backlog remains.
func (s *CompletionService) tickOnce() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	width := s.buf.Config().MergeWidth
	var frags []mergebuf.Fragment

	for len(frags) < width {
		fr, ok := s.popFragment()
		if !ok {
			break
		}
		if !s.liveLocked(fr.Slot, fr.Owner) {
			log.Printf("[service] dropping stale fragment slot=%d owner=%d", fr.Slot, fr.Owner)
			continue
		}

		rec := entrywal.NewRecord(
			entrywal.RecordFragment,
			s.seqGen.Next(),
			entrywal.Fragment{Slot: fr.Slot, Mask: fr.Mask, Owner: fr.Owner}.Encode(),
		)
		if err := s.entryWAL.Append(rec); err != nil {
			log.Printf("[service] WAL append failed, deferring fragment: %v", err)
			s.deferred = append(s.deferred, fr)
			break
		}

		frags = append(frags, mergebuf.Fragment{
			Index: fr.Slot,
			Mask:  mergebuf.LaneMask(fr.Mask),
			Owner: fr.Owner,
		})
	}

	out, err := s.buf.Step(mergebuf.StepInput{Fragments: frags})
	if err != nil {
		// The batch was validated against the same locked state the
		// step sees, so this path is a programming error.
		log.Printf("[service] step rejected fragment batch: %v", err)
		return false
	}
	s.applyReleases(out.Released)

	return s.staging.Len() > 0
}

// popFragment takes the next fragment to merge: deferred retries
// first, then the staging ring. Only the engine touches deferred.
func (s *CompletionService) popFragment() (fragmentRecord, bool) {
	if len(s.deferred) > 0 {
		fr := s.deferred[0]
		s.deferred = s.deferred[1:]
		if len(s.deferred) == 0 {
			s.deferred = nil
		}
		return fr, true
	}
	v := s.staging.Dequeue()
	if v == nil {
		return fragmentRecord{}, false
	}
	rec := v.(*fragmentRecord)
	fr := *rec
	s.fragPool.Put(rec)
	return fr, true
}

// liveLocked reports whether slot currently hosts owner.
func (s *CompletionService) liveLocked(slot uint32, owner uint64) bool {
	if int(slot) >= len(s.tags) {
		return false
	}
	if _, ok := s.buf.ValidOwner(slot); !ok {
		return false
	}
	return s.tags[slot] == owner
}

// applyReleases makes every release durable in the outbox, then
// publishes it on the recent-completions surface. Releases are
// identified by the issued tag for the slot, which outlives the
// buffer's possibly stale owner field.
func (s *CompletionService) applyReleases(rels []mergebuf.Release) {
	for _, rel := range rels {
		seq := s.tags[rel.Index]
		payload, err := json.Marshal(newCompletionEvent(rel, seq))
		if err != nil {
			log.Printf("[service] encode completion seq=%d: %v", seq, err)
			continue
		}
		if err := s.outbox.PutNew(seq, payload); err != nil {
			log.Printf("[service] outbox put seq=%d: %v", seq, err)
		}

		rec := s.pool.Get()
		*rec = CompletionRecord{
			Seq:       seq,
			Slot:      rel.Index,
			Mask:      uint64(rel.Mask),
			Cancelled: rel.Cancelled,
			Released:  time.Now().UnixNano(),
		}
		s.publishRecent(rec)
	}
}

func (s *CompletionService) publishRecent(rec *CompletionRecord) {
	if old := s.recent[s.recentNext]; old != nil {
		_ = s.retired.Enqueue(old)
	}
	s.recent[s.recentNext] = rec
	s.recentNext = (s.recentNext + 1) % len(s.recent)
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Recent returns the latest completions, oldest first. Values are
// copied out under a reader epoch so reclamation cannot hand a
// record back to the pool mid-read.
func (s *CompletionService) Recent() []CompletionRecord {
	s.reader.Begin()
	defer s.reader.End()
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CompletionRecord, 0, len(s.recent))
	for i := 0; i < len(s.recent); i++ {
		idx := (s.recentNext + i) % len(s.recent)
		if rec := s.recent[idx]; rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}

// SnapshotState captures the engine image handed to snapshot writes
// and the gRPC snapshot query.
func (s *CompletionService) SnapshotState() (uint64, mergebuf.State, []uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make([]uint64, len(s.tags))
	copy(tags, s.tags)
	return s.seqGen.Current(), s.buf.State(), tags
}

// Outstanding reports how many operations occupy slots right now.
func (s *CompletionService) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Outstanding()
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation.
// Intended to be called periodically by a background job.
func (s *CompletionService) AdvanceEpoch() {
	memory.AdvanceEpochAndReclaim(
		s.retired,
		s.pool, // satisfies ReclaimablePool via PutAny
		s.reader.Epoch(),
	)
}
