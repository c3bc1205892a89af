package service

import "skuld/domain/mergebuf"

// CompletionEvent is the wire form of one release. It is written to
// the outbox inside the step that released the operation and shipped
// by the broadcaster; consumers dedup on Seq.
type CompletionEvent struct {
	V         int    `json:"v"`
	Type      string `json:"type"`
	Seq       uint64 `json:"seq"`
	Slot      uint32 `json:"slot"`
	Cancelled bool   `json:"cancelled"`
}

const completionEventVersion = 1

// newCompletionEvent identifies the release by the issued tag, not
// rel.Owner: an operation completed by a single full-mask fragment
// never adopts its tag into the slot (owner stays whatever the
// previous occupant left), so the buffer's view can be stale.
func newCompletionEvent(rel mergebuf.Release, seq uint64) CompletionEvent {
	return CompletionEvent{
		V:         completionEventVersion,
		Type:      "completion",
		Seq:       seq,
		Slot:      rel.Index,
		Cancelled: rel.Cancelled,
	}
}

// CompletionRecord is the retained, pooled form of one release on
// the recent-completions surface. Records are immutable once
// published and recycled through the retire ring.
type CompletionRecord struct {
	Seq       uint64
	Slot      uint32
	Mask      uint64
	Cancelled bool
	Released  int64
}

// fragmentRecord is the pooled staging form of one fragment event
// between the ingest consumer and the engine loop.
type fragmentRecord struct {
	Slot  uint32
	Mask  uint64
	Owner uint64
}
