package snapshot

import (
	"time"

	"skuld/domain/mergebuf"
)

// Snapshot is the on-disk image of the engine: both allocator
// pointers, every slot, and the per-slot issued tags the service
// validates fragments against. Entries are flat types so the gob
// layout stays stable across refactors of the domain.
type Snapshot struct {
	Seq     uint64
	Created time.Time
	Alloc   uint32
	Release uint32
	Slots   []SlotEntry
	Tags    []uint64
}

type SlotEntry struct {
	Mask      uint64
	Owner     uint64
	Ready     bool
	Valid     bool
	Cancelled bool
}

func fromState(seq uint64, st mergebuf.State, tags []uint64) Snapshot {
	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Alloc:   st.Alloc,
		Release: st.Release,
		Slots:   make([]SlotEntry, len(st.Slots)),
		Tags:    append([]uint64(nil), tags...),
	}
	for i, sl := range st.Slots {
		s.Slots[i] = SlotEntry{
			Mask:      uint64(sl.Mask),
			Owner:     sl.Owner,
			Ready:     sl.Ready,
			Valid:     sl.Valid,
			Cancelled: sl.Cancelled,
		}
	}
	return s
}

func (s *Snapshot) state() mergebuf.State {
	st := mergebuf.State{
		Alloc:   s.Alloc,
		Release: s.Release,
		Slots:   make([]mergebuf.Slot, len(s.Slots)),
	}
	for i, e := range s.Slots {
		st.Slots[i] = mergebuf.Slot{
			Mask:      mergebuf.LaneMask(e.Mask),
			Owner:     e.Owner,
			Ready:     e.Ready,
			Valid:     e.Valid,
			Cancelled: e.Cancelled,
		}
	}
	return st
}
