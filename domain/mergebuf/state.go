package mergebuf

// State is a copyable image of the whole buffer: both pointers and
// every slot. Snapshots persist it; boot restores it.
type State struct {
	Alloc   uint32
	Release uint32
	Slots   []Slot
}

// State captures the buffer as one consistent image.
func (b *Buffer) State() State {
	st := State{
		Alloc:   b.ring.alloc,
		Release: b.ring.release,
		Slots:   make([]Slot, len(b.slots)),
	}
	copy(st.Slots, b.slots)
	return st
}

// Restore overwrites the buffer with a previously captured image.
// The image must come from a buffer of the same capacity and must
// keep occupancy within capacity.
func (b *Buffer) Restore(st State) error {
	if len(st.Slots) != len(b.slots) {
		return invariant("restore", "image has %d slots, buffer has %d", len(st.Slots), len(b.slots))
	}
	alloc := st.Alloc & (b.ring.wrap - 1)
	release := st.Release & (b.ring.wrap - 1)
	if used := (alloc - release) & (b.ring.wrap - 1); used > b.ring.capacity {
		return invariant("restore", "pointers imply %d outstanding slots, capacity is %d", used, b.ring.capacity)
	}
	b.ring.alloc = alloc
	b.ring.release = release
	copy(b.slots, st.Slots)
	return nil
}
