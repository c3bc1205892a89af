package mergebuf

// ring tracks slot occupancy with two monotonic pointers wrapped
// modulo 2*capacity. The extra bit of pointer range is what tells a
// full buffer from an empty one when both pointers land on the same
// physical index, so occupancy needs no separate counter.
type ring struct {
	capacity uint32
	wrap     uint32 // 2*capacity, power of two
	alloc    uint32 // next index to hand out
	release  uint32 // next index to retire
}

func newRing(capacity uint32) ring {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		panic("mergebuf: capacity must be a power of two")
	}
	return ring{capacity: capacity, wrap: capacity * 2}
}

// outstanding counts slots allocated and not yet released.
func (r *ring) outstanding() uint32 {
	return (r.alloc - r.release) & (r.wrap - 1)
}

// index maps a pointer value to its physical slot.
func (r *ring) index(ptr uint32) uint32 {
	return ptr & (r.capacity - 1)
}

// grants fills g with allocation offers starting at the alloc pointer.
// Offer i is valid iff accepting offers 0..i keeps occupancy within
// capacity. Acceptance must be a contiguous prefix starting at 0;
// the pointer bookkeeping silently breaks otherwise.
func (r *ring) grants(g []Grant) {
	used := r.outstanding()
	for i := range g {
		g[i] = Grant{
			Index: r.index(r.alloc + uint32(i)),
			Valid: used+uint32(i) < r.capacity,
		}
	}
}

func (r *ring) commitAlloc(n uint32) {
	r.alloc = (r.alloc + n) & (r.wrap - 1)
}

func (r *ring) commitRelease(n uint32) {
	r.release = (r.release + n) & (r.wrap - 1)
}

func (r *ring) full() bool {
	return r.outstanding() == r.capacity
}
