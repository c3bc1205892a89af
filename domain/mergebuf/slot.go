package mergebuf

// LaneMask records which lanes of an operation have reported, one bit
// per lane. Bits are set-only between allocations of the same slot.
type LaneMask uint64

// Slot holds the merge state of one buffer position.
//
// After release a slot keeps its stale Mask and Owner until the next
// allocation of the same physical index overwrites them wholesale;
// only Valid says whether the contents mean anything.
type Slot struct {
	Mask      LaneMask
	Owner     uint64
	Ready     bool
	Valid     bool
	Cancelled bool
}
