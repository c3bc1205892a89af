package mergebuf

import "fmt"

// Config sizes the buffer and its per-step ports.
type Config struct {
	Capacity     int // slots, power of two
	Lanes        int // fragments per operation, at most 64
	AllocWidth   int // allocation grants offered per step
	MergeWidth   int // fragment merges (and cancels) accepted per step
	ReleaseWidth int // release scan window
}

func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = 64
	}
	if c.Lanes == 0 {
		c.Lanes = 8
	}
	if c.AllocWidth == 0 {
		c.AllocWidth = 4
	}
	if c.MergeWidth == 0 {
		c.MergeWidth = 4
	}
	if c.ReleaseWidth == 0 {
		c.ReleaseWidth = 4
	}
	return c
}

// Grant is one allocation offer: the physical index the next accepted
// operation would occupy, and whether accepting it keeps the buffer
// within capacity.
type Grant struct {
	Index uint32
	Valid bool
}

// Fragment is one partial-completion report for the operation
// occupying Index.
type Fragment struct {
	Index uint32
	Mask  LaneMask
	Owner uint64
}

// Cancel asks the buffer to drain the operation occupying Index
// without waiting for its remaining lanes.
type Cancel struct {
	Index uint32
	Owner uint64
}

// Release notifies the consumer that the operation owning a slot has
// left the buffer. Mask is the lane set gathered by then; a cancelled
// release carries whatever partial mask the drain interrupted and
// exists only to keep the FIFO moving.
type Release struct {
	Index     uint32
	Owner     uint64
	Mask      LaneMask
	Cancelled bool
}

// StepInput is the batch of port activity applied by one Step.
// Allocs accepts that many grants, as a prefix of Grants().
type StepInput struct {
	Allocs    int
	Fragments []Fragment
	Cancels   []Cancel
}

// StepOutput reports what one Step did.
type StepOutput struct {
	Allocated []uint32
	Released  []Release
	Full      bool
}

// InvariantError reports a caller-contract violation. The Step that
// returned it has not touched any state.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return "mergebuf: " + e.Op + ": " + e.Detail
}

func invariant(op, format string, args ...any) error {
	return &InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// Buffer is the completion merge buffer. It owns its slot array
// exclusively; nothing outside this package mutates slots.
type Buffer struct {
	cfg      Config
	ring     ring
	slots    []Slot
	fullMask LaneMask
}

// New builds an empty buffer. Capacity must be a power of two and
// Lanes must fit a 64-bit mask; both are constructor contracts.
func New(cfg Config) *Buffer {
	cfg = cfg.withDefaults()
	if cfg.Lanes < 1 || cfg.Lanes > 64 {
		panic("mergebuf: lanes must be in 1..64")
	}
	return &Buffer{
		cfg:      cfg,
		ring:     newRing(uint32(cfg.Capacity)),
		slots:    make([]Slot, cfg.Capacity),
		fullMask: LaneMask(1)<<cfg.Lanes - 1,
	}
}

// Config returns the effective configuration.
func (b *Buffer) Config() Config { return b.cfg }

// Grants offers up to AllocWidth allocation candidates. Offers must be
// accepted as a contiguous prefix via StepInput.Allocs.
func (b *Buffer) Grants() []Grant {
	g := make([]Grant, b.cfg.AllocWidth)
	b.ring.grants(g)
	return g
}

// Full reports backpressure: no grant is currently valid.
func (b *Buffer) Full() bool { return b.ring.full() }

// Outstanding counts operations allocated and not yet released.
func (b *Buffer) Outstanding() int { return int(b.ring.outstanding()) }

// Capacity returns the slot count.
func (b *Buffer) Capacity() int { return b.cfg.Capacity }

// ValidOwner returns the owner tag occupying idx while the slot is
// live. Boundary code uses it to drop stale or duplicate fragments
// before they reach Step as invariant violations.
func (b *Buffer) ValidOwner(idx uint32) (uint64, bool) {
	if idx >= uint32(len(b.slots)) || !b.slots[idx].Valid {
		return 0, false
	}
	return b.slots[idx].Owner, true
}

// Step validates in against the current state, then commits it as one
// transaction. The release scan runs first and sees only what earlier
// steps wrote: an operation completed by a merge in this step is
// released by the scan of the next one. After the scan come the
// allocation resets, then merges, then cancels. A fragment targeting
// an index allocated in the same step therefore lands on the freshly
// cleared slot and establishes its owner tag.
//
// Fragment validity is likewise judged against the start-of-step
// state: a fragment may race the scan that releases its slot, in
// which case the merge lands on the dead slot and the next allocation
// erases it.
//
// On any violation the buffer is left exactly as it was.
func (b *Buffer) Step(in StepInput) (StepOutput, error) {
	if err := b.validate(in); err != nil {
		return StepOutput{}, err
	}

	var out StepOutput
	out.Released = b.releaseScan()

	if in.Allocs > 0 {
		out.Allocated = make([]uint32, 0, in.Allocs)
		for i := 0; i < in.Allocs; i++ {
			idx := b.ring.index(b.ring.alloc + uint32(i))
			s := &b.slots[idx]
			s.Mask = 0
			s.Ready = false
			s.Cancelled = false
			s.Valid = true
			// Owner stays stale until the first fragment adopts it.
			out.Allocated = append(out.Allocated, idx)
		}
		b.ring.commitAlloc(uint32(in.Allocs))
	}

	for _, f := range in.Fragments {
		b.merge(f)
	}

	for _, c := range in.Cancels {
		s := &b.slots[c.Index]
		if s.Owner != c.Owner {
			continue // operation already left the slot
		}
		s.Ready = true
		s.Cancelled = true
	}

	out.Full = b.ring.full()
	return out, nil
}

// validate checks every input against the pre-step snapshot so that a
// failed Step mutates nothing. Indexes being allocated this step count
// as live targets for same-step fragments.
func (b *Buffer) validate(in StepInput) error {
	if in.Allocs < 0 || in.Allocs > b.cfg.AllocWidth {
		return invariant("alloc", "accepted %d grants, width is %d", in.Allocs, b.cfg.AllocWidth)
	}
	if free := uint32(b.cfg.Capacity) - b.ring.outstanding(); uint32(in.Allocs) > free {
		return invariant("alloc", "accepted %d grants with %d free slots", in.Allocs, free)
	}
	if len(in.Fragments) > b.cfg.MergeWidth {
		return invariant("merge", "%d fragments, width is %d", len(in.Fragments), b.cfg.MergeWidth)
	}
	if len(in.Cancels) > b.cfg.MergeWidth {
		return invariant("cancel", "%d cancels, width is %d", len(in.Cancels), b.cfg.MergeWidth)
	}

	allocated := func(idx uint32) bool {
		for i := 0; i < in.Allocs; i++ {
			if b.ring.index(b.ring.alloc+uint32(i)) == idx {
				return true
			}
		}
		return false
	}
	for _, f := range in.Fragments {
		if f.Index >= uint32(b.cfg.Capacity) {
			return invariant("merge", "index %d out of range", f.Index)
		}
		if f.Mask&^b.fullMask != 0 {
			return invariant("merge", "mask %#x wider than %d lanes", uint64(f.Mask), b.cfg.Lanes)
		}
		if !b.slots[f.Index].Valid && !allocated(f.Index) {
			return invariant("merge", "slot %d is not allocated", f.Index)
		}
	}
	for _, c := range in.Cancels {
		if c.Index >= uint32(b.cfg.Capacity) {
			return invariant("cancel", "index %d out of range", c.Index)
		}
		if !b.slots[c.Index].Valid && !allocated(c.Index) {
			return invariant("cancel", "slot %d is not allocated", c.Index)
		}
	}
	return nil
}

// merge applies the three-way reconciliation rule for one fragment.
func (b *Buffer) merge(f Fragment) {
	s := &b.slots[f.Index]
	union := s.Mask | f.Mask
	switch {
	case union == b.fullMask:
		s.Mask = union
		s.Ready = true
	case f.Owner == s.Owner:
		s.Mask = union
	default:
		// First fragment after allocation: the slot still carries the
		// previous occupant's tag, so adopt the incoming one.
		s.Mask = union
		s.Owner = f.Owner
	}
}

// releaseScan retires the ready prefix of the release window, oldest
// first. A slot behind a not-ready one stays put no matter how long
// it has been ready itself.
func (b *Buffer) releaseScan() []Release {
	var out []Release
	for i := 0; i < b.cfg.ReleaseWidth; i++ {
		idx := b.ring.index(b.ring.release + uint32(i))
		s := &b.slots[idx]
		if !s.Valid || !s.Ready {
			break
		}
		out = append(out, Release{Index: idx, Owner: s.Owner, Mask: s.Mask, Cancelled: s.Cancelled})
		s.Valid = false
	}
	b.ring.commitRelease(uint32(len(out)))
	return out
}
