package mergebuf

import (
	"errors"
	"testing"
)

func step(t *testing.T, b *Buffer, in StepInput) StepOutput {
	t.Helper()
	out, err := b.Step(in)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	return out
}

func TestSingleSlotRoundTrip(t *testing.T) {
	b := New(Config{Capacity: 4, ReleaseWidth: 1})

	g := b.Grants()
	if !g[0].Valid || g[0].Index != 0 {
		t.Fatalf("first grant = %+v, want valid index 0", g[0])
	}
	step(t, b, StepInput{Allocs: 1})

	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0x0F, Owner: 5}}})
	if b.slots[0].Mask != 0x0F || b.slots[0].Owner != 5 {
		t.Fatalf("after low half: mask=%#x owner=%d", b.slots[0].Mask, b.slots[0].Owner)
	}

	out := step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0xF0, Owner: 5}}})
	if len(out.Released) != 0 {
		t.Fatal("release fired in the same step as the completing merge")
	}
	if b.slots[0].Mask != 0xFF || !b.slots[0].Ready {
		t.Fatalf("after high half: mask=%#x ready=%v", b.slots[0].Mask, b.slots[0].Ready)
	}

	out = step(t, b, StepInput{})
	if len(out.Released) != 1 || out.Released[0].Owner != 5 || out.Released[0].Index != 0 {
		t.Fatalf("released %+v, want owner 5 at index 0", out.Released)
	}
	if b.ring.release != 1 {
		t.Fatalf("release pointer = %d, want 1", b.ring.release)
	}
	if b.Outstanding() != 0 {
		t.Fatalf("outstanding = %d after round trip", b.Outstanding())
	}
}

func TestBackpressureWhenFull(t *testing.T) {
	b := New(Config{Capacity: 4, AllocWidth: 1})

	for i := 0; i < 4; i++ {
		g := b.Grants()
		if !g[0].Valid {
			t.Fatalf("allocation %d rejected with %d outstanding", i, b.Outstanding())
		}
		step(t, b, StepInput{Allocs: 1})
	}

	if !b.Full() {
		t.Fatal("buffer with 4 of 4 slots live should report full")
	}
	if g := b.Grants(); g[0].Valid {
		t.Fatal("full buffer still offers a valid grant")
	}

	_, err := b.Step(StepInput{Allocs: 1})
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("allocating past capacity: err=%v, want InvariantError", err)
	}
}

func TestOwnerTagAdoption(t *testing.T) {
	b := New(Config{Capacity: 4})
	step(t, b, StepInput{Allocs: 1})

	// Fresh slot, stale owner 0, first fragment carries tag 7.
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0x0F, Owner: 7}}})
	if b.slots[0].Owner != 7 || b.slots[0].Mask != 0x0F {
		t.Fatalf("adoption: owner=%d mask=%#x", b.slots[0].Owner, b.slots[0].Mask)
	}
	if b.slots[0].Ready {
		t.Fatal("half-reported slot marked ready")
	}

	// Drain and reuse the same physical slot: the stale tag 7 must be
	// displaced by the next occupant's first fragment.
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0xF0, Owner: 7}}})
	step(t, b, StepInput{}) // release owner 7
	step(t, b, StepInput{Allocs: 4}) // wraps the alloc pointer back over slot 0
	if b.slots[0].Owner != 7 {
		t.Fatal("reset should leave the stale owner in place until a fragment arrives")
	}
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0x01, Owner: 9}}})
	if b.slots[0].Owner != 9 || b.slots[0].Mask != 0x01 {
		t.Fatalf("re-adoption: owner=%d mask=%#x", b.slots[0].Owner, b.slots[0].Mask)
	}
}

func TestReadyMergeIsIdempotent(t *testing.T) {
	b := New(Config{Capacity: 4})
	step(t, b, StepInput{Allocs: 1})
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0x0F, Owner: 3}}})
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0xF0, Owner: 3}}})

	if !b.slots[0].Ready {
		t.Fatal("slot should be ready")
	}
	// Duplicate of an already-set lane changes nothing.
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0x10, Owner: 3}}})
	if b.slots[0].Mask != 0xFF || !b.slots[0].Ready || b.slots[0].Owner != 3 {
		t.Fatalf("duplicate merge disturbed the slot: %+v", b.slots[0])
	}
}

func TestStrictFIFORelease(t *testing.T) {
	b := New(Config{Capacity: 4})
	step(t, b, StepInput{Allocs: 2})

	// Second operation completes first and must wait for the head.
	step(t, b, StepInput{Fragments: []Fragment{
		{Index: 1, Mask: 0x0F, Owner: 11},
		{Index: 1, Mask: 0xF0, Owner: 11},
	}})
	out := step(t, b, StepInput{})
	if len(out.Released) != 0 {
		t.Fatalf("operation 11 released ahead of the queue head: %+v", out.Released)
	}

	step(t, b, StepInput{Fragments: []Fragment{
		{Index: 0, Mask: 0x0F, Owner: 10},
		{Index: 0, Mask: 0xF0, Owner: 10},
	}})
	out = step(t, b, StepInput{})
	if len(out.Released) != 2 {
		t.Fatalf("released %d operations, want 2", len(out.Released))
	}
	if out.Released[0].Owner != 10 || out.Released[1].Owner != 11 {
		t.Fatalf("release order %d,%d, want 10,11", out.Released[0].Owner, out.Released[1].Owner)
	}
}

func TestReleaseIsWindowPrefix(t *testing.T) {
	b := New(Config{Capacity: 8, ReleaseWidth: 4})
	step(t, b, StepInput{Allocs: 4})

	complete := func(idx uint32, owner uint64) {
		step(t, b, StepInput{Fragments: []Fragment{
			{Index: idx, Mask: 0x0F, Owner: owner},
			{Index: idx, Mask: 0xF0, Owner: owner},
		}})
	}
	complete(0, 20)
	complete(1, 21)
	complete(3, 23) // slot 2 still pending

	out := step(t, b, StepInput{})
	if len(out.Released) != 2 {
		t.Fatalf("released %d, want the ready prefix of length 2", len(out.Released))
	}
	if out.Released[0].Owner != 20 || out.Released[1].Owner != 21 {
		t.Fatalf("released %+v, want owners 20,21", out.Released)
	}
	if !b.slots[3].Valid || !b.slots[3].Ready {
		t.Fatal("slot 3 should still be buffered behind slot 2")
	}

	complete(2, 22)
	out = step(t, b, StepInput{})
	if len(out.Released) != 2 || out.Released[0].Owner != 22 || out.Released[1].Owner != 23 {
		t.Fatalf("after unblocking: released %+v, want owners 22,23", out.Released)
	}
}

func TestSameStepAllocAndMerge(t *testing.T) {
	b := New(Config{Capacity: 4})
	out := step(t, b, StepInput{
		Allocs:    1,
		Fragments: []Fragment{{Index: 0, Mask: 0x0F, Owner: 7}},
	})
	if len(out.Allocated) != 1 || out.Allocated[0] != 0 {
		t.Fatalf("allocated %v, want [0]", out.Allocated)
	}
	if b.slots[0].Mask != 0x0F || b.slots[0].Owner != 7 || !b.slots[0].Valid {
		t.Fatalf("same-step merge lost: %+v", b.slots[0])
	}
}

func TestCancelDrainsInOrder(t *testing.T) {
	b := New(Config{Capacity: 4})
	step(t, b, StepInput{Allocs: 2})
	step(t, b, StepInput{Fragments: []Fragment{
		{Index: 0, Mask: 0x01, Owner: 31},
		{Index: 1, Mask: 0x01, Owner: 32},
	}})

	step(t, b, StepInput{Cancels: []Cancel{{Index: 0, Owner: 31}}})
	out := step(t, b, StepInput{})
	if len(out.Released) != 1 {
		t.Fatalf("released %d, want the cancelled head only", len(out.Released))
	}
	if !out.Released[0].Cancelled || out.Released[0].Owner != 31 {
		t.Fatalf("released %+v, want cancelled owner 31", out.Released[0])
	}
	if !b.slots[1].Valid || b.slots[1].Ready {
		t.Fatal("cancel of slot 0 disturbed slot 1")
	}
}

func TestCancelOwnerMismatchIgnored(t *testing.T) {
	b := New(Config{Capacity: 4})
	step(t, b, StepInput{Allocs: 1})
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0x01, Owner: 41}}})

	step(t, b, StepInput{Cancels: []Cancel{{Index: 0, Owner: 99}}})
	if b.slots[0].Ready || b.slots[0].Cancelled {
		t.Fatalf("mismatched cancel took effect: %+v", b.slots[0])
	}
}

func TestMergeToUnallocatedSlotFails(t *testing.T) {
	b := New(Config{Capacity: 4})
	_, err := b.Step(StepInput{Fragments: []Fragment{{Index: 2, Mask: 0x01, Owner: 5}}})
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("err=%v, want InvariantError", err)
	}
	if b.Outstanding() != 0 {
		t.Fatal("failed step mutated the buffer")
	}
}

func TestWidthViolationsFail(t *testing.T) {
	b := New(Config{Capacity: 4, MergeWidth: 2})
	step(t, b, StepInput{Allocs: 1})

	frags := []Fragment{
		{Index: 0, Mask: 0x01, Owner: 1},
		{Index: 0, Mask: 0x02, Owner: 1},
		{Index: 0, Mask: 0x04, Owner: 1},
	}
	if _, err := b.Step(StepInput{Fragments: frags}); err == nil {
		t.Fatal("three fragments through a width-2 merge port should fail")
	}
	if _, err := b.Step(StepInput{Allocs: 5}); err == nil {
		t.Fatal("accepting more grants than the port width should fail")
	}
	if b.slots[0].Mask != 0 {
		t.Fatal("rejected step left a partial merge behind")
	}

	wide := Fragment{Index: 0, Mask: 0x1FF, Owner: 1} // nine lanes on an 8-lane buffer
	if _, err := b.Step(StepInput{Fragments: []Fragment{wide}}); err == nil {
		t.Fatal("fragment mask wider than the lane count should fail")
	}
}

func TestSlotReuseClearsEpochState(t *testing.T) {
	b := New(Config{Capacity: 4})
	step(t, b, StepInput{Allocs: 1})
	step(t, b, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0x01, Owner: 51}}})
	step(t, b, StepInput{Cancels: []Cancel{{Index: 0, Owner: 51}}})
	out := step(t, b, StepInput{})
	if len(out.Released) != 1 || !out.Released[0].Cancelled {
		t.Fatalf("cancelled drain: %+v", out.Released)
	}

	// Fill the remaining slots so the next allocation wraps back to 0.
	step(t, b, StepInput{Allocs: 3})
	step(t, b, StepInput{Allocs: 1})
	s := b.slots[0]
	if s.Mask != 0 || s.Ready || s.Cancelled || !s.Valid {
		t.Fatalf("reused slot carries prior epoch state: %+v", s)
	}
}

func TestStateRestoreRoundTrip(t *testing.T) {
	b := New(Config{Capacity: 4})
	step(t, b, StepInput{Allocs: 2})
	step(t, b, StepInput{Fragments: []Fragment{
		{Index: 0, Mask: 0x0F, Owner: 61},
		{Index: 1, Mask: 0x03, Owner: 62},
	}})

	st := b.State()
	fresh := New(Config{Capacity: 4})
	if err := fresh.Restore(st); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if fresh.Outstanding() != b.Outstanding() {
		t.Fatalf("restored outstanding %d, want %d", fresh.Outstanding(), b.Outstanding())
	}
	for i := range fresh.slots {
		if fresh.slots[i] != b.slots[i] {
			t.Fatalf("slot %d differs after restore: %+v vs %+v", i, fresh.slots[i], b.slots[i])
		}
	}

	// The restored buffer must pick up exactly where the image left off.
	step(t, fresh, StepInput{Fragments: []Fragment{{Index: 0, Mask: 0xF0, Owner: 61}}})
	out := step(t, fresh, StepInput{})
	if len(out.Released) != 1 || out.Released[0].Owner != 61 {
		t.Fatalf("released %+v after restore, want owner 61", out.Released)
	}
}

func TestRestoreRejectsCorruptImage(t *testing.T) {
	b := New(Config{Capacity: 4})

	if err := b.Restore(State{Slots: make([]Slot, 8)}); err == nil {
		t.Fatal("restore accepted an image of the wrong capacity")
	}
	bad := State{Alloc: 6, Release: 0, Slots: make([]Slot, 4)}
	if err := b.Restore(bad); err == nil {
		t.Fatal("restore accepted pointers implying occupancy beyond capacity")
	}
}
