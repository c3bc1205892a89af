package entry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	// --- write phase ---
	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}

	const n = 100
	for i := 1; i <= n; i++ {
		data := Fragment{Slot: uint32(i % 64), Mask: 0x0F, Owner: uint64(i)}.Encode()
		if err := w.Append(NewRecord(RecordFragment, uint64(i), data)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// --- replay phase ---
	count := 0
	last, err := Replay(dir, func(r *Record) error {
		if r.Type != RecordFragment {
			t.Fatalf("unexpected record type: %v", r.Type)
		}
		f, err := DecodeFragment(r.Data)
		if err != nil {
			return err
		}
		if f.Owner != r.Seq {
			t.Fatalf("payload owner %d does not match seq %d", f.Owner, r.Seq)
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != n || last != n {
		t.Fatalf("expected %d records ending at %d, got %d ending at %d", n, n, count, last)
	}
}

func TestRotationAndResume(t *testing.T) {
	dir := t.TempDir()

	// Tiny segments force a rotation every append.
	w, err := Open(Config{Dir: dir, SegmentSize: 16})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if err := w.Append(NewRecord(RecordCancel, uint64(i), Cancel{Slot: 0, Owner: uint64(i)}.Encode())); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = w.Close()

	files, _ := os.ReadDir(dir)
	if len(files) < 3 {
		t.Fatalf("expected rotated segments, found %d files", len(files))
	}

	// Reopen appends to the newest segment, not segment 0.
	w2, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := w2.Append(NewRecord(RecordCancel, 4, Cancel{Slot: 1, Owner: 4}.Encode())); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	_ = w2.Close()

	last, err := Replay(dir, func(*Record) error { return nil })
	if err != nil {
		t.Fatalf("replay after reopen: %v", err)
	}
	if last != 4 {
		t.Fatalf("expected last seq 4, got %d", last)
	}
}

func TestReplayDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Append(NewRecord(RecordSubmit, 1, Submit{Client: 9, Slot: 0}.Encode()))
	_ = w.Close()

	path := filepath.Join(dir, "segment-000000.wal")
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	// flip payload bytes to break the CRC
	_, _ = f.WriteAt([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 21)
	f.Close()

	if _, err := Replay(dir, func(*Record) error { return nil }); err == nil {
		t.Fatal("expected crc mismatch, got nil")
	}
}

func TestReplaySkipsTornTail(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Append(NewRecord(RecordSubmit, 1, Submit{Client: 9, Slot: 0}.Encode()))
	_ = w.Append(NewRecord(RecordSubmit, 2, Submit{Client: 9, Slot: 1}.Encode()))
	_ = w.Close()

	// Cut the last frame in half, as a crash mid-write would.
	path := filepath.Join(dir, "segment-000000.wal")
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Truncate(path, st.Size()-10); err != nil {
		t.Fatal(err)
	}

	count := 0
	last, err := Replay(dir, func(*Record) error { count++; return nil })
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != 1 || last != 1 {
		t.Fatalf("expected 1 whole record, got %d ending at %d", count, last)
	}
}

func TestReplayRejectsNonMonotonicSeq(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Append(NewRecord(RecordSubmit, 5, Submit{Client: 1, Slot: 0}.Encode()))
	_ = w.Append(NewRecord(RecordSubmit, 5, Submit{Client: 1, Slot: 1}.Encode()))
	_ = w.Close()

	if _, err := Replay(dir, func(*Record) error { return nil }); err == nil {
		t.Fatal("expected non-monotonic seq error, got nil")
	}
}

func TestTruncateBeforeKeepsActiveSegment(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(Config{Dir: dir, SegmentSize: 16})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 4; i++ {
		_ = w.Append(NewRecord(RecordCancel, uint64(i), Cancel{Slot: 0, Owner: uint64(i)}.Encode()))
	}

	if err := w.TruncateBefore(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	// Everything at seq <= 3 is gone; seq 4 must survive.
	count := 0
	last, err := Replay(dir, func(*Record) error { count++; return nil })
	if err != nil {
		t.Fatalf("replay after truncate: %v", err)
	}
	if last != 4 {
		t.Fatalf("expected surviving seq 4, got %d", last)
	}
	if count != 1 {
		t.Fatalf("expected 1 surviving record, got %d", count)
	}
	_ = w.Close()
}

func TestPayloadCodecs(t *testing.T) {
	s, err := DecodeSubmit(Submit{Client: 7, Slot: 63}.Encode())
	if err != nil || s.Client != 7 || s.Slot != 63 {
		t.Fatalf("submit roundtrip: %+v err=%v", s, err)
	}
	f, err := DecodeFragment(Fragment{Slot: 12, Mask: 0xA5, Owner: 900}.Encode())
	if err != nil || f.Slot != 12 || f.Mask != 0xA5 || f.Owner != 900 {
		t.Fatalf("fragment roundtrip: %+v err=%v", f, err)
	}
	c, err := DecodeCancel(Cancel{Slot: 3, Owner: 44}.Encode())
	if err != nil || c.Slot != 3 || c.Owner != 44 {
		t.Fatalf("cancel roundtrip: %+v err=%v", c, err)
	}
	if _, err := DecodeFragment([]byte{1, 2}); err == nil {
		t.Fatal("expected short payload error")
	}
}
