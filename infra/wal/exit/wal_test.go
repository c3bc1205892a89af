package exit

import (
	"bytes"
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestPutNewAndGet(t *testing.T) {
	o := openTestOutbox(t)

	payload := []byte(`{"seq":7}`)
	if err := o.PutNew(7, payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := o.Get(7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || rec.Retries != 0 {
		t.Errorf("fresh record: state=%v retries=%d", rec.State, rec.Retries)
	}
	if !bytes.Equal(rec.Payload, payload) {
		t.Errorf("payload mismatch: %q", rec.Payload)
	}
}

func TestStateTransitions(t *testing.T) {
	o := openTestOutbox(t)
	if err := o.PutNew(1, []byte("x")); err != nil {
		t.Fatal(err)
	}

	if err := o.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ := o.Get(1)
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Errorf("after sent: state=%v retries=%d attempt=%d", rec.State, rec.Retries, rec.LastAttempt)
	}
	if string(rec.Payload) != "x" {
		t.Errorf("payload lost across transition: %q", rec.Payload)
	}

	if err := o.MarkSent(1); err != nil {
		t.Fatal(err)
	}
	rec, _ = o.Get(1)
	if rec.Retries != 2 {
		t.Errorf("retry count not accumulated: %d", rec.Retries)
	}

	if err := o.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = o.Get(1)
	if rec.State != StateAcked {
		t.Errorf("after ack: state=%v", rec.State)
	}
}

func TestScanPendingOrderAndFilter(t *testing.T) {
	o := openTestOutbox(t)

	for seq := uint64(1); seq <= 5; seq++ {
		if err := o.PutNew(seq, []byte{byte(seq)}); err != nil {
			t.Fatal(err)
		}
	}
	// 2 acked, 4 failed: neither may come back from the scan.
	if err := o.MarkSent(2); err != nil {
		t.Fatal(err)
	}
	if err := o.MarkAcked(2); err != nil {
		t.Fatal(err)
	}
	if err := o.MarkFailed(4); err != nil {
		t.Fatal(err)
	}
	// 3 sent-but-unacked: must be rescanned.
	if err := o.MarkSent(3); err != nil {
		t.Fatal(err)
	}

	var got []uint64
	err := o.ScanPending(func(seq uint64, rec Record) error {
		got = append(got, seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []uint64{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("pending %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pending %v, want %v", got, want)
		}
	}
}

func TestTruncateAckedUpTo(t *testing.T) {
	o := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		if err := o.PutNew(seq, []byte("p")); err != nil {
			t.Fatal(err)
		}
		if err := o.MarkSent(seq); err != nil {
			t.Fatal(err)
		}
	}
	if err := o.MarkAcked(1); err != nil {
		t.Fatal(err)
	}
	if err := o.MarkAcked(2); err != nil {
		t.Fatal(err)
	}
	if err := o.MarkAcked(4); err != nil {
		t.Fatal(err)
	}

	if err := o.TruncateAckedUpTo(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := o.Get(1); err == nil {
		t.Error("seq 1 should be truncated")
	}
	if _, err := o.Get(2); err == nil {
		t.Error("seq 2 should be truncated")
	}
	if _, err := o.Get(3); err != nil {
		t.Error("seq 3 is unacked and must survive")
	}
	if _, err := o.Get(4); err != nil {
		t.Error("seq 4 is beyond the truncation point and must survive")
	}
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	o, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := o.PutNew(9, []byte("durable")); err != nil {
		t.Fatal(err)
	}
	if err := o.Close(); err != nil {
		t.Fatal(err)
	}

	o2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer o2.Close()

	rec, err := o2.Get(9)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if rec.State != StateNew || string(rec.Payload) != "durable" {
		t.Errorf("record after reopen: state=%v payload=%q", rec.State, rec.Payload)
	}
}

func TestRecordCodecRejectsGarbage(t *testing.T) {
	if _, err := decodeRecord([]byte{1, 2, 3}); err == nil {
		t.Error("expected length error")
	}
	b := encodeRecord(Record{State: StateSent, Retries: 3, Payload: []byte("abc")})
	if _, err := decodeRecord(b[:len(b)-1]); err == nil {
		t.Error("expected payload length mismatch")
	}
	rec, err := decodeRecord(b)
	if err != nil || rec.State != StateSent || rec.Retries != 3 || string(rec.Payload) != "abc" {
		t.Errorf("roundtrip: %+v err=%v", rec, err)
	}
}
