package entry

import (
	"encoding/binary"
	"fmt"
	"time"
)

type RecordType uint8

const (
	RecordSubmit RecordType = iota
	RecordFragment
	RecordCancel
)

type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

// Submit is the payload of a RecordSubmit frame. Slot is the index
// the allocator granted; replaying submits in seq order reproduces
// the same grants, so the stored index doubles as a replay check.
type Submit struct {
	Client uint64
	Slot   uint32
}

func (s Submit) Encode() []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint64(b[0:8], s.Client)
	binary.BigEndian.PutUint32(b[8:12], s.Slot)
	return b
}

func DecodeSubmit(b []byte) (Submit, error) {
	if len(b) != 12 {
		return Submit{}, fmt.Errorf("submit payload: %d bytes", len(b))
	}
	return Submit{
		Client: binary.BigEndian.Uint64(b[0:8]),
		Slot:   binary.BigEndian.Uint32(b[8:12]),
	}, nil
}

// Fragment is the payload of a RecordFragment frame.
type Fragment struct {
	Slot  uint32
	Mask  uint64
	Owner uint64
}

func (f Fragment) Encode() []byte {
	b := make([]byte, 20)
	binary.BigEndian.PutUint32(b[0:4], f.Slot)
	binary.BigEndian.PutUint64(b[4:12], f.Mask)
	binary.BigEndian.PutUint64(b[12:20], f.Owner)
	return b
}

func DecodeFragment(b []byte) (Fragment, error) {
	if len(b) != 20 {
		return Fragment{}, fmt.Errorf("fragment payload: %d bytes", len(b))
	}
	return Fragment{
		Slot:  binary.BigEndian.Uint32(b[0:4]),
		Mask:  binary.BigEndian.Uint64(b[4:12]),
		Owner: binary.BigEndian.Uint64(b[12:20]),
	}, nil
}

// Cancel is the payload of a RecordCancel frame.
type Cancel struct {
	Slot  uint32
	Owner uint64
}

func (c Cancel) Encode() []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint32(b[0:4], c.Slot)
	binary.BigEndian.PutUint64(b[4:12], c.Owner)
	return b
}

func DecodeCancel(b []byte) (Cancel, error) {
	if len(b) != 12 {
		return Cancel{}, fmt.Errorf("cancel payload: %d bytes", len(b))
	}
	return Cancel{
		Slot:  binary.BigEndian.Uint32(b[0:4]),
		Owner: binary.BigEndian.Uint64(b[4:12]),
	}, nil
}
