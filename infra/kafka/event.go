package kafka

// FragmentEvent is the wire form of one lane's partial result.
// Seq carries the owner tag of the operation the fragment belongs
// to; a redelivered or late event is dropped at the service
// boundary when the tag no longer matches the slot.
type FragmentEvent struct {
	V    int    `json:"v"`
	Slot uint32 `json:"slot"`
	Mask uint64 `json:"mask"`
	Seq  uint64 `json:"seq"`
}

const fragmentEventVersion = 1
