// Package mergebuf implements the completion merge buffer: a
// fixed-capacity circular slot table that accumulates per-lane
// completion fragments for in-flight operations and releases each
// operation downstream exactly once, in strict allocation order.
//
// The buffer is deliberately dumb about what an operation is. Owner
// tags are opaque; fragments are lane bitmasks; the only promises are
// bounded occupancy, set-only mask accumulation between allocations,
// and FIFO release.
//
// All mutation flows through Step, which applies one batch of
// allocations, merges and cancels against a snapshot of the state and
// commits atomically. The buffer itself is not goroutine-safe: a host
// embedding it concurrently must wrap every Step and every read in a
// single exclusion region.
package mergebuf
