// Package snapshot provides consistent, read-only capture of the
// in-memory completion state. It defines lightweight readers that
// enter and exit read epochs safely, ensuring observers walking
// recent completions during concurrent stepping see consistent
// records, and persists merge-buffer images for crash recovery.
//
// Snapshot is intentionally decoupled from merging, write-ahead
// logging, and the outbox. It only coordinates read visibility
// using the memory epoch model and the on-disk image format.
package snapshot
