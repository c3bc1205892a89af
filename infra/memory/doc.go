// Package memory provides the low-level primitives for object
// reuse and safe reclamation. It includes lock-free structures
// such as Pool, Ring, and global epoch tracking used by the
// completion engine and the snapshot readers.
//
// The memory package is dependency-free and forms the foundation
// for concurrent record reuse and RCU-style epoch advancement.
package memory
