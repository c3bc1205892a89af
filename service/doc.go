// Package service orchestrates the core components of the
// completion engine — merge buffer, snapshot, WALs, and memory.
//
// It provides a clean API for submitting, reporting, and
// cancelling operations, decoupled from network transports
// like gRPC and Kafka.
package service
