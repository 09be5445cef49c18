// Package io provides program image files and value channels for the
// Intcode emulator: sequential tapes over readers and writers, and
// in-memory buffers.
package io

import (
	"iter"
)

// Channel defines the interface for all value channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields values from the channel.
	Receive() iter.Seq[int64]
	// Send writes a single value to the channel.
	Send(value int64) error
}
