package io

import (
	"iter"
)

// Buffer is an in-memory FIFO of values.
// Data keeps every value sent, received or not, so Rewind can replay them.
type Buffer struct {
	Capacity int // Maximum unread values, unlimited if zero. Read values do not count.

	ReadIndex int
	Data      []int64
}

var _ Channel = (*Buffer)(nil)

// Rewind moves the read position back to the first value sent.
func (buf *Buffer) Rewind() {
	buf.ReadIndex = 0
}

// Len returns the number of values not yet received.
func (buf *Buffer) Len() int {
	return len(buf.Data) - buf.ReadIndex
}

// Receive returns an iterator that yields values from the buffer until empty.
func (buf *Buffer) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for buf.ReadIndex < len(buf.Data) {
			value := buf.Data[buf.ReadIndex]
			buf.ReadIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send appends a value to the buffer.
// Returns ErrChannelFull if Capacity values are already unread.
func (buf *Buffer) Send(value int64) (err error) {
	if buf.Capacity > 0 && buf.Len() >= buf.Capacity {
		err = ErrChannelFull
		return
	}

	buf.Data = append(buf.Data, value)

	return
}
