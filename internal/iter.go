package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSliceDrain yields the values of a slice, removing each one as it is yielded.
func IterSliceDrain[T any](values *[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(*values) > 0 {
			val := (*values)[0]
			*values = (*values)[1:]
			if !yield(val) {
				return
			}
		}
	}
}
