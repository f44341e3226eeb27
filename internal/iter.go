package internal

import (
	"iter"
)

// IterSeq2Concat concatenates key/value iterators. Later sequences may repeat
// keys of earlier ones; every pair is yielded in order.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
