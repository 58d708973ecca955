// Package internal holds helpers shared by the radix packages.
package internal

import (
	"iter"
)

// Pair is a key and its value, for sequences with a fixed order.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// IterPairs yields the pairs in slice order.
func IterPairs[K any, V any](pairs []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, pair := range pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// IterSeqConcat yields every value of each sequence in turn.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for value := range seq {
				if !yield(value) {
					return
				}
			}
		}
	}
}

// IterSeq2Concat yields every pair of each sequence in turn.
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
