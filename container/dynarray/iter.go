package dynarray

import "iter"

// All returns an iterator over index-value pairs of the live elements, in
// order. Mutating a during iteration is not supported.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements, in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last live
// element to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := a.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
