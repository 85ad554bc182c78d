package dynarray

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// Arrays of different lengths are never equal. Capacity is ignored.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Array[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically by their elements. The result is
// 0 if a == b, -1 if a < b and +1 if a > b. A proper prefix sorts first.
func Compare[T constraints.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T any](a, b *Array[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports whether a sorts before b.
func Less[T constraints.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a sorts before b or equals it.
func LessOrEqual[T constraints.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts after b.
func Greater[T constraints.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a sorts after b or equals it.
func GreaterOrEqual[T constraints.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) >= 0
}
