package buffer

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrAllocation is returned when a buffer of the requested size cannot be
// allocated.
var ErrAllocation = errors.New("buffer: allocation failed")

// maxBytes caps a single allocation. Requests above it fail with
// ErrAllocation. Smaller requests are passed to the runtime, which still
// aborts the process if the memory is not available.
const maxBytes = 1 << 40

// Buffer owns a fixed run of element slots. The zero value is an empty
// buffer with no allocation.
//
// A Buffer is an owning handle: ownership moves with Swap, and Release gives
// the slots up. Copying the struct value shares the slots and must be
// avoided by callers that rely on exclusive ownership.
type Buffer[T any] struct {
	slots []T
}

// MaxSlots returns the largest slot count New accepts for element type T.
func MaxSlots[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(maxBytes / uint64(size))
}

// New returns a buffer of n zero-valued slots. n == 0 yields an empty buffer
// without allocating.
func New[T any](n int) (Buffer[T], error) {
	if n < 0 {
		return Buffer[T]{}, fmt.Errorf("%w: negative slot count %d", ErrAllocation, n)
	}
	if n > MaxSlots[T]() {
		return Buffer[T]{}, fmt.Errorf("%w: %d slots exceeds limit of %d", ErrAllocation, n, MaxSlots[T]())
	}
	if n == 0 {
		return Buffer[T]{}, nil
	}
	return Buffer[T]{slots: make([]T, n)}, nil
}

// FromSlice wraps an existing slice without copying.
// The buffer takes ownership of s; the caller must not use s afterwards.
func FromSlice[T any](s []T) Buffer[T] {
	if len(s) == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{slots: s[:len(s):len(s)]}
}

// Get returns the slots, or nil for an empty buffer.
func (b *Buffer[T]) Get() []T {
	return b.slots
}

// Len returns the number of slots.
func (b *Buffer[T]) Len() int {
	return len(b.slots)
}

// Allocated reports whether the buffer holds an allocation.
func (b *Buffer[T]) Allocated() bool {
	return b.slots != nil
}

// Swap exchanges the allocations of b and other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release zeroes every slot and forgets the allocation, so that values held
// by the slots become unreachable. Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	clear(b.slots)
	b.slots = nil
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[T]) Copy() Buffer[T] {
	if len(b.slots) == 0 {
		return Buffer[T]{}
	}
	s := make([]T, len(b.slots))
	copy(s, b.slots)
	return Buffer[T]{slots: s}
}
