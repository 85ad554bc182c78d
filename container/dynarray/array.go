package dynarray

import (
	"fmt"

	"github.com/cwbudde/algo-container/container/buffer"
)

// Array is a growable sequence of T stored in a single exclusively owned
// buffer. Slots [0, Len) are live; slots [Len, Cap) are allocated but hold
// unspecified values.
//
// The zero value is an empty array ready for use. An Array must not be
// copied by value; use Clone for a deep copy and Move to transfer ownership.
// Arrays are not safe for concurrent use.
type Array[T any] struct {
	elements buffer.Buffer[T]
	size     int
	capacity int

	cfg  Config
	pool *buffer.Pool[T]
}

// New returns an empty array without allocating.
func New[T any](opts ...Option) *Array[T] {
	return &Array[T]{cfg: ApplyOptions(opts...)}
}

// NewFromPool returns an empty array that draws every allocation from pool
// and hands replaced buffers back to it.
func NewFromPool[T any](pool *buffer.Pool[T], opts ...Option) *Array[T] {
	a := New[T](opts...)
	a.pool = pool
	return a
}

// Make returns an array of count zero values with Len() == Cap() == count.
func Make[T any](count int, opts ...Option) (*Array[T], error) {
	a := New[T](opts...)
	b, err := a.alloc(count)
	if err != nil {
		return nil, err
	}
	a.elements = b
	a.size, a.capacity = count, count
	return a, nil
}

// Filled returns an array of count copies of value.
func Filled[T any](count int, value T, opts ...Option) (*Array[T], error) {
	a, err := Make[T](count, opts...)
	if err != nil {
		return nil, err
	}
	s := a.elements.Get()
	for i := range s {
		s[i] = value
	}
	return a, nil
}

// Of returns an array holding a copy of items, in order, with
// Len() == Cap() == len(items). Of takes no options because its parameter
// list is already variadic; use FromSlice to apply a capacity limit.
func Of[T any](items ...T) *Array[T] {
	return fromItems(New[T](), items)
}

// FromSlice returns an array holding a copy of items, in order, with
// Len() == Cap() == len(items).
func FromSlice[T any](items []T, opts ...Option) (*Array[T], error) {
	a := New[T](opts...)
	if a.cfg.MaxCapacity > 0 && len(items) > a.cfg.MaxCapacity {
		return nil, fmt.Errorf("%w: %d slots requested, limit is %d",
			ErrCapacityExceeded, len(items), a.cfg.MaxCapacity)
	}
	return fromItems(a, items), nil
}

func fromItems[T any](a *Array[T], items []T) *Array[T] {
	if len(items) == 0 {
		return a
	}
	s := make([]T, len(items))
	copy(s, items)
	a.elements = buffer.FromSlice(s)
	a.size, a.capacity = len(s), len(s)
	return a
}

// WithCapacity returns an empty array with room for capacity elements.
func WithCapacity[T any](capacity int, opts ...Option) (*Array[T], error) {
	a := New[T](opts...)
	b, err := a.alloc(capacity)
	if err != nil {
		return nil, err
	}
	a.elements = b
	a.capacity = capacity
	return a, nil
}

// Clone returns a deep copy of a. The copy's capacity equals a.Len(); spare
// capacity is not carried over. The copy shares a's configuration and pool.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{cfg: a.cfg, pool: a.pool}
	if a.size == 0 {
		return c
	}
	s := make([]T, a.size)
	copy(s, a.live())
	c.elements = buffer.FromSlice(s)
	c.size, c.capacity = a.size, a.size
	return c
}

// Move returns a new array that owns a's buffer, size and capacity.
// a is left empty with zero capacity.
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{cfg: a.cfg, pool: a.pool}
	m.elements.Swap(&a.elements)
	m.size, m.capacity = a.size, a.capacity
	a.size, a.capacity = 0, 0
	return m
}

// Assign replaces the contents of a with a deep copy of src.
//
// An empty src clears a and keeps its buffer. Otherwise the copy is built in
// a fresh buffer of exactly src.Len() slots before it replaces a's buffer, so
// a failed allocation leaves a untouched.
func (a *Array[T]) Assign(src *Array[T]) error {
	if a == src {
		return nil
	}
	if src.size == 0 {
		a.Clear()
		return nil
	}
	b, err := a.alloc(src.size)
	if err != nil {
		return err
	}
	copy(b.Get(), src.live())
	a.replace(b)
	a.size = src.size
	return nil
}

// MoveFrom releases a's buffer and takes ownership of src's buffer, size,
// capacity, configuration and pool. src is left empty with zero capacity.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.release(&a.elements)
	a.elements.Swap(&src.elements)
	a.size, a.capacity = src.size, src.capacity
	a.cfg, a.pool = src.cfg, src.pool
	src.size, src.capacity = 0, 0
}

// Swap exchanges the contents, capacities and configuration of a and other
// in O(1). No element is copied.
func (a *Array[T]) Swap(other *Array[T]) {
	a.elements.Swap(&other.elements)
	a.size, other.size = other.size, a.size
	a.capacity, other.capacity = other.capacity, a.capacity
	a.cfg, other.cfg = other.cfg, a.cfg
	a.pool, other.pool = other.pool, a.pool
}

// Release gives up the buffer, returning it to the pool if a has one.
// a is empty with zero capacity afterwards and may be reused.
func (a *Array[T]) Release() {
	a.release(&a.elements)
	a.size, a.capacity = 0, 0
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return a.capacity }

// IsEmpty reports whether a has no live elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// PushBack appends v. When the buffer is full the capacity doubles; an
// array without capacity grows to exactly one slot.
func (a *Array[T]) PushBack(v T) error {
	if a.size == a.capacity {
		if err := a.reallocate(a.grownCapacity()); err != nil {
			return err
		}
	}
	a.elements.Get()[a.size] = v
	a.size++
	return nil
}

// Insert places v at pos, shifting the elements at and after pos one slot
// to the right, and returns pos. pos must lie in [0, Len()]; inserting at
// Len() appends.
//
// A full buffer grows exactly as in PushBack. v is taken by value, so an
// element read from a itself is inserted intact even when its slot moves.
func (a *Array[T]) Insert(pos int, v T) (int, error) {
	if pos < 0 || pos > a.size {
		panic(fmt.Sprintf("dynarray: insert position %d out of range [0, %d]", pos, a.size))
	}
	if a.size == a.capacity {
		b, err := a.alloc(a.grownCapacity())
		if err != nil {
			return 0, err
		}
		src, dst := a.elements.Get(), b.Get()
		copy(dst, src[:pos])
		copy(dst[pos+1:], src[pos:a.size])
		dst[pos] = v
		a.replace(b)
	} else {
		s := a.elements.Get()
		copy(s[pos+1:a.size+1], s[pos:a.size])
		s[pos] = v
	}
	a.size++
	return pos, nil
}

// Erase removes the element at pos, shifting later elements one slot to the
// left, and returns pos, which now holds the element that followed the
// erased one (or equals Len() if the last element was erased). Capacity is
// unchanged.
func (a *Array[T]) Erase(pos int) int {
	if pos < 0 || pos >= a.size {
		panic(fmt.Sprintf("dynarray: erase position %d out of range [0, %d)", pos, a.size))
	}
	s := a.elements.Get()
	copy(s[pos:a.size-1], s[pos+1:a.size])
	a.size--
	return pos
}

// PopBack drops the last element. a must not be empty.
func (a *Array[T]) PopBack() {
	if a.size == 0 {
		panic("dynarray: PopBack on empty array")
	}
	a.size--
}

// Reserve grows the capacity to exactly n if n exceeds the current capacity.
// It never shrinks.
func (a *Array[T]) Reserve(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("dynarray: negative capacity %d", n))
	}
	if n <= a.capacity {
		return nil
	}
	return a.reallocate(n)
}

// Resize sets the length to n. Shrinking keeps the capacity. Growing exposes
// zero values; past the current capacity the buffer is reallocated to
// exactly n slots.
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("dynarray: negative size %d", n))
	}
	switch {
	case n <= a.size:
	case n <= a.capacity:
		clear(a.elements.Get()[a.size:n])
	default:
		if err := a.reallocate(n); err != nil {
			return err
		}
	}
	a.size = n
	return nil
}

// Clear sets the length to zero and keeps the buffer.
func (a *Array[T]) Clear() {
	a.size = 0
}

// Index returns the element at i. i must lie in [0, Len()).
func (a *Array[T]) Index(i int) T {
	a.checkIndex(i)
	return a.elements.Get()[i]
}

// Set stores v at i. i must lie in [0, Len()).
func (a *Array[T]) Set(i int, v T) {
	a.checkIndex(i)
	a.elements.Get()[i] = v
}

// Ref returns a pointer to the slot at i, valid until the next reallocation.
func (a *Array[T]) Ref(i int) *T {
	a.checkIndex(i)
	return &a.elements.Get()[i]
}

// At returns the element at i, or a *RangeError if i is outside [0, Len()).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, &RangeError{Index: i, Size: a.size}
	}
	return a.elements.Get()[i], nil
}

// Front returns the first element. a must not be empty.
func (a *Array[T]) Front() T {
	if a.size == 0 {
		panic("dynarray: Front on empty array")
	}
	return a.elements.Get()[0]
}

// Back returns the last element. a must not be empty.
func (a *Array[T]) Back() T {
	if a.size == 0 {
		panic("dynarray: Back on empty array")
	}
	return a.elements.Get()[a.size-1]
}

// Slice returns the live elements. The slice aliases the buffer and stays
// valid until the next reallocation; its capacity is clipped to Len().
func (a *Array[T]) Slice() []T {
	return a.elements.Get()[:a.size:a.size]
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.Slice())
}

func (a *Array[T]) live() []T {
	return a.elements.Get()[:a.size]
}

func (a *Array[T]) checkIndex(i int) {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("dynarray: index %d out of range [0, %d)", i, a.size))
	}
}

func (a *Array[T]) grownCapacity() int {
	if a.capacity == 0 {
		return 1
	}
	return 2 * a.size
}

func (a *Array[T]) alloc(n int) (buffer.Buffer[T], error) {
	if a.cfg.MaxCapacity > 0 && n > a.cfg.MaxCapacity {
		return buffer.Buffer[T]{}, fmt.Errorf("%w: %d slots requested, limit is %d",
			ErrCapacityExceeded, n, a.cfg.MaxCapacity)
	}
	if a.pool != nil {
		return a.pool.Get(n)
	}
	return buffer.New[T](n)
}

func (a *Array[T]) release(b *buffer.Buffer[T]) {
	if a.pool != nil {
		a.pool.Put(b)
		return
	}
	b.Release()
}

// reallocate moves the live elements into a fresh buffer of n slots.
// Nothing changes if the allocation fails.
func (a *Array[T]) reallocate(n int) error {
	b, err := a.alloc(n)
	if err != nil {
		return err
	}
	copy(b.Get(), a.live())
	a.replace(b)
	return nil
}

// replace installs b as the buffer and releases the previous one.
func (a *Array[T]) replace(b buffer.Buffer[T]) {
	a.elements.Swap(&b)
	a.release(&b)
	a.capacity = a.elements.Len()
}
