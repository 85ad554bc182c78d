// Package dynarray provides Array, a generic growable array with explicit
// capacity management and value semantics.
//
// # Growth
//
// An Array owns exactly one [buffer.Buffer]. Appending to a full array
// allocates a buffer of twice the length, moves the live elements over and
// swaps it in, so a sequence of N appends costs amortized O(1) each and
// reallocates O(log N) times. The capacity sequence from an empty array is
// 0, 1, 2, 4, 8, ... Reserve and Resize allocate exactly the requested size.
//
// Every reallocation builds the new buffer completely before it replaces the
// old one. A failed allocation (see [WithMaxCapacity] and
// [buffer.ErrAllocation]) therefore leaves the array as it was.
//
// # Ownership
//
//	a := dynarray.Of(1, 2, 3)
//	b := a.Clone()  // deep copy, b.Cap() == b.Len()
//	c := a.Move()   // c owns a's buffer, a is empty with zero capacity
//	a.Swap(b)       // O(1) exchange
//
// # Errors
//
// Index, Set, Ref, Erase, Insert, PopBack, Front and Back treat an invalid
// position as a programming error and panic. At is the checked accessor: it
// returns a *RangeError matching [ErrOutOfRange].
//
// Arrays are not safe for concurrent use.
package dynarray
