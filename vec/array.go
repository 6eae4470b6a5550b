// File: vec/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Array: the fixed-capacity container engine. All slot-level moves go
// through internal/storage; this file owns the invariant reasoning.

package vec

import (
	"fmt"

	"github.com/momentics/stackvec/api"
	"github.com/momentics/stackvec/internal/storage"
)

// Ensure compile-time interface compliance.
var _ api.Sequence[int] = (*Array[int])(nil)

// Array is a sequence with a hard capacity bound fixed at construction.
// The zero value is an empty array of capacity zero; use New, Wrap,
// From or FromSlice to build a useful one.
type Array[T any] struct {
	slots storage.Slots[T]

	// checked-out flag: while a Drain cursor is open, the cursor holds
	// the only legal mutable path to the array.
	draining bool
}

// New returns an empty array that can hold up to capacity elements.
// The backing buffer is allocated once, here, and never again.
func New[T any](capacity int) *Array[T] {
	return &Array[T]{slots: storage.Make[T](capacity)}
}

// Wrap returns an empty array over caller-provided backing memory,
// typically a slice of a stack or embedded array. Capacity is
// len(backing). The caller must not touch backing afterwards.
func Wrap[T any](backing []T) *Array[T] {
	return &Array[T]{slots: storage.Adopt(backing)}
}

// From builds an array of the given capacity holding elems.
// Fails with api.ErrFull when the initializer exceeds capacity;
// no array is produced and nothing is truncated.
func From[T any](capacity int, elems ...T) (*Array[T], error) {
	return FromSlice(capacity, elems)
}

// FromSlice builds an array of the given capacity holding a copy of src.
// Fails with api.ErrFull when len(src) > capacity.
func FromSlice[T any](capacity int, src []T) (*Array[T], error) {
	if len(src) > capacity {
		return nil, api.FullError(capacity, len(src))
	}
	a := New[T](capacity)
	a.slots.CopyIn(0, src)
	a.slots.SetLen(len(src))
	return a, nil
}

// mutable guards every mutating entry point against the one aliasing
// hazard the library has: mutation while a Drain cursor is open.
func (a *Array[T]) mutable() {
	if a.draining {
		panic("stackvec: array mutated while a Drain cursor is open")
	}
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.slots.Len() }

// Cap returns the fixed capacity.
func (a *Array[T]) Cap() int { return a.slots.Cap() }

// Remaining returns how many more elements fit.
func (a *Array[T]) Remaining() int { return a.slots.Cap() - a.slots.Len() }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.slots.Len() == 0 }

// IsFull reports whether the array is at capacity.
func (a *Array[T]) IsFull() bool { return a.slots.Len() == a.slots.Cap() }

// Push appends v. Fails with api.ErrFull when at capacity; the array
// is left untouched.
func (a *Array[T]) Push(v T) error {
	a.mutable()
	n := a.slots.Len()
	if n == a.slots.Cap() {
		return api.FullError(a.slots.Cap(), n+1)
	}
	a.slots.Raw()[n] = v
	a.slots.SetLen(n + 1)
	return nil
}

// Pop removes and returns the last element; ok is false when empty.
func (a *Array[T]) Pop() (T, bool) {
	a.mutable()
	n := a.slots.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	v := a.slots.Take(n - 1)
	a.slots.SetLen(n - 1)
	return v, true
}

// Insert places v at index i, shifting [i, Len()) one slot up.
// Fails with api.ErrOutOfRange when i > Len() and api.ErrFull when at
// capacity; both are checked before any slot moves.
func (a *Array[T]) Insert(i int, v T) error {
	a.mutable()
	n := a.slots.Len()
	if i < 0 || i > n {
		return api.RangeError(i, n)
	}
	if n == a.slots.Cap() {
		return api.FullError(a.slots.Cap(), n+1)
	}
	a.slots.MoveRange(i+1, i, n-i)
	a.slots.Raw()[i] = v
	a.slots.SetLen(n + 1)
	return nil
}

// Remove deletes and returns the element at i, shifting [i+1, Len())
// one slot down. Order-preserving, O(Len()-i).
// Fails with api.ErrOutOfRange.
func (a *Array[T]) Remove(i int) (T, error) {
	a.mutable()
	n := a.slots.Len()
	if i < 0 || i >= n {
		var zero T
		return zero, api.RangeError(i, n)
	}
	v := a.slots.Raw()[i]
	a.slots.MoveRange(i, i+1, n-i-1)
	a.slots.ClearRange(n-1, n)
	a.slots.SetLen(n - 1)
	return v, nil
}

// SwapRemove deletes and returns the element at i, moving the last
// element into the hole. O(1), order-destroying.
// Fails with api.ErrOutOfRange.
func (a *Array[T]) SwapRemove(i int) (T, error) {
	a.mutable()
	n := a.slots.Len()
	if i < 0 || i >= n {
		var zero T
		return zero, api.RangeError(i, n)
	}
	raw := a.slots.Raw()
	v := raw[i]
	raw[i] = raw[n-1]
	a.slots.ClearRange(n-1, n)
	a.slots.SetLen(n - 1)
	return v, nil
}

// Truncate keeps the first n elements and retires the rest.
// A no-op when n >= Len(). The length shrinks before any slot is
// cleared, so the array is well-formed at every point.
// Panics on negative n, like slicing past the bounds would.
func (a *Array[T]) Truncate(n int) {
	a.mutable()
	if n < 0 {
		panic("stackvec: negative truncate length")
	}
	old := a.slots.Len()
	if n >= old {
		return
	}
	a.slots.SetLen(n)
	a.slots.ClearRange(n, old)
}

// Clear removes every element.
func (a *Array[T]) Clear() { a.Truncate(0) }

// Append moves every element of other to the tail of a, leaving other
// empty. Fails with api.ErrFull before anything moves when the
// combined length exceeds a's capacity. Panics when other is a itself.
func (a *Array[T]) Append(other *Array[T]) error {
	a.mutable()
	other.mutable()
	if a == other {
		panic("stackvec: array appended to itself")
	}
	n, m := a.slots.Len(), other.slots.Len()
	if m > a.Remaining() {
		return api.FullError(a.slots.Cap(), n+m)
	}
	a.slots.CopyIn(n, other.slots.Live())
	a.slots.SetLen(n + m)
	// other relinquishes ownership: every element is now referenced by
	// exactly one array.
	other.slots.ClearRange(0, m)
	other.slots.SetLen(0)
	return nil
}

// ExtendFromSlice appends a copy of every element of src. The caller
// keeps src; values are shallow-copied. Fails with api.ErrFull before
// anything is copied.
func (a *Array[T]) ExtendFromSlice(src []T) error {
	a.mutable()
	n := a.slots.Len()
	if len(src) > a.Remaining() {
		return api.FullError(a.slots.Cap(), n+len(src))
	}
	a.slots.CopyIn(n, src)
	a.slots.SetLen(n + len(src))
	return nil
}

// EnsureCapacity is the fixed side of the api.Sequence capacity fork:
// it fails with api.ErrFull when n exceeds the fixed capacity and is a
// no-op otherwise. It never reallocates.
func (a *Array[T]) EnsureCapacity(n int) error {
	if n > a.slots.Cap() {
		return api.FullError(a.slots.Cap(), n)
	}
	return nil
}

// View returns the live elements as a slice sharing the backing
// storage. Index it or reslice it for single-element and sub-range
// access. Valid until the next mutating call.
func (a *Array[T]) View() []T { return a.slots.Live() }

// Get returns the element at i; ok is false when i is out of range.
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.slots.Len() {
		var zero T
		return zero, false
	}
	return a.slots.Raw()[i], true
}

// At returns the element at i, panicking on a bad index exactly like
// slice indexing.
func (a *Array[T]) At(i int) T { return a.slots.Live()[i] }

// Set overwrites the element at i, panicking on a bad index.
func (a *Array[T]) Set(i int, v T) {
	a.mutable()
	a.slots.Live()[i] = v
}

// String renders the live elements in fmt's sequence convention.
func (a *Array[T]) String() string {
	return fmt.Sprint(a.slots.Live())
}
