// File: vec/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// List: the growable api.Sequence backend. Same surface as Array with
// one deliberate fork: capacity is a starting point, not a bound.
// EnsureCapacity reallocates where Array fails with api.ErrFull, and
// Push never fails. Choosing between the two backends is an explicit
// strategy decision for the caller, not an accident.

package vec

import (
	"fmt"
	"slices"

	"github.com/momentics/stackvec/api"
)

// Ensure compile-time interface compliance.
var _ api.Sequence[int] = (*List[int])(nil)

// List is a growable sequence over an amortized-growth slice.
// The zero value is an empty list.
type List[T any] struct {
	items []T
}

// NewList returns an empty list with room for capacity elements before
// the first reallocation.
func NewList[T any](capacity int) *List[T] {
	return &List[T]{items: make([]T, 0, capacity)}
}

// ListOf returns a list holding elems.
func ListOf[T any](elems ...T) *List[T] {
	return &List[T]{items: slices.Clone(elems)}
}

// Len returns the number of live elements.
func (l *List[T]) Len() int { return len(l.items) }

// Cap returns the current allocation size; it grows as needed.
func (l *List[T]) Cap() int { return cap(l.items) }

// Remaining returns how many pushes fit before the next reallocation.
func (l *List[T]) Remaining() int { return cap(l.items) - len(l.items) }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsFull reports whether the next Push would reallocate. A list is
// never full in the Array sense; Push always succeeds.
func (l *List[T]) IsFull() bool { return len(l.items) == cap(l.items) }

// Push appends v. Never fails; the backing slice grows as needed.
func (l *List[T]) Push(v T) error {
	l.items = append(l.items, v)
	return nil
}

// Pop removes and returns the last element; ok is false when empty.
func (l *List[T]) Pop() (T, bool) {
	n := len(l.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	v := l.items[n-1]
	var zero T
	l.items[n-1] = zero
	l.items = l.items[:n-1]
	return v, true
}

// Insert places v at index i. Fails with api.ErrOutOfRange when
// i > Len(); capacity cannot fail.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return api.RangeError(i, len(l.items))
	}
	l.items = slices.Insert(l.items, i, v)
	return nil
}

// Remove deletes and returns the element at i, order-preserving.
func (l *List[T]) Remove(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, api.RangeError(i, len(l.items))
	}
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return v, nil
}

// SwapRemove deletes and returns the element at i, moving the last
// element into the hole. O(1), order-destroying.
func (l *List[T]) SwapRemove(i int) (T, error) {
	n := len(l.items)
	if i < 0 || i >= n {
		var zero T
		return zero, api.RangeError(i, n)
	}
	v := l.items[i]
	l.items[i] = l.items[n-1]
	var zero T
	l.items[n-1] = zero
	l.items = l.items[:n-1]
	return v, nil
}

// Truncate keeps the first n elements. A no-op when n >= Len().
// Panics on negative n.
func (l *List[T]) Truncate(n int) {
	if n < 0 {
		panic("stackvec: negative truncate length")
	}
	if n >= len(l.items) {
		return
	}
	clear(l.items[n:])
	l.items = l.items[:n]
}

// Clear removes every element, keeping the allocation.
func (l *List[T]) Clear() { l.Truncate(0) }

// Append moves every element of other to the tail of l, leaving other
// empty.
func (l *List[T]) Append(other *List[T]) error {
	if l == other {
		panic("stackvec: list appended to itself")
	}
	l.items = append(l.items, other.items...)
	clear(other.items)
	other.items = other.items[:0]
	return nil
}

// EnsureCapacity is the growable side of the api.Sequence capacity
// fork: it reallocates so that n total elements fit without further
// growth. Never fails.
func (l *List[T]) EnsureCapacity(n int) error {
	if extra := n - len(l.items); extra > 0 {
		l.items = slices.Grow(l.items, extra)
	}
	return nil
}

// View returns the live elements, sharing the backing storage.
// Valid until the next mutating call.
func (l *List[T]) View() []T { return l.items }

// String renders the elements in fmt's sequence convention.
func (l *List[T]) String() string { return fmt.Sprint(l.items) }
