// File: api/sequence.go
// Author: momentics <momentics@gmail.com>
//
// Sequence is the capability contract over "any contiguous sequence",
// implemented by both the fixed-capacity vec.Array and the growable
// vec.List.

package api

// Sequence is a contiguous, index-addressable sequence of T.
//
// Two backends implement it with one deliberate behavioral fork:
// the fixed-capacity backend fails EnsureCapacity (and Push, once full)
// with ErrFull, while the growable backend reallocates and never
// reports ErrFull. Everything else behaves identically.
type Sequence[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the current capacity. Fixed backends never change it.
	Cap() int
	// Remaining returns Cap() - Len().
	Remaining() int
	// IsEmpty reports Len() == 0.
	IsEmpty() bool
	// IsFull reports Len() == Cap(). Growable backends may still grow
	// past a "full" state on the next Push.
	IsFull() bool

	// Push appends v. Fails with ErrFull on a full fixed backend.
	Push(v T) error
	// Pop removes and returns the last element; ok is false when empty.
	Pop() (v T, ok bool)
	// Insert places v at index i, shifting [i, Len()) up by one.
	// Fails with ErrOutOfRange when i > Len(), ErrFull when full.
	Insert(i int, v T) error
	// Remove deletes and returns the element at i, shifting the rest
	// down. Order-preserving. Fails with ErrOutOfRange.
	Remove(i int) (T, error)
	// SwapRemove deletes and returns the element at i, moving the last
	// element into the hole. O(1), order-destroying. ErrOutOfRange.
	SwapRemove(i int) (T, error)
	// Truncate keeps the first n elements and retires the rest.
	// A no-op when n >= Len(). Panics on negative n.
	Truncate(n int)
	// Clear removes every element.
	Clear()

	// View returns the live elements as a slice sharing the backing
	// storage. Valid until the next mutating call.
	View() []T

	// EnsureCapacity guarantees room for at least n total elements.
	// The fixed backend fails with ErrFull when n exceeds its capacity;
	// the growable backend reallocates.
	EnsureCapacity(n int) error
}
