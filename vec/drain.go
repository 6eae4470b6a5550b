// File: vec/drain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Drain: a transient cursor that removes a sub-range, yielding
// ownership of each element exactly once, forward or backward. The
// array's visible length drops to the range start the moment the
// cursor is created, and the cursor holds the only legal mutable path
// to the array until Close restores contiguity.

package vec

import "github.com/momentics/stackvec/api"

// Drain is a borrowing cursor over a removed sub-range of an Array.
// Callers must Close it (defer is the usual shape); closing early is
// the cancellation path and still leaves the array well-formed.
type Drain[T any] struct {
	a *Array[T]
	// unyielded range within the backing buffer
	front, back int
	// preserved tail: elements originally after the drained range
	tailStart, tailLen int
	closed             bool
}

// Drain removes the range [start, end) from the array, returning a
// cursor that yields each removed element exactly once. Fails with
// api.ErrOutOfRange unless 0 <= start <= end <= Len(); nothing is
// touched on failure.
//
// The array must not be mutated through any other path while the
// cursor is open; every mutating method panics if it is.
func (a *Array[T]) Drain(start, end int) (*Drain[T], error) {
	a.mutable()
	n := a.slots.Len()
	if start < 0 || start > end || end > n {
		return nil, api.SpanError(start, end, n)
	}
	// Hide the drained range and the tail up front: abandoning the
	// cursor can lose elements from observability, never expose one
	// twice.
	a.slots.SetLen(start)
	a.draining = true
	return &Drain[T]{
		a:         a,
		front:     start,
		back:      end,
		tailStart: end,
		tailLen:   n - end,
	}, nil
}

// DrainFrom drains [start, Len()).
func (a *Array[T]) DrainFrom(start int) (*Drain[T], error) {
	return a.Drain(start, a.slots.Len())
}

// DrainAll drains every element.
func (a *Array[T]) DrainAll() (*Drain[T], error) {
	return a.Drain(0, a.slots.Len())
}

// Len returns how many elements remain to be yielded.
func (d *Drain[T]) Len() int { return d.back - d.front }

// AsSlice returns the not-yet-yielded remainder, sharing storage.
// Valid until the next Next, NextBack or Close.
func (d *Drain[T]) AsSlice() []T {
	if d.closed {
		return nil
	}
	return d.a.slots.Raw()[d.front:d.back]
}

// Next yields ownership of the next element from the front of the
// drained range; ok is false once the range is exhausted or the cursor
// is closed.
func (d *Drain[T]) Next() (T, bool) {
	if d.closed || d.front == d.back {
		var zero T
		return zero, false
	}
	v := d.a.slots.Take(d.front)
	d.front++
	return v, true
}

// NextBack yields ownership of the next element from the back of the
// drained range, for reverse consumption.
func (d *Drain[T]) NextBack() (T, bool) {
	if d.closed || d.front == d.back {
		var zero T
		return zero, false
	}
	d.back--
	return d.a.slots.Take(d.back), true
}

// Close finalizes the drain: retires every not-yet-yielded element,
// shifts the preserved tail down to close the gap, and restores the
// array's length to range-start + tail-length. Idempotent. When the
// tail already sits at its destination the move is elided and only
// length accounting happens.
func (d *Drain[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	s := &d.a.slots

	s.ClearRange(d.front, d.back)
	start := s.Len() // == the drained range's start
	if d.tailLen > 0 && d.tailStart != start {
		s.MoveRange(start, d.tailStart, d.tailLen)
	}
	newLen := start + d.tailLen
	s.ClearRange(newLen, d.tailStart+d.tailLen)
	s.SetLen(newLen)
	d.a.draining = false
}
