// File: internal/storage/slots.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slots is the raw fixed-slot backing buffer: a flat run of cells plus
// a live count. It is pure storage with no policy: SetLen declares the
// live count without touching cells, and the move/clear primitives do
// exactly what they are told. Every liveness argument (which cells hold
// valid values, which are vacant) belongs to the engine on top.

package storage

// Slots owns a fixed number of cells of T and tracks how many are live.
// Cells [0, live) hold valid values; cells [live, cap) are vacant.
// Vacant cells are kept zeroed so the GC never retains whatever value
// they last held.
type Slots[T any] struct {
	cells []T
	live  int
}

// Make allocates a buffer of exactly capacity cells, all vacant.
func Make[T any](capacity int) Slots[T] {
	if capacity < 0 {
		panic("storage: negative capacity")
	}
	return Slots[T]{cells: make([]T, capacity)}
}

// Adopt takes over caller-provided backing memory, for example a slice
// of a stack or embedded array. Capacity is len(backing); the buffer
// starts empty. The caller must not touch backing afterwards.
func Adopt[T any](backing []T) Slots[T] {
	clear(backing)
	return Slots[T]{cells: backing}
}

// Cap returns the fixed cell count.
func (s *Slots[T]) Cap() int { return len(s.cells) }

// Len returns the declared live count.
func (s *Slots[T]) Len() int { return s.live }

// SetLen declares the live count. Callers must guarantee cells
// [old, n) hold valid values and cells [n, old) were already retired.
func (s *Slots[T]) SetLen(n int) { s.live = n }

// Live returns the live prefix, sharing the backing storage.
func (s *Slots[T]) Live() []T { return s.cells[:s.live] }

// Raw exposes every cell, live or vacant. Callers reason about
// liveness themselves.
func (s *Slots[T]) Raw() []T { return s.cells }

// Take reads cell i out and retires it (zeroes the cell so the value
// is referenced exactly once, by the caller).
func (s *Slots[T]) Take(i int) T {
	v := s.cells[i]
	var zero T
	s.cells[i] = zero
	return v
}

// MoveRange copies n cells from src to dst within the buffer.
// Overlap-safe (memmove semantics). The vacated region is NOT cleared;
// callers retire stale copies via ClearRange or by overwriting.
func (s *Slots[T]) MoveRange(dst, src, n int) {
	copy(s.cells[dst:dst+n], s.cells[src:src+n])
}

// CopyIn copies src (from a different object) into cells starting at.
func (s *Slots[T]) CopyIn(at int, src []T) {
	copy(s.cells[at:], src)
}

// ClearRange zeroes cells [i, j), retiring whatever they held.
func (s *Slots[T]) ClearRange(i, j int) {
	clear(s.cells[i:j])
}
