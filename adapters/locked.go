// File: adapters/locked.go
// Author: momentics <momentics@gmail.com>
//
// Locked imposes the caller-level exclusive-lock discipline the bare
// containers deliberately omit. The lock is padded away from the array
// pointer to keep contending goroutines off the same cache line.

package adapters

import (
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/momentics/stackvec/vec"
)

// Locked serializes all access to a fixed-capacity array. Use it when
// one array must be shared across goroutines; the bare Array assumes a
// single logical owner.
type Locked[T any] struct {
	mu  sync.Mutex
	_   cpu.CacheLinePad
	arr *vec.Array[T]
}

// NewLocked wraps arr. The caller must not touch arr directly
// afterwards; the wrapper holds the only legitimate path to it.
func NewLocked[T any](arr *vec.Array[T]) *Locked[T] {
	return &Locked[T]{arr: arr}
}

// Do runs fn with the lock held, for compound critical sections such
// as draining or retain scans.
func (l *Locked[T]) Do(fn func(*vec.Array[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.arr)
}

// Push appends v under the lock.
func (l *Locked[T]) Push(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arr.Push(v)
}

// Pop removes the last element under the lock.
func (l *Locked[T]) Pop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arr.Pop()
}

// Len returns the live count under the lock.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arr.Len()
}

// Snapshot copies the live elements out under the lock.
func (l *Locked[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, l.arr.Len())
	copy(out, l.arr.View())
	return out
}
