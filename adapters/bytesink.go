// File: adapters/bytesink.go
// Author: momentics <momentics@gmail.com>
//
// ByteSink lets a fixed-capacity byte array serve anywhere an
// io.Writer is expected. Writes are all-or-nothing: a write that does
// not fit is refused entirely and reported as a short write carrying
// the api.ErrFull mark.

package adapters

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/momentics/stackvec/vec"
)

var (
	_ io.Writer       = (*ByteSink)(nil)
	_ io.ByteWriter   = (*ByteSink)(nil)
	_ io.StringWriter = (*ByteSink)(nil)
)

// ByteSink adapts *vec.Array[byte] to the writer interfaces.
type ByteSink struct {
	arr *vec.Array[byte]
}

// NewByteSink wraps arr. The sink and the array share state; bytes
// written are visible through arr.View().
func NewByteSink(arr *vec.Array[byte]) *ByteSink {
	return &ByteSink{arr: arr}
}

// Write appends p. When p does not fit in the remaining capacity,
// nothing is written and the error satisfies both
// errors.Is(err, api.ErrFull) and errors.Is(err, io.ErrShortWrite).
func (s *ByteSink) Write(p []byte) (int, error) {
	if err := s.arr.ExtendFromSlice(p); err != nil {
		return 0, errors.Mark(err, io.ErrShortWrite)
	}
	return len(p), nil
}

// WriteByte appends a single byte, failing with api.ErrFull when the
// array is at capacity.
func (s *ByteSink) WriteByte(c byte) error {
	return s.arr.Push(c)
}

// WriteString appends str under the same all-or-nothing contract as
// Write.
func (s *ByteSink) WriteString(str string) (int, error) {
	if err := s.arr.EnsureCapacity(s.arr.Len() + len(str)); err != nil {
		return 0, errors.Mark(err, io.ErrShortWrite)
	}
	for i := 0; i < len(str); i++ {
		// cannot fail: capacity was reserved above
		_ = s.arr.Push(str[i])
	}
	return len(str), nil
}

// Bytes returns the accumulated bytes, sharing the array's storage.
func (s *ByteSink) Bytes() []byte { return s.arr.View() }

// Len returns how many bytes have accumulated.
func (s *ByteSink) Len() int { return s.arr.Len() }

// Remaining returns how many more bytes fit.
func (s *ByteSink) Remaining() int { return s.arr.Remaining() }
