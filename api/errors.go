// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// The two error conditions of the library. Both are contract
// violations: the failed operation performs no partial mutation, and
// callers match them with errors.Is against the sentinels below.

package api

import "github.com/cockroachdb/errors"

var (
	// ErrFull marks every Capacity Exceeded failure: the operation
	// would need more live slots than the backend can ever hold.
	ErrFull = errors.New("stackvec: capacity exceeded")

	// ErrOutOfRange marks every Index Out of Bounds failure: a supplied
	// index or range is inconsistent with the current length. Raised
	// before any mutation begins.
	ErrOutOfRange = errors.New("stackvec: index out of range")
)

// FullError reports an operation that would need `need` live slots in a
// backend of capacity `capacity`. errors.Is(err, ErrFull) holds.
func FullError(capacity, need int) error {
	return errors.Mark(
		errors.Newf("stackvec: capacity exceeded: capacity %d, need %d", capacity, need),
		ErrFull,
	)
}

// RangeError reports index i against a sequence of length n.
// errors.Is(err, ErrOutOfRange) holds.
func RangeError(i, n int) error {
	return errors.Mark(
		errors.Newf("stackvec: index %d out of range for length %d", i, n),
		ErrOutOfRange,
	)
}

// SpanError reports an invalid [start, end) range against a sequence of
// length n. errors.Is(err, ErrOutOfRange) holds.
func SpanError(start, end, n int) error {
	return errors.Mark(
		errors.Newf("stackvec: range [%d, %d) out of range for length %d", start, end, n),
		ErrOutOfRange,
	)
}
