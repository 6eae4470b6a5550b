// Package vec implements fixed-capacity, allocation-free sequence
// containers over a flat slot buffer.
//
// Array is the fixed-capacity container: it looks like a growable list
// (push, pop, insert, remove, retain, dedup, drain, ...) but its
// backing storage is a constant-size buffer allocated once, or adopted
// from the caller, and never resized. List is the growable counterpart
// sharing the same api.Sequence contract.
//
// Every mutating operation keeps two invariants at each call boundary,
// including panicking user callbacks:
//   - slots [0, Len()) are live, slots [Len(), Cap()) are vacant and
//     zeroed;
//   - no element is retained by two slots, and no vacant slot retains
//     a value.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package vec
