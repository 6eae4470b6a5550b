// File: vec/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// Equal reports whether a and b hold equal elements in the same order.
// Capacities are irrelevant.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.View(), b.View())
}

// EqualSlice reports whether a's elements equal s element-wise.
func EqualSlice[T comparable](a *Array[T], s []T) bool {
	return slices.Equal(a.View(), s)
}

// Compare orders a against b lexicographically, element by element.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.View(), b.View())
}

// CompareSlice orders a against s lexicographically.
func CompareSlice[T cmp.Ordered](a *Array[T], s []T) int {
	return slices.Compare(a.View(), s)
}

// Hash returns an order-sensitive, element-wise hash of the live
// elements under seed. Arrays with equal contents hash equally
// regardless of capacity.
func Hash[T comparable](seed maphash.Seed, a *Array[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, v := range a.View() {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}
