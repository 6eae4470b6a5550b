// File: vec/dedup.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Consecutive-run deduplication with read/write cursors. A deferred
// gap-closing guard keeps the array consistent when the predicate
// panics mid-scan.

package vec

// DedupBy removes all but the first element of every consecutive run
// judged equal by same. same receives (current, previously kept) and
// returns true when current should be dropped. Single stable pass.
func (a *Array[T]) DedupBy(same func(cur, prev T) bool) {
	a.mutable()
	n := a.slots.Len()
	if n <= 1 {
		return
	}
	read, write := 1, 1
	defer func() {
		// Shift whatever the scan never reached down over the gap and
		// publish the length; reached on normal completion too, where
		// the tail is empty and only the suffix clear remains.
		tail := n - read
		if tail > 0 && read != write {
			a.slots.MoveRange(write, read, tail)
		}
		a.slots.ClearRange(write+tail, n)
		a.slots.SetLen(write + tail)
	}()

	raw := a.slots.Raw()
	for read < n {
		if same(raw[read], raw[write-1]) {
			var zero T
			raw[read] = zero
			read++
			continue
		}
		if read != write {
			raw[write] = raw[read]
		}
		write++
		read++
	}
}

// Dedup removes all but the first element of every run of equal
// elements. On a sorted array this removes every duplicate.
func Dedup[T comparable](a *Array[T]) {
	a.DedupBy(func(cur, prev T) bool { return cur == prev })
}

// DedupByKey removes all but the first element of every consecutive
// run mapping to the same key.
func DedupByKey[T any, K comparable](a *Array[T], key func(T) K) {
	a.DedupBy(func(cur, prev T) bool { return key(cur) == key(prev) })
}
