// File: vec/retain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// In-place filtering. The array during a scan:
//
//	[ kept | holes | unprocessed ]
//	  |<- processed ->|
//	        |<- deleted ->|
//
// The externally visible length drops to zero for the duration of the
// scan and a deferred guard publishes the consistent result on every
// exit path, so a panicking predicate can never expose a hole or
// double-expose an element.

package vec

// Retain keeps exactly the elements for which keep returns true,
// visiting each live element once, front to back, and preserving the
// order of the kept ones. Rejected elements are retired immediately.
func (a *Array[T]) Retain(keep func(T) bool) {
	a.RetainMut(func(p *T) bool { return keep(*p) })
}

// RetainMut is Retain with a mutable view of each element: the
// predicate may update the element before deciding its fate.
func (a *Array[T]) RetainMut(keep func(*T) bool) {
	a.mutable()
	original := a.slots.Len()
	processed, deleted := 0, 0

	a.slots.SetLen(0)
	defer func() {
		// Backshift the unprocessed tail over the holes, clear the
		// vacated suffix, publish the length. Runs exactly once,
		// normal return and unwind alike.
		if deleted > 0 {
			a.slots.MoveRange(processed-deleted, processed, original-processed)
		}
		kept := original - deleted
		a.slots.ClearRange(kept, original)
		a.slots.SetLen(kept)
	}()

	raw := a.slots.Raw()

	// Phase 1: nothing rejected yet, survivors stay where they are.
	for processed < original {
		if !keep(&raw[processed]) {
			var zero T
			raw[processed] = zero
			processed++
			deleted++
			break
		}
		processed++
	}

	// Phase 2: holes exist, every survivor backshifts by deleted.
	for processed < original {
		if !keep(&raw[processed]) {
			var zero T
			raw[processed] = zero
			processed++
			deleted++
			continue
		}
		raw[processed-deleted] = raw[processed]
		processed++
	}
}
