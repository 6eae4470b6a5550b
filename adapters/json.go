// File: adapters/json.go
// Author: momentics <momentics@gmail.com>
//
// JSON boundary for the containers. Decoding into a fixed array
// enforces capacity before any mutation, keeping the all-or-nothing
// failure contract.

package adapters

import (
	"github.com/sugawarayuuta/sonnet"

	"github.com/momentics/stackvec/api"
	"github.com/momentics/stackvec/vec"
)

// MarshalJSON renders the live elements as a JSON array.
func MarshalJSON[T any](a *vec.Array[T]) ([]byte, error) {
	return sonnet.Marshal(a.View())
}

// UnmarshalJSON replaces a's contents with the decoded JSON array.
// Fails with api.ErrFull, leaving a untouched, when the document holds
// more elements than a's capacity.
func UnmarshalJSON[T any](data []byte, a *vec.Array[T]) error {
	var decoded []T
	if err := sonnet.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if len(decoded) > a.Cap() {
		return api.FullError(a.Cap(), len(decoded))
	}
	a.Clear()
	return a.ExtendFromSlice(decoded)
}
