package api_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/momentics/stackvec/api"
)

func TestFullErrorMark(t *testing.T) {
	err := api.FullError(4, 5)
	require.True(t, errors.Is(err, api.ErrFull))
	require.False(t, errors.Is(err, api.ErrOutOfRange))
	require.Contains(t, err.Error(), "capacity 4")
	require.Contains(t, err.Error(), "need 5")
}

func TestRangeErrorMark(t *testing.T) {
	err := api.RangeError(7, 3)
	require.True(t, errors.Is(err, api.ErrOutOfRange))
	require.False(t, errors.Is(err, api.ErrFull))
}

func TestSpanErrorMark(t *testing.T) {
	err := api.SpanError(2, 1, 3)
	require.True(t, errors.Is(err, api.ErrOutOfRange))
	require.Contains(t, err.Error(), "[2, 1)")
}
