package adapters_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/stackvec/adapters"
	"github.com/momentics/stackvec/vec"
)

func TestLockedConcurrentPushPop(t *testing.T) {
	const (
		workers = 8
		perW    = 500
	)
	l := adapters.NewLocked(vec.New[int](workers * perW))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				require.NoError(t, l.Push(w*perW+i))
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, workers*perW, l.Len())

	seen := make(map[int]bool)
	for _, v := range l.Snapshot() {
		require.False(t, seen[v], "value %d pushed twice", v)
		seen[v] = true
	}
	require.Len(t, seen, workers*perW)
}

func TestLockedDoCompound(t *testing.T) {
	l := adapters.NewLocked(vec.New[int](8))
	for i := 0; i < 6; i++ {
		require.NoError(t, l.Push(i))
	}
	l.Do(func(a *vec.Array[int]) {
		a.Retain(func(x int) bool { return x%2 == 0 })
	})
	require.Equal(t, []int{0, 2, 4}, l.Snapshot())
}
