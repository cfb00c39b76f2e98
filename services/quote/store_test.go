package quote

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_NextDistanceSeqIsMonotonic(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	seq, err := store.DistanceSeq(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)

	for want := int64(1); want <= 3; want++ {
		seq, err = store.NextDistanceSeq(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, want, seq)
	}

	// Counters are per session.
	seq, err = store.NextDistanceSeq(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}

func TestMemoryStore_ConcurrentStampsNeverCollide(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	const workers = 50
	seqs := make([]int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seq, err := store.NextDistanceSeq(ctx, "s1")
			assert.NoError(t, err)
			seqs[i] = seq
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, workers)
	for _, seq := range seqs {
		assert.False(t, seen[seq], "stamp %d minted twice", seq)
		seen[seq] = true
	}
}

func TestMemoryStore_DeleteClearsStamp(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	_, err := store.NextDistanceSeq(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "s1"))

	seq, err := store.DistanceSeq(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)
}
