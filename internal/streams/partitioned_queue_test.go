package streams

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIndex_StableAndInRange(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "abc123", "alice", "bob", "01ARZ3NDEKTSV4RRFFQ69G5FAV"} {
		idx := partitionIndex(key, 8)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
		assert.Equal(t, idx, partitionIndex(key, 8), "key %q", key)
	}
}

func TestPartitionedQueue_SameKeyKeepsOrder(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](4, 16)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, queue.Publish(ctx, "abc123", i))
	}

	ch := queue.partitions[partitionIndex("abc123", 4)]
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, <-ch)
	}
}

func TestPartitionedQueue_Publish_FullPartitionHonorsContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := queue.Publish(ctx, "k", 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
