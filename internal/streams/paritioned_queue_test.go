package streams

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIndex_StableAndInRange(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "app-01", "app-02", "eu/app"} {
		idx := partitionIndex(key, defaultNumPartitions)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, defaultNumPartitions)
		assert.Equal(t, idx, partitionIndex(key, defaultNumPartitions))
	}
}

func TestPartitionedQueue_Publish_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[int](4, 8)
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, "app-01", 1))
	require.NoError(t, queue.Publish(ctx, "app-01", 2))

	ch := queue.partitions[partitionIndex("app-01", 4)]
	assert.Equal(t, 1, <-ch)
	assert.Equal(t, 2, <-ch)
}

func TestPartitionedQueue_Publish_FullPartitionHonoursContext(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := queue.Publish(ctx, "k", 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[string]()

	assert.Equal(t, defaultNumPartitions, queue.PartitionCount())
	assert.Equal(t, defaultBuffer, cap(queue.partitions[0]))
}
