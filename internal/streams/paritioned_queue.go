package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
)

type PartitionedQueue[T any] struct {
	partitions []chan T
}

func newPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024
)

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return newPartitionedQueue[T](defaultNumPartitions, defaultBuffer)
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks while the key's partition is full, until ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
