package streams

import (
	"hash/fnv"
)

// PartitionedQueue is an in-process stand-in for a partitioned message
// broker: messages with the same partition key always land on the same
// channel, so a single consumer goroutine per partition gives ordered,
// race-free processing per key.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024
)

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return NewPartitionedQueueWith[T](defaultNumPartitions, defaultBuffer)
}

func NewPartitionedQueueWith[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	partitions := make([]chan T, numPartitions)
	for i := range partitions {
		partitions[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: partitions}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

func (queue *PartitionedQueue[T]) Publish(partitionKey string, msg T) {
	queue.partitions[partitionIndex(partitionKey, len(queue.partitions))] <- msg
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	return int(hash.Sum32() % uint32(n))
}
