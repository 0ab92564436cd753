package streams

import (
	"context"

	"traffic-metrics/internal/events"
	"traffic-metrics/internal/models"
)

// SampleRecordedProducer publishes one SampleRecordedEvent per recorded
// sample to a partitioned queue.
//
// The partition key is the campaign ID, so all of a campaign's samples land
// on the same partition. The consumer runs a single worker per partition,
// which serializes the read-modify-write cycle on that campaign's window
// summaries: no two rollups for the same campaign ever run concurrently,
// while different campaigns still aggregate in parallel.
//
//go:generate mockgen -source=sample_producer.go -destination=./mocks/sample_producer_mock.go -package=mocks
type SampleRecordedProducer interface {
	Produce(ctx context.Context, sample *models.RawSample) error
}

type sampleRecordedProducer struct {
	queue *PartitionedQueue[events.SampleRecordedEvent]
}

func NewSampleRecordedProducer(queue *PartitionedQueue[events.SampleRecordedEvent]) SampleRecordedProducer {
	return &sampleRecordedProducer{
		queue: queue,
	}
}

func (producer *sampleRecordedProducer) Produce(ctx context.Context, sample *models.RawSample) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	event := events.SampleRecordedEvent{Sample: *sample}
	producer.queue.Publish(event.PartitionKey(), event)
	metricSampleRecordedProducedTotal.WithLabelValues(streamSampleRecorded).Inc()
	return nil
}
