package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"traffic-metrics/internal/aggregators"
	"traffic-metrics/internal/events"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/metrics"
	"traffic-metrics/internal/shared/svcerrors"
	"traffic-metrics/internal/shared/ulid"
)

//go:generate mockgen -source=sample_consumer.go -destination=./mocks/sample_consumer_mock.go -package=mocks
type SampleRecordedConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type sampleRecordedConsumer struct {
	queue              *PartitionedQueue[events.SampleRecordedEvent]
	aggregationService aggregators.AggregationService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSampleRecordedConsumer(queue *PartitionedQueue[events.SampleRecordedEvent], aggregationService aggregators.AggregationService, logger loggers.Logger) SampleRecordedConsumer {
	return &sampleRecordedConsumer{
		queue:              queue,
		aggregationService: aggregationService,
		stopCh:             make(chan struct{}),
		logger:             logger,
	}
}

// Start spawns one worker goroutine per partition. Each partition is a
// single-writer lane for the campaigns routed to it by the producer.
func (consumer *sampleRecordedConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to drain (best called during app shutdown).
func (consumer *sampleRecordedConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *sampleRecordedConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.SampleRecordedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event := <-ch:
			consumer.consumeOne(ctx, partitionIndex, event)
		}
	}
}

// consumeOne aggregates a single event with panic isolation so a bad sample
// never takes down the partition worker.
func (consumer *sampleRecordedConsumer) consumeOne(ctx context.Context, partitionIndex int, event events.SampleRecordedEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricSampleRecordedConsumedTotal.WithLabelValues(streamSampleRecorded, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)
	svcErr := consumer.aggregationService.Aggregate(ctx, &event.Sample)
	if svcErr != nil {
		metricSampleRecordedConsumedTotal.WithLabelValues(streamSampleRecorded, svcErr.Code).Inc()
	} else {
		metricSampleRecordedConsumedTotal.WithLabelValues(streamSampleRecorded, metrics.ValueNoError).Inc()
	}
}
