package streams

import (
	"context"
	"sync"
	"testing"
	"time"

	aggregatormocks "traffic-metrics/internal/aggregators/mocks"
	"traffic-metrics/internal/events"
	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWith[int](8, 16)

	first := partitionIndex("cmp-1", queue.PartitionCount())
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, partitionIndex("cmp-1", queue.PartitionCount()))
	}
}

func TestPartitionedQueue_PublishAndDrain(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWith[string](4, 8)
	queue.Publish("key", "a")
	queue.Publish("key", "b")
	queue.Close()

	idx := partitionIndex("key", queue.PartitionCount())
	var drained []string
	for msg := range queue.partitions[idx] {
		drained = append(drained, msg)
	}
	// FIFO within a partition
	assert.Equal(t, []string{"a", "b"}, drained)
}

func TestSampleRecordedProducer_RoutesByCampaignID(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWith[events.SampleRecordedEvent](4, 8)
	producer := NewSampleRecordedProducer(queue)
	ctx := context.Background()

	require.NoError(t, producer.Produce(ctx, &models.RawSample{CampaignID: "cmp-1", Hits: 1}))
	require.NoError(t, producer.Produce(ctx, &models.RawSample{CampaignID: "cmp-1", Hits: 2}))

	idx := partitionIndex("cmp-1", queue.PartitionCount())
	event := <-queue.partitions[idx]
	assert.Equal(t, int64(1), event.Sample.Hits)
	event = <-queue.partitions[idx]
	assert.Equal(t, int64(2), event.Sample.Hits)
}

func TestSampleRecordedProducer_CancelledContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWith[events.SampleRecordedEvent](4, 8)
	producer := NewSampleRecordedProducer(queue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Produce(ctx, &models.RawSample{CampaignID: "cmp-1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampleRecordedConsumer_AggregatesPublishedEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueueWith[events.SampleRecordedEvent](4, 8)
	aggregationService := aggregatormocks.NewMockAggregationService(ctrl)

	var mu sync.Mutex
	seen := make(map[string]int)
	aggregationService.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sample *models.RawSample) *svcerrors.ServiceError {
			mu.Lock()
			defer mu.Unlock()
			seen[sample.CampaignID]++
			return nil
		}).Times(4)

	logger, err := loggers.New("disabled")
	require.NoError(t, err)
	consumer := NewSampleRecordedConsumer(queue, aggregationService, logger)
	consumer.Start(context.Background())

	producer := NewSampleRecordedProducer(queue)
	ctx := context.Background()
	require.NoError(t, producer.Produce(ctx, &models.RawSample{CampaignID: "cmp-1"}))
	require.NoError(t, producer.Produce(ctx, &models.RawSample{CampaignID: "cmp-1"}))
	require.NoError(t, producer.Produce(ctx, &models.RawSample{CampaignID: "cmp-2"}))
	require.NoError(t, producer.Produce(ctx, &models.RawSample{CampaignID: "cmp-3"}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen["cmp-1"] == 2 && seen["cmp-2"] == 1 && seen["cmp-3"] == 1
	}, 2*time.Second, 10*time.Millisecond)

	consumer.Stop()
}
