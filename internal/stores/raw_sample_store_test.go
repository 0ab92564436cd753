package stores

import (
	"context"
	"testing"
	"time"

	"traffic-metrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampleStore(t *testing.T) RawSampleStore {
	t.Helper()
	store, err := NewRawSampleStore(RawSampleStoreConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleAt(campaignID string, ts time.Time, hits int64) *models.RawSample {
	return &models.RawSample{
		CampaignID:       campaignID,
		Timestamp:        ts,
		Hits:             hits,
		Visits:           hits / 2,
		Views:            hits * 2,
		UniqueVisitors:   hits / 3,
		Speed:            float64(hits) / 10,
		CollectionSource: models.SourceAuto,
	}
}

func TestRawSampleStore_AppendAndQueryRange(t *testing.T) {
	t.Parallel()

	store := newTestSampleStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(ctx, sampleAt("cmp-1", base.Add(time.Duration(i)*time.Minute), int64(100+i*10))))
	}
	// Another campaign's samples must not leak into cmp-1 queries
	require.NoError(t, store.Append(ctx, sampleAt("cmp-2", base.Add(2*time.Minute), 999)))

	samples, err := store.QueryRange(ctx, "cmp-1", base.Add(time.Minute), base.Add(3*time.Minute))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	// Ascending by timestamp, bounds inclusive
	assert.Equal(t, int64(110), samples[0].Hits)
	assert.Equal(t, int64(120), samples[1].Hits)
	assert.Equal(t, int64(130), samples[2].Hits)
	for i := 1; i < len(samples); i++ {
		assert.True(t, samples[i-1].Timestamp.Before(samples[i].Timestamp))
	}
}

func TestRawSampleStore_Append_DuplicateTimestampRejected(t *testing.T) {
	t.Parallel()

	store := newTestSampleStore(t)
	ctx := context.Background()
	ts := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, sampleAt("cmp-1", ts, 100)))

	err := store.Append(ctx, sampleAt("cmp-1", ts, 140))
	assert.ErrorIs(t, err, ErrSampleExists)

	// The first write is untouched
	samples, err := store.QueryRange(ctx, "cmp-1", ts, ts)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, int64(100), samples[0].Hits)
}

func TestRawSampleStore_LatestBefore(t *testing.T) {
	t.Parallel()

	store := newTestSampleStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, sampleAt("cmp-1", base, 100)))
	require.NoError(t, store.Append(ctx, sampleAt("cmp-1", base.Add(time.Minute), 140)))

	// Strictly before: a sample at t does not count as "before t"
	got, err := store.LatestBefore(ctx, "cmp-1", base.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(100), got.Hits)

	got, err = store.LatestBefore(ctx, "cmp-1", base.Add(10*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(140), got.Hits)

	got, err = store.LatestBefore(ctx, "cmp-1", base)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.LatestBefore(ctx, "cmp-other", base.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRawSampleStore_QueryRange_Restartable(t *testing.T) {
	t.Parallel()

	store := newTestSampleStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(ctx, sampleAt("cmp-1", base.Add(time.Duration(i)*time.Minute), int64(i))))
	}

	first, err := store.QueryRange(ctx, "cmp-1", base, base.Add(2*time.Minute))
	require.NoError(t, err)
	second, err := store.QueryRange(ctx, "cmp-1", base, base.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRawSampleStore_DeleteBefore(t *testing.T) {
	t.Parallel()

	store := newTestSampleStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		require.NoError(t, store.Append(ctx, sampleAt("cmp-1", base.Add(time.Duration(i)*time.Minute), int64(i))))
	}

	deleted, err := store.DeleteBefore(ctx, "cmp-1", base.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	remaining, err := store.QueryRange(ctx, "cmp-1", base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, remaining, 3)
	assert.Equal(t, base.Add(3*time.Minute), remaining[0].Timestamp.UTC())

	// Nothing left below the horizon
	deleted, err = store.DeleteBefore(ctx, "cmp-1", base.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
