package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	ingestormocks "traffic-metrics/internal/ingestors/mocks"
	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/svcerrors"
	storemocks "traffic-metrics/internal/stores/mocks"
	"traffic-metrics/internal/vendorapi"
	vendormocks "traffic-metrics/internal/vendorapi/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type collectorFixture struct {
	campaignStore *storemocks.MockCampaignStore
	vendorClient  *vendormocks.MockVendorClient
	ingestion     *ingestormocks.MockIngestionService
	collector     *collector
}

func newCollectorFixture(t *testing.T, cfg CollectorConfig) *collectorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger, err := loggers.New("disabled")
	require.NoError(t, err)

	f := &collectorFixture{
		campaignStore: storemocks.NewMockCampaignStore(ctrl),
		vendorClient:  vendormocks.NewMockVendorClient(ctrl),
		ingestion:     ingestormocks.NewMockIngestionService(ctrl),
	}
	f.collector = NewCollector(cfg, f.campaignStore, f.vendorClient, f.ingestion, logger).(*collector)
	return f
}

func eligibleCampaigns(ids ...string) []models.Campaign {
	campaigns := make([]models.Campaign, 0, len(ids))
	for _, id := range ids {
		campaigns = append(campaigns, models.Campaign{ID: id, Status: models.CampaignRunning, VendorTracked: true})
	}
	return campaigns
}

func TestCollector_StartStopStateMachine(t *testing.T) {
	t.Parallel()

	f := newCollectorFixture(t, CollectorConfig{})
	f.campaignStore.EXPECT().ListEligible(gomock.Any()).Return(nil, nil).AnyTimes()

	status := f.collector.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.NextRunAt)

	require.Nil(t, f.collector.Start(time.Minute))

	status = f.collector.Status()
	assert.True(t, status.Running)
	assert.Equal(t, int64(60_000), status.IntervalMs)
	require.NotNil(t, status.NextRunAt)
	assert.True(t, status.NextRunAt.After(time.Now().UTC()))

	// Second start conflicts
	svcErr := f.collector.Start(time.Minute)
	require.NotNil(t, svcErr)
	assert.Equal(t, "COL_1000", svcErr.Code)

	require.Nil(t, f.collector.Stop())
	assert.False(t, f.collector.Status().Running)

	// Second stop conflicts
	svcErr = f.collector.Stop()
	require.NotNil(t, svcErr)
	assert.Equal(t, "COL_1001", svcErr.Code)

	// Restart works after a stop
	require.Nil(t, f.collector.Start(time.Minute))
	require.Nil(t, f.collector.Stop())
}

func TestCollector_StartRejectsShortInterval(t *testing.T) {
	t.Parallel()

	f := newCollectorFixture(t, CollectorConfig{})

	svcErr := f.collector.Start(100 * time.Millisecond)
	require.NotNil(t, svcErr)
	assert.Equal(t, "COL_1002", svcErr.Code)
	assert.False(t, f.collector.Status().Running)
}

func TestCollector_RunTick_CollectsAllEligible(t *testing.T) {
	t.Parallel()

	f := newCollectorFixture(t, CollectorConfig{MaxConcurrentRequests: 2, BatchDelay: time.Millisecond})
	ctx := context.Background()

	f.campaignStore.EXPECT().ListEligible(gomock.Any()).
		Return(eligibleCampaigns("cmp-1", "cmp-2", "cmp-3"), nil)
	for _, id := range []string{"cmp-1", "cmp-2", "cmp-3"} {
		sample := &models.RawSample{CampaignID: id, CollectionSource: models.SourceAuto}
		f.vendorClient.EXPECT().FetchSnapshot(gomock.Any(), id).Return(sample, nil)
		f.ingestion.EXPECT().Record(gomock.Any(), sample).Return(nil)
	}

	f.collector.runTick(ctx)
}

func TestCollector_RunTick_FailuresIsolatedPerCampaign(t *testing.T) {
	t.Parallel()

	f := newCollectorFixture(t, CollectorConfig{MaxConcurrentRequests: 3, BatchDelay: time.Millisecond})
	ctx := context.Background()

	f.campaignStore.EXPECT().ListEligible(gomock.Any()).
		Return(eligibleCampaigns("cmp-bad", "cmp-ok"), nil)

	f.vendorClient.EXPECT().FetchSnapshot(gomock.Any(), "cmp-bad").
		Return(nil, &vendorapi.FetchError{Kind: vendorapi.FetchRateLimited, CampaignID: "cmp-bad", StatusCode: 429})

	sample := &models.RawSample{CampaignID: "cmp-ok", CollectionSource: models.SourceAuto}
	f.vendorClient.EXPECT().FetchSnapshot(gomock.Any(), "cmp-ok").Return(sample, nil)
	f.ingestion.EXPECT().Record(gomock.Any(), sample).Return(nil)

	// The failing campaign does not abort its batch sibling
	f.collector.runTick(ctx)
}

func TestCollector_CollectOne_DuplicateTimestampIsSuccess(t *testing.T) {
	t.Parallel()

	f := newCollectorFixture(t, CollectorConfig{})
	ctx := context.Background()
	campaign := models.Campaign{ID: "cmp-1", Status: models.CampaignRunning, VendorTracked: true}

	sample := &models.RawSample{CampaignID: "cmp-1", CollectionSource: models.SourceAuto}
	f.vendorClient.EXPECT().FetchSnapshot(gomock.Any(), "cmp-1").Return(sample, nil)

	conflict := svcerrors.NewResourceConflictError("ING_1001", "sample already recorded for this timestamp", nil)
	f.ingestion.EXPECT().Record(gomock.Any(), sample).Return(conflict)

	assert.True(t, f.collector.collectOne(ctx, campaign))
}

func TestCollector_CollectOne_RecordFailure(t *testing.T) {
	t.Parallel()

	f := newCollectorFixture(t, CollectorConfig{})
	ctx := context.Background()
	campaign := models.Campaign{ID: "cmp-1", Status: models.CampaignRunning, VendorTracked: true}

	sample := &models.RawSample{CampaignID: "cmp-1", CollectionSource: models.SourceAuto}
	f.vendorClient.EXPECT().FetchSnapshot(gomock.Any(), "cmp-1").Return(sample, nil)
	f.ingestion.EXPECT().Record(gomock.Any(), sample).Return(svcerrors.NewInternalError("ING_9000", errors.New("disk full")))

	assert.False(t, f.collector.collectOne(ctx, campaign))
}
