package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	storemocks "traffic-metrics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sweeperFixture struct {
	campaignStore  *storemocks.MockCampaignStore
	rawSampleStore *storemocks.MockRawSampleStore
	summaryStore   *storemocks.MockWindowSummaryStore
	sweeper        *sweeper
}

func newSweeperFixture(t *testing.T, cfg SweeperConfig) *sweeperFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger, err := loggers.New("disabled")
	require.NoError(t, err)

	f := &sweeperFixture{
		campaignStore:  storemocks.NewMockCampaignStore(ctrl),
		rawSampleStore: storemocks.NewMockRawSampleStore(ctrl),
		summaryStore:   storemocks.NewMockWindowSummaryStore(ctrl),
	}
	f.sweeper = NewSweeper(cfg, f.campaignStore, f.rawSampleStore, f.summaryStore, logger).(*sweeper)
	return f
}

func registeredCampaigns(ids ...string) []models.Campaign {
	campaigns := make([]models.Campaign, 0, len(ids))
	for _, id := range ids {
		campaigns = append(campaigns, models.Campaign{ID: id, Status: models.CampaignRunning})
	}
	return campaigns
}

func TestSweeper_RunSweep_EnforcesBothHorizons(t *testing.T) {
	t.Parallel()

	f := newSweeperFixture(t, SweeperConfig{
		SampleHorizon:  48 * time.Hour,
		SummaryHorizon: 35 * 24 * time.Hour,
	})
	now := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	f.sweeper.now = func() time.Time { return now }
	ctx := context.Background()

	f.campaignStore.EXPECT().List(gomock.Any()).
		Return(registeredCampaigns("cmp-1", "cmp-2"), nil)

	sampleHorizon := now.Add(-48 * time.Hour)
	summaryHorizon := now.Add(-35 * 24 * time.Hour)
	for _, id := range []string{"cmp-1", "cmp-2"} {
		f.rawSampleStore.EXPECT().DeleteBefore(gomock.Any(), id, sampleHorizon).Return(10, nil)
		for _, rng := range models.AllTimeRanges() {
			f.summaryStore.EXPECT().DeleteBefore(gomock.Any(), id, rng, summaryHorizon).Return(2, nil)
		}
	}

	summary := f.sweeper.runSweep(ctx)
	assert.Equal(t, 20, summary.SamplesDeleted)
	assert.Equal(t, 20, summary.SummariesDeleted)
	assert.Zero(t, summary.Errors)
}

func TestSweeper_RunSweep_StoreFailuresDoNotAbort(t *testing.T) {
	t.Parallel()

	f := newSweeperFixture(t, SweeperConfig{})
	ctx := context.Background()

	f.campaignStore.EXPECT().List(gomock.Any()).
		Return(registeredCampaigns("cmp-bad", "cmp-ok"), nil)

	f.rawSampleStore.EXPECT().DeleteBefore(gomock.Any(), "cmp-bad", gomock.Any()).
		Return(0, errors.New("compaction in progress"))
	for _, rng := range models.AllTimeRanges() {
		f.summaryStore.EXPECT().DeleteBefore(gomock.Any(), "cmp-bad", rng, gomock.Any()).Return(1, nil)
	}

	// The second campaign is still swept in full.
	f.rawSampleStore.EXPECT().DeleteBefore(gomock.Any(), "cmp-ok", gomock.Any()).Return(5, nil)
	for _, rng := range models.AllTimeRanges() {
		f.summaryStore.EXPECT().DeleteBefore(gomock.Any(), "cmp-ok", rng, gomock.Any()).Return(0, nil)
	}

	summary := f.sweeper.runSweep(ctx)
	assert.Equal(t, 5, summary.SamplesDeleted)
	assert.Equal(t, 5, summary.SummariesDeleted)
	assert.Equal(t, 1, summary.Errors)
}

func TestSweeper_RunSweep_ListFailure(t *testing.T) {
	t.Parallel()

	f := newSweeperFixture(t, SweeperConfig{})
	f.campaignStore.EXPECT().List(gomock.Any()).Return(nil, errors.New("registry offline"))

	summary := f.sweeper.runSweep(context.Background())
	assert.Equal(t, 1, summary.Errors)
	assert.Zero(t, summary.SamplesDeleted)
}

func TestSweeper_StartStop(t *testing.T) {
	t.Parallel()

	f := newSweeperFixture(t, SweeperConfig{SweepInterval: 5 * time.Millisecond})

	f.campaignStore.EXPECT().List(gomock.Any()).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.sweeper.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	f.sweeper.Stop()

	// Stop is idempotent.
	f.sweeper.Stop()
}
