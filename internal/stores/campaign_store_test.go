package stores

import (
	"context"
	"testing"

	"traffic-metrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignStore_ExistsAndRegister(t *testing.T) {
	t.Parallel()

	store := NewCampaignStore([]models.Campaign{
		{ID: "cmp-1", Status: models.CampaignRunning, VendorTracked: true},
	})
	ctx := context.Background()

	ok, err := store.Exists(ctx, "cmp-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "cmp-404")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Register(ctx, models.Campaign{ID: "cmp-404", Status: models.CampaignCreated}))
	ok, err = store.Exists(ctx, "cmp-404")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCampaignStore_ListEligible(t *testing.T) {
	t.Parallel()

	store := NewCampaignStore([]models.Campaign{
		{ID: "running", Status: models.CampaignRunning, VendorTracked: true},
		{ID: "created", Status: models.CampaignCreated, VendorTracked: true},
		{ID: "ok", Status: models.CampaignOK, VendorTracked: true},
		{ID: "paused", Status: models.CampaignPaused, VendorTracked: true},
		{ID: "stopped", Status: models.CampaignStopped, VendorTracked: true},
		{ID: "archived", Status: models.CampaignRunning, VendorTracked: true, Archived: true},
		{ID: "untracked", Status: models.CampaignRunning, VendorTracked: false},
	})

	eligible, err := store.ListEligible(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(eligible))
	for _, c := range eligible {
		ids = append(ids, c.ID)
	}
	// Stable registration order
	assert.Equal(t, []string{"running", "created", "ok"}, ids)
}

func TestCampaignStore_RegisterReplacesInPlace(t *testing.T) {
	t.Parallel()

	store := NewCampaignStore([]models.Campaign{
		{ID: "cmp-1", Status: models.CampaignRunning, VendorTracked: true},
	})
	ctx := context.Background()

	require.NoError(t, store.Register(ctx, models.Campaign{ID: "cmp-1", Status: models.CampaignStopped, VendorTracked: true}))

	eligible, err := store.ListEligible(ctx)
	require.NoError(t, err)
	assert.Empty(t, eligible)
}
