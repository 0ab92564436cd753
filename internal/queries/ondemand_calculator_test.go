package queries

import (
	"testing"
	"time"

	"traffic-metrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, key string) models.TimeRange {
	t.Helper()
	rng, ok := models.TimeRangeByKey(key)
	require.True(t, ok)
	return rng
}

func rollingSample(ts time.Time, hits int64, speed float64) *models.RawSample {
	return &models.RawSample{
		CampaignID: "cmp-1",
		Timestamp:  ts,
		Hits:       hits,
		Visits:     hits / 2,
		Speed:      speed,
	}
}

func TestOnDemandCalculator_EmptyWindow(t *testing.T) {
	t.Parallel()

	calc := NewOnDemandCalculator()
	now := time.Date(2026, 3, 11, 14, 37, 0, 0, time.UTC)

	summary := calc.Calculate("cmp-1", mustRange(t, "1h"), nil, nil, now)

	assert.Zero(t, summary.TotalHits)
	assert.Zero(t, summary.DataPointsCount)
	assert.Equal(t, models.QualityPoor, summary.DataQuality)
	assert.InDelta(t, 100.0, summary.CompletionPercentage, 0.001)
	assert.Equal(t, now.Add(-time.Hour), summary.WindowStart)
	assert.Equal(t, now, summary.WindowEnd)
	assert.Empty(t, summary.TimeSeriesData)
}

func TestOnDemandCalculator_DeltasAgainstBaseline(t *testing.T) {
	t.Parallel()

	calc := NewOnDemandCalculator()
	now := time.Date(2026, 3, 11, 14, 37, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	baseline := rollingSample(windowStart.Add(-5*time.Minute), 1000, 3)
	samples := []*models.RawSample{
		rollingSample(windowStart.Add(10*time.Minute), 1040, 4),
		rollingSample(windowStart.Add(40*time.Minute), 1100, 6),
	}

	summary := calc.Calculate("cmp-1", mustRange(t, "1h"), samples, baseline, now)

	assert.Equal(t, int64(100), summary.TotalHits)
	assert.Equal(t, int64(50), summary.TotalVisits)
	assert.Equal(t, 2, summary.DataPointsCount)
	// Peak over (windowStart synthetic, +10m): 40 hits / 10 min
	assert.InDelta(t, 4.0, summary.PeakHitsPerMinute, 0.001)
	assert.Equal(t, 6.0, summary.MaxSpeed)
	assert.Equal(t, 3.0, summary.MinSpeed)
	assert.GreaterOrEqual(t, summary.AvgSpeed, summary.MinSpeed)
	assert.LessOrEqual(t, summary.AvgSpeed, summary.MaxSpeed)
}

func TestOnDemandCalculator_NoBaselineUsesFirstSample(t *testing.T) {
	t.Parallel()

	calc := NewOnDemandCalculator()
	now := time.Date(2026, 3, 11, 14, 37, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	samples := []*models.RawSample{
		rollingSample(windowStart.Add(10*time.Minute), 500, 2),
		rollingSample(windowStart.Add(20*time.Minute), 470, 2), // vendor reset
	}

	summary := calc.Calculate("cmp-1", mustRange(t, "1h"), samples, nil, now)

	// latest < baselineForDiff: clamp to zero, never negative
	assert.Zero(t, summary.TotalHits)
	assert.Zero(t, summary.PeakHitsPerMinute)
}

func TestOnDemandCalculator_ExtendsLastValueToNow(t *testing.T) {
	t.Parallel()

	calc := NewOnDemandCalculator()
	now := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	// Speed 2 for 30 minutes, then speed 6 rides out the remaining 30
	// minutes to now.
	samples := []*models.RawSample{
		rollingSample(windowStart, 100, 2),
		rollingSample(windowStart.Add(30*time.Minute), 160, 6),
	}

	summary := calc.Calculate("cmp-1", mustRange(t, "1h"), samples, nil, now)
	assert.InDelta(t, 4.0, summary.AvgSpeed, 0.001)
}

func TestOnDemandCalculator_CountrySnapshotFromLatestSample(t *testing.T) {
	t.Parallel()

	calc := NewOnDemandCalculator()
	now := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	first := rollingSample(windowStart.Add(10*time.Minute), 40, 1)
	first.CountryBreakdown = []models.CountryStat{{Country: "US", Hits: 30}}
	latest := rollingSample(windowStart.Add(30*time.Minute), 60, 1)
	latest.CountryBreakdown = []models.CountryStat{
		{Country: "US", Hits: 45},
		{Country: "DE", Hits: 15},
	}

	summary := calc.Calculate("cmp-1", mustRange(t, "1h"), []*models.RawSample{first, latest}, nil, now)

	require.Len(t, summary.CountryBreakdown, 2)
	assert.Equal(t, int64(45), summary.CountryBreakdown[0].Hits)
	assert.InDelta(t, 75.0, summary.CountryBreakdown[0].Percentage, 0.001)
	assert.Zero(t, summary.CountryBreakdown[0].Growth)

	var percentageSum float64
	for _, c := range summary.CountryBreakdown {
		percentageSum += c.Percentage
	}
	assert.InDelta(t, 100.0, percentageSum, 0.001)
}

func TestOnDemandCalculator_DownSamplesSeries(t *testing.T) {
	t.Parallel()

	calc := NewOnDemandCalculator()
	now := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	windowStart := now.Add(-time.Hour)

	samples := make([]*models.RawSample, 0, 360)
	for i := 0; i < 360; i++ {
		samples = append(samples, rollingSample(windowStart.Add(time.Duration(i)*10*time.Second), int64(i), 1))
	}

	summary := calc.Calculate("cmp-1", mustRange(t, "1h"), samples, nil, now)

	assert.LessOrEqual(t, len(summary.TimeSeriesData), 100)
	// The final sample always survives down-sampling
	last := summary.TimeSeriesData[len(summary.TimeSeriesData)-1]
	assert.Equal(t, int64(359), last.Hits)
}

func TestDownSample_BoundsAndFinalPoint(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	for _, n := range []int{1, 99, 100, 101, 200, 1001} {
		samples := make([]*models.RawSample, 0, n)
		for i := 0; i < n; i++ {
			samples = append(samples, rollingSample(base.Add(time.Duration(i)*time.Second), int64(i), 1))
		}
		points := downSample(samples, 100)
		assert.LessOrEqual(t, len(points), 100, "n=%d", n)
		assert.Equal(t, int64(n-1), points[len(points)-1].Hits, "n=%d", n)
	}
}
