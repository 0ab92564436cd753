package queries

import (
	"time"

	"traffic-metrics/internal/aggregators"
	"traffic-metrics/internal/models"
)

// maxOnDemandSeriesPoints bounds the time-series payload of on-demand
// summaries.
const maxOnDemandSeriesPoints = 100

//go:generate mockgen -source=ondemand_calculator.go -destination=./mocks/ondemand_calculator_mock.go -package=mocks
type OnDemandCalculator interface {
	// Calculate builds a summary for the rolling window [now - range, now]
	// from the in-window samples (ascending) and the pre-window baseline
	// (nil if none). Pure: no storage access.
	Calculate(campaignID string, rng models.TimeRange, samples []*models.RawSample, baseline *models.RawSample, now time.Time) *models.WindowSummary
}

type onDemandCalculator struct{}

func NewOnDemandCalculator() OnDemandCalculator {
	return &onDemandCalculator{}
}

func (c *onDemandCalculator) Calculate(campaignID string, rng models.TimeRange, samples []*models.RawSample, baseline *models.RawSample, now time.Time) *models.WindowSummary {
	now = now.UTC()
	windowStart := now.Add(-rng.Duration())

	summary := &models.WindowSummary{
		CampaignID:           campaignID,
		RangeKey:             rng.Key,
		WindowStart:          windowStart,
		WindowEnd:            now,
		DataQuality:          models.QualityPoor,
		CompletionPercentage: 100,
		LastUpdated:          now,
	}
	if len(samples) == 0 {
		return summary
	}

	latest := samples[len(samples)-1]
	baselineForDiff := baseline
	if baselineForDiff == nil {
		baselineForDiff = samples[0]
	}
	summary.TotalHits = deltaOrZero(latest.Hits, baselineForDiff.Hits)
	summary.TotalVisits = deltaOrZero(latest.Visits, baselineForDiff.Visits)
	summary.TotalViews = deltaOrZero(latest.Views, baselineForDiff.Views)
	summary.TotalUniqueVisitors = deltaOrZero(latest.UniqueVisitors, baselineForDiff.UniqueVisitors)

	c.integrateSequence(summary, samples, baseline, windowStart, now)
	c.applyCountrySnapshot(summary, latest)
	summary.TimeSeriesData = downSample(samples, maxOnDemandSeriesPoints)

	summary.DataPointsCount = len(samples)
	completeness := float64(len(samples)) / float64(rng.ExpectedSampleCount())
	if completeness > 1 {
		completeness = 1
	}
	summary.DataQuality = models.QualityFromCompleteness(completeness)

	return summary
}

// integrateSequence walks the in-window samples plus the synthetic baseline
// point at windowStart, accumulating time-weighted sums, speed extrema and
// peak per-minute rates, then extends the last sample's values forward to
// now. Vendor rates are point-in-time and assumed constant until superseded.
func (c *onDemandCalculator) integrateSequence(summary *models.WindowSummary, samples []*models.RawSample, baseline *models.RawSample, windowStart, now time.Time) {
	var prev *models.SamplePoint
	if baseline != nil {
		prev = &models.SamplePoint{
			Timestamp:       windowStart,
			Hits:            baseline.Hits,
			Visits:          baseline.Visits,
			Speed:           baseline.Speed,
			BounceRate:      baseline.BounceRate,
			SessionDuration: baseline.AvgSessionDuration,
		}
		summary.MaxSpeed = baseline.Speed
		summary.MinSpeed = baseline.Speed
	} else {
		summary.MaxSpeed = samples[0].Speed
		summary.MinSpeed = samples[0].Speed
	}

	var weightedSpeed, weightedBounce, weightedSession, weightMs float64
	for _, sample := range samples {
		ts := sample.Timestamp.UTC()
		if prev != nil {
			ms := float64(ts.Sub(prev.Timestamp).Milliseconds())
			if ms > 0 {
				weightedSpeed += prev.Speed * ms
				weightedBounce += prev.BounceRate * ms
				weightedSession += prev.SessionDuration * ms
				weightMs += ms
			}

			minutes := ts.Sub(prev.Timestamp).Minutes()
			if minutes < 1.0/60 {
				minutes = 1.0 / 60
			}
			if rate := float64(deltaOrZero(sample.Hits, prev.Hits)) / minutes; rate > summary.PeakHitsPerMinute {
				summary.PeakHitsPerMinute = rate
			}
			if rate := float64(deltaOrZero(sample.Visits, prev.Visits)) / minutes; rate > summary.PeakVisitsPerMinute {
				summary.PeakVisitsPerMinute = rate
			}
		}

		if sample.Speed > summary.MaxSpeed {
			summary.MaxSpeed = sample.Speed
		}
		if sample.Speed < summary.MinSpeed {
			summary.MinSpeed = sample.Speed
		}

		prev = &models.SamplePoint{
			Timestamp:       ts,
			Hits:            sample.Hits,
			Visits:          sample.Visits,
			Speed:           sample.Speed,
			BounceRate:      sample.BounceRate,
			SessionDuration: sample.AvgSessionDuration,
		}
	}

	if ms := float64(now.Sub(prev.Timestamp).Milliseconds()); ms > 0 {
		weightedSpeed += prev.Speed * ms
		weightedBounce += prev.BounceRate * ms
		weightedSession += prev.SessionDuration * ms
		weightMs += ms
	}

	if weightMs > 0 {
		summary.AvgSpeed = weightedSpeed / weightMs
		summary.AvgBounceRate = weightedBounce / weightMs
		summary.AvgSessionDuration = weightedSession / weightMs
	} else {
		summary.AvgSpeed = prev.Speed
		summary.AvgBounceRate = prev.BounceRate
		summary.AvgSessionDuration = prev.SessionDuration
	}
}

// applyCountrySnapshot takes the breakdown from the latest sample only.
// Growth stays zero here: there is no prior-window baseline to compare
// against on this path.
func (c *onDemandCalculator) applyCountrySnapshot(summary *models.WindowSummary, latest *models.RawSample) {
	if len(latest.CountryBreakdown) == 0 {
		return
	}

	breakdown := make([]models.CountryAccum, 0, len(latest.CountryBreakdown))
	for _, stat := range latest.CountryBreakdown {
		accum := models.CountryAccum{
			Country: stat.Country,
			Hits:    stat.Hits,
			Visits:  stat.Visits,
			Views:   stat.Views,
		}
		if latest.Hits > 0 {
			accum.Percentage = float64(stat.Hits) / float64(latest.Hits) * 100
		}
		breakdown = append(breakdown, accum)
	}
	summary.CountryBreakdown = breakdown
	summary.TopCountries = aggregators.RankCountries(breakdown, 10)
}

// downSample keeps at most limit points by striding through the samples and
// always including the final one.
func downSample(samples []*models.RawSample, limit int) []models.TimeSeriesPoint {
	stride := 1
	if len(samples) > limit {
		stride = (len(samples) + limit - 1) / limit
	}

	points := make([]models.TimeSeriesPoint, 0, limit)
	for i := 0; i < len(samples); i += stride {
		points = append(points, seriesPoint(samples[i]))
	}
	if last := seriesPoint(samples[len(samples)-1]); points[len(points)-1] != last {
		if len(points) == limit {
			points[len(points)-1] = last
		} else {
			points = append(points, last)
		}
	}
	return points
}

func seriesPoint(sample *models.RawSample) models.TimeSeriesPoint {
	return models.TimeSeriesPoint{
		Timestamp: sample.Timestamp.UTC(),
		Hits:      sample.Hits,
		Visits:    sample.Visits,
		Speed:     sample.Speed,
	}
}

func deltaOrZero(latest, baseline int64) int64 {
	if latest <= baseline {
		return 0
	}
	return latest - baseline
}
