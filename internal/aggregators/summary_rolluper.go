package aggregators

import (
	"fmt"
	"sort"
	"time"

	"traffic-metrics/internal/models"
)

//go:generate mockgen -source=summary_rolluper.go -destination=./mocks/summary_rolluper_mock.go -package=mocks
type SummaryRolluper interface {
	// Rollup mutates summary by folding in one sample. baseline is the most
	// recent sample strictly before the summary's window start (nil if
	// none); it is consulted only when the summary absorbs its first
	// sample. now drives completion and data-quality bookkeeping.
	Rollup(summary *models.WindowSummary, sample *models.RawSample, baseline *models.RawSample, now time.Time) error
}

type summaryRolluper struct{}

func NewSummaryRolluper() SummaryRolluper {
	return &summaryRolluper{}
}

func (a *summaryRolluper) Rollup(summary *models.WindowSummary, sample *models.RawSample, baseline *models.RawSample, now time.Time) error {
	rng, ok := models.TimeRangeByKey(summary.RangeKey)
	if !ok {
		return fmt.Errorf("unknown range key %q", summary.RangeKey)
	}
	if summary.CampaignID != sample.CampaignID {
		return fmt.Errorf("campaignID mismatch: summary=%q, sample=%q", summary.CampaignID, sample.CampaignID)
	}
	ts := sample.Timestamp.UTC()
	if ts.Before(summary.WindowStart) || !ts.Before(summary.WindowEnd) {
		return fmt.Errorf("sample timestamp %v outside window [%v, %v)", ts, summary.WindowStart, summary.WindowEnd)
	}

	if summary.IsNew() {
		a.initWindowState(summary, sample, baseline)
	}

	prev := summary.LastSample

	// Totals are deltas against the window baseline, clamped at zero so a
	// vendor-side counter reset never produces negative traffic.
	summary.TotalHits = clampDelta(sample.Hits, summary.Baseline.Hits)
	summary.TotalVisits = clampDelta(sample.Visits, summary.Baseline.Visits)
	summary.TotalViews = clampDelta(sample.Views, summary.Baseline.Views)
	summary.TotalUniqueVisitors = clampDelta(sample.UniqueVisitors, summary.Baseline.UniqueVisitors)

	a.updateTimeWeightedAverages(summary, sample, prev, ts)
	a.updateSpeedExtrema(summary, sample)
	a.updatePeakRates(summary, sample, prev, ts)
	a.mergeCountryBreakdown(summary, sample)

	summary.TimeSeriesData = append(summary.TimeSeriesData, models.TimeSeriesPoint{
		Timestamp: ts,
		Hits:      sample.Hits,
		Visits:    sample.Visits,
		Speed:     sample.Speed,
	})
	if limit := rng.TimeSeriesCap(); len(summary.TimeSeriesData) > limit {
		summary.TimeSeriesData = summary.TimeSeriesData[len(summary.TimeSeriesData)-limit:]
	}

	summary.LastSample = &models.SamplePoint{
		Timestamp:       ts,
		Hits:            sample.Hits,
		Visits:          sample.Visits,
		Speed:           sample.Speed,
		BounceRate:      sample.BounceRate,
		SessionDuration: sample.AvgSessionDuration,
	}

	summary.DataPointsCount++
	completeness := float64(summary.DataPointsCount) / float64(rng.ExpectedSampleCount())
	if completeness > 1 {
		completeness = 1
	}
	summary.DataQuality = models.QualityFromCompleteness(completeness)
	summary.CompletionPercentage = completionPercentage(summary.WindowStart, rng.Duration(), now)
	summary.LastUpdated = now.UTC()
	summary.IsComplete = now.After(summary.WindowEnd)

	return nil
}

// initWindowState establishes the window baseline and the synthetic
// previous point on the first sample of a bucket. With a pre-window
// baseline the synthetic point sits at windowStart carrying the baseline's
// values; without one the first sample is its own baseline and the window
// starts from zero deltas.
func (a *summaryRolluper) initWindowState(summary *models.WindowSummary, sample *models.RawSample, baseline *models.RawSample) {
	if baseline != nil {
		counters := baseline.Counters()
		summary.Baseline = &counters
		summary.LastSample = &models.SamplePoint{
			Timestamp:       summary.WindowStart,
			Hits:            baseline.Hits,
			Visits:          baseline.Visits,
			Speed:           baseline.Speed,
			BounceRate:      baseline.BounceRate,
			SessionDuration: baseline.AvgSessionDuration,
		}
		summary.MaxSpeed = baseline.Speed
		summary.MinSpeed = baseline.Speed
		return
	}

	counters := sample.Counters()
	summary.Baseline = &counters
	summary.MaxSpeed = sample.Speed
	summary.MinSpeed = sample.Speed
}

// updateTimeWeightedAverages integrates the previous point's values over
// [prev.Timestamp, ts) into the running weighted sums. With no elapsed
// weight yet, averages track the current sample directly.
func (a *summaryRolluper) updateTimeWeightedAverages(summary *models.WindowSummary, sample *models.RawSample, prev *models.SamplePoint, ts time.Time) {
	if prev != nil {
		weightMs := float64(ts.Sub(prev.Timestamp).Milliseconds())
		if weightMs > 0 {
			summary.SpeedWeightedSum += prev.Speed * weightMs
			summary.BounceWeightedSum += prev.BounceRate * weightMs
			summary.SessionWeightedSum += prev.SessionDuration * weightMs
			summary.WeightMs += weightMs
		}
	}

	if summary.WeightMs > 0 {
		summary.AvgSpeed = summary.SpeedWeightedSum / summary.WeightMs
		summary.AvgBounceRate = summary.BounceWeightedSum / summary.WeightMs
		summary.AvgSessionDuration = summary.SessionWeightedSum / summary.WeightMs
	} else {
		summary.AvgSpeed = sample.Speed
		summary.AvgBounceRate = sample.BounceRate
		summary.AvgSessionDuration = sample.AvgSessionDuration
	}
}

func (a *summaryRolluper) updateSpeedExtrema(summary *models.WindowSummary, sample *models.RawSample) {
	if sample.Speed > summary.MaxSpeed {
		summary.MaxSpeed = sample.Speed
	}
	if sample.Speed < summary.MinSpeed {
		summary.MinSpeed = sample.Speed
	}
}

// updatePeakRates computes per-minute hit/visit rates for the pair
// (previous point, current sample) and keeps the maxima. Sub-minute gaps
// are clamped to one second's worth of a minute to bound the rate.
func (a *summaryRolluper) updatePeakRates(summary *models.WindowSummary, sample *models.RawSample, prev *models.SamplePoint, ts time.Time) {
	if prev == nil {
		return
	}
	minutes := ts.Sub(prev.Timestamp).Minutes()
	if minutes < 1.0/60 {
		minutes = 1.0 / 60
	}

	hitsRate := float64(clampDelta(sample.Hits, prev.Hits)) / minutes
	if hitsRate > summary.PeakHitsPerMinute {
		summary.PeakHitsPerMinute = hitsRate
	}
	visitsRate := float64(clampDelta(sample.Visits, prev.Visits)) / minutes
	if visitsRate > summary.PeakVisitsPerMinute {
		summary.PeakVisitsPerMinute = visitsRate
	}
}

// mergeCountryBreakdown replaces each country's counters with the latest
// cumulative values, tracking growth against the previous poll, then
// recomputes percentages and the top-10 ranking. First-seen order is kept
// so ranking ties resolve deterministically.
func (a *summaryRolluper) mergeCountryBreakdown(summary *models.WindowSummary, sample *models.RawSample) {
	if len(sample.CountryBreakdown) == 0 {
		return
	}

	index := make(map[string]int, len(summary.CountryBreakdown))
	for i, c := range summary.CountryBreakdown {
		index[c.Country] = i
	}

	for _, stat := range sample.CountryBreakdown {
		if i, ok := index[stat.Country]; ok {
			prev := summary.CountryBreakdown[i]
			growth := 0.0
			if prev.Hits > 0 {
				growth = float64(stat.Hits) / float64(prev.Hits) * 100
			}
			summary.CountryBreakdown[i] = models.CountryAccum{
				Country: stat.Country,
				Hits:    stat.Hits,
				Visits:  stat.Visits,
				Views:   stat.Views,
				Growth:  growth,
			}
			continue
		}
		index[stat.Country] = len(summary.CountryBreakdown)
		summary.CountryBreakdown = append(summary.CountryBreakdown, models.CountryAccum{
			Country: stat.Country,
			Hits:    stat.Hits,
			Visits:  stat.Visits,
			Views:   stat.Views,
		})
	}

	totalHits := sample.Hits
	if totalHits <= 0 {
		for _, c := range summary.CountryBreakdown {
			totalHits += c.Hits
		}
	}
	for i := range summary.CountryBreakdown {
		if totalHits > 0 {
			summary.CountryBreakdown[i].Percentage = float64(summary.CountryBreakdown[i].Hits) / float64(totalHits) * 100
		} else {
			summary.CountryBreakdown[i].Percentage = 0
		}
	}

	summary.TopCountries = RankCountries(summary.CountryBreakdown, 10)
}

// RankCountries returns the top n countries by hits descending, ties broken
// by first-seen order, with 1-based ranks.
func RankCountries(breakdown []models.CountryAccum, n int) []models.RankedCountry {
	ranked := make([]models.CountryAccum, len(breakdown))
	copy(ranked, breakdown)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Hits > ranked[j].Hits
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	top := make([]models.RankedCountry, len(ranked))
	for i, c := range ranked {
		top[i] = models.RankedCountry{
			Rank:       i + 1,
			Country:    c.Country,
			Hits:       c.Hits,
			Percentage: c.Percentage,
		}
	}
	return top
}

func clampDelta(latest, baseline int64) int64 {
	if latest <= baseline {
		return 0
	}
	return latest - baseline
}

func completionPercentage(windowStart time.Time, duration time.Duration, now time.Time) float64 {
	elapsed := now.Sub(windowStart)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= duration {
		return 100
	}
	return float64(elapsed) / float64(duration) * 100
}
