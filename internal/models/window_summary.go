package models

import "time"

// DataQuality is a coarse completeness score derived from observed vs
// expected sample density in a window.
type DataQuality string

const (
	QualityExcellent DataQuality = "excellent"
	QualityGood      DataQuality = "good"
	QualityFair      DataQuality = "fair"
	QualityPoor      DataQuality = "poor"
)

// QualityFromCompleteness maps a 0..1 completeness ratio to a quality tier.
func QualityFromCompleteness(completeness float64) DataQuality {
	switch {
	case completeness >= 0.9:
		return QualityExcellent
	case completeness >= 0.7:
		return QualityGood
	case completeness >= 0.5:
		return QualityFair
	default:
		return QualityPoor
	}
}

// CounterSnapshot is the cumulative counter tuple at one point in time.
type CounterSnapshot struct {
	Hits           int64 `json:"hits"`
	Visits         int64 `json:"visits"`
	Views          int64 `json:"views"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
}

// CountryAccum is one country's latest cumulative counters within a window,
// with its share of total hits and growth relative to the previous poll.
type CountryAccum struct {
	Country    string  `json:"country"`
	Hits       int64   `json:"hits"`
	Visits     int64   `json:"visits"`
	Views      int64   `json:"views"`
	Percentage float64 `json:"percentage"`
	Growth     float64 `json:"growth"`
}

// RankedCountry is one entry of a summary's top-10 country ranking.
type RankedCountry struct {
	Rank       int     `json:"rank"`
	Country    string  `json:"country"`
	Hits       int64   `json:"hits"`
	Percentage float64 `json:"percentage"`
}

// TimeSeriesPoint is one chartable observation.
type TimeSeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Hits      int64     `json:"hits"`
	Visits    int64     `json:"visits"`
	Speed     float64   `json:"speed"`
}

// SamplePoint is the per-window running state needed to process the next
// sample incrementally: the previous observation's timestamp, counters and
// behavioral values.
type SamplePoint struct {
	Timestamp       time.Time `json:"timestamp"`
	Hits            int64     `json:"hits"`
	Visits          int64     `json:"visits"`
	Speed           float64   `json:"speed"`
	BounceRate      float64   `json:"bounceRate"`
	SessionDuration float64   `json:"sessionDuration"`
}

// WindowSummary is the aggregated state for one (campaign, range,
// windowStart) bucket — the natural uniqueness key. Totals are deltas since
// the window began, computed against the pre-window baseline, so stored
// summaries and on-demand queries agree numerically. Created lazily on the
// first sample in the bucket, mutated per sample, immutable once complete.
type WindowSummary struct {
	CampaignID  string    `json:"campaignId"`
	RangeKey    string    `json:"rangeKey"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`

	TotalHits           int64 `json:"totalHits"`
	TotalVisits         int64 `json:"totalVisits"`
	TotalViews          int64 `json:"totalViews"`
	TotalUniqueVisitors int64 `json:"totalUniqueVisitors"`

	AvgSpeed float64 `json:"avgSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`
	MinSpeed float64 `json:"minSpeed"`

	AvgBounceRate      float64 `json:"avgBounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`

	PeakHitsPerMinute   float64 `json:"peakHitsPerMinute"`
	PeakVisitsPerMinute float64 `json:"peakVisitsPerMinute"`

	CountryBreakdown []CountryAccum    `json:"countryBreakdown,omitempty"`
	TopCountries     []RankedCountry   `json:"topCountries,omitempty"`
	TimeSeriesData   []TimeSeriesPoint `json:"timeSeriesData,omitempty"`

	DataPointsCount      int         `json:"dataPointsCount"`
	DataQuality          DataQuality `json:"dataQuality"`
	CompletionPercentage float64     `json:"completionPercentage"`
	LastUpdated          time.Time   `json:"lastUpdated"`
	IsComplete           bool        `json:"isComplete"`

	// Incremental-update state, persisted alongside the aggregates.
	Baseline   *CounterSnapshot `json:"baseline,omitempty"`
	LastSample *SamplePoint     `json:"lastSample,omitempty"`

	SpeedWeightedSum   float64 `json:"speedWeightedSum"`
	BounceWeightedSum  float64 `json:"bounceWeightedSum"`
	SessionWeightedSum float64 `json:"sessionWeightedSum"`
	WeightMs           float64 `json:"weightMs"`
}

// NewEmptyWindowSummary creates the zero-state summary for a bucket.
func NewEmptyWindowSummary(campaignID string, rng TimeRange, windowStart time.Time) *WindowSummary {
	return &WindowSummary{
		CampaignID:  campaignID,
		RangeKey:    rng.Key,
		WindowStart: windowStart,
		WindowEnd:   windowStart.Add(rng.Duration()),
		DataQuality: QualityPoor,
	}
}

// IsNew reports whether the summary has absorbed no samples yet.
func (s *WindowSummary) IsNew() bool {
	return s.DataPointsCount == 0
}
