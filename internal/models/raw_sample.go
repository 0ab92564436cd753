package models

import "time"

// CollectionSource records how a sample entered the system.
type CollectionSource string

const (
	SourceAuto   CollectionSource = "auto"
	SourceManual CollectionSource = "manual"
)

// CountryStat is the vendor's cumulative per-country counters at one poll.
type CountryStat struct {
	Country string `json:"country"`
	Hits    int64  `json:"hits"`
	Visits  int64  `json:"visits"`
	Views   int64  `json:"views"`
}

// RawSample is one polled snapshot of a campaign's vendor counters.
// Hits, Visits, Views and UniqueVisitors are cumulative since campaign
// inception and only decrease on vendor-side resets; all delta math clamps
// at zero to tolerate those. A sample is immutable once stored.
type RawSample struct {
	CampaignID         string           `json:"campaignId"`
	Timestamp          time.Time        `json:"timestamp"`
	Hits               int64            `json:"hits"`
	Visits             int64            `json:"visits"`
	Views              int64            `json:"views"`
	UniqueVisitors     int64            `json:"uniqueVisitors"`
	Speed              float64          `json:"speed"`
	BounceRate         float64          `json:"bounceRate"`
	AvgSessionDuration float64          `json:"avgSessionDuration"`
	CountryBreakdown   []CountryStat    `json:"countryBreakdown,omitempty"`
	ProjectStatus      string           `json:"projectStatus,omitempty"`
	CollectionSource   CollectionSource `json:"collectionSource"`
}

// Counters extracts the cumulative counter tuple used for delta math.
func (s *RawSample) Counters() CounterSnapshot {
	return CounterSnapshot{
		Hits:           s.Hits,
		Visits:         s.Visits,
		Views:          s.Views,
		UniqueVisitors: s.UniqueVisitors,
	}
}
