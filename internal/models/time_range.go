package models

import (
	"time"
)

// TimeRange is one of the fixed aggregation granularities. Window alignment
// follows calendar semantics for the configured ranges so summaries are
// comparable across campaigns and chartable on calendar axes; any other
// duration falls back to a rolling window.
type TimeRange struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Seconds int64  `json:"seconds"`
}

const (
	RangeKeyMinute  = "1m"
	RangeKeyQuarter = "15m"
	RangeKeyHour    = "1h"
	RangeKeyWeek    = "7d"
	RangeKeyMonth   = "30d"
)

var timeRanges = []TimeRange{
	{Key: RangeKeyMinute, Label: "1 minute", Seconds: 60},
	{Key: RangeKeyQuarter, Label: "15 minutes", Seconds: 900},
	{Key: RangeKeyHour, Label: "1 hour", Seconds: 3600},
	{Key: RangeKeyWeek, Label: "7 days", Seconds: 604800},
	{Key: RangeKeyMonth, Label: "30 days", Seconds: 2592000},
}

// AllTimeRanges returns the configured ranges in ascending duration order.
func AllTimeRanges() []TimeRange {
	out := make([]TimeRange, len(timeRanges))
	copy(out, timeRanges)
	return out
}

// TimeRangeByKey looks up a range by its key ("1m", "15m", "1h", "7d", "30d").
func TimeRangeByKey(key string) (TimeRange, bool) {
	for _, r := range timeRanges {
		if r.Key == key {
			return r, true
		}
	}
	return TimeRange{}, false
}

func (r TimeRange) Duration() time.Duration {
	return time.Duration(r.Seconds) * time.Second
}

// Window maps t to its aligned [start, end) bucket. Alignment is computed
// in UTC. end is always start + Seconds, including the month bucket.
func (r TimeRange) Window(t time.Time) (time.Time, time.Time) {
	u := t.UTC()

	var start time.Time
	switch r.Seconds {
	case 60:
		start = u.Truncate(time.Minute)
	case 900:
		start = u.Truncate(15 * time.Minute)
	case 3600:
		start = u.Truncate(time.Hour)
	case 604800:
		day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
		// Monday-based week
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
	case 2592000:
		start = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		start = u.Add(-r.Duration())
	}

	return start, start.Add(r.Duration())
}

// TimeSeriesCap is the FIFO cap on a summary's stored time series.
func (r TimeRange) TimeSeriesCap() int {
	switch r.Seconds {
	case 60:
		return 60
	case 900:
		return 180
	case 3600:
		return 360
	case 604800:
		return 1008
	case 2592000:
		return 1440
	default:
		return 100
	}
}

// ExpectedSampleCount is the sample count a fully covered window would hold
// at the assumed one-sample-per-minute collection cadence.
func (r TimeRange) ExpectedSampleCount() int {
	n := r.Seconds / 60
	if n < 1 {
		return 1
	}
	return int(n)
}

// FormatWindowStart renders a window start as a sortable storage key segment.
func (r TimeRange) FormatWindowStart(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
