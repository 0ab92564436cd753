package events

import (
	"traffic-metrics/internal/models"
)

// SampleRecordedEvent is published once per accepted RawSample and consumed
// by the aggregation service, which folds the sample into every configured
// range's current window summary.
//
// Events are partitioned by campaign ID. All summary read-modify-writes for
// one campaign therefore run on a single consumer goroutine, which
// serializes updates to the same (campaign, range, windowStart) bucket
// without any locking, while different campaigns aggregate in parallel.
type SampleRecordedEvent struct {
	Sample models.RawSample `json:"sample"`
}

// PartitionKey routes all of a campaign's samples to the same lane.
func (e SampleRecordedEvent) PartitionKey() string {
	return e.Sample.CampaignID
}
