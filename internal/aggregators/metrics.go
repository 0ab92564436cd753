package aggregators

import (
	"traffic-metrics/internal/shared/metrics"
)

// metricWindowSummaryCreatedTotal counts window summaries created lazily on
// the first sample of a (campaign, range, windowStart) bucket. Subsequent
// samples update the existing summary and do not increment this metric.
//
// The range label is the range key ("1m", "15m", "1h", "7d", "30d").
var (
	metricWindowSummaryCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "window_summary_created_total",
		},
		[]string{"range"},
	)

	metricSampleRollupTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "sample_rollup_total",
		},
		[]string{"range", "status"},
	)
)
