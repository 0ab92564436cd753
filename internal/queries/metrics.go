package queries

import (
	"traffic-metrics/internal/shared/metrics"
)

// metricCurrentMetricsRequestsTotal counts getCurrentMetrics computations by
// outcome. The source label distinguishes the on-demand rolling calculation
// from stored-summary reads.
var (
	metricCurrentMetricsRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "current_metrics_requests_total",
		},
		[]string{"range", "source"},
	)

	metricSummaryHistoryRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "summary_history_requests_total",
		},
		[]string{"range"},
	)
)
