package retention

import (
	"traffic-metrics/internal/shared/metrics"
)

var (
	// metricRetentionSweepsTotal counts sweeps by outcome: "ok", "partial"
	// when some per-campaign deletes failed, "error" when the campaign
	// listing failed.
	metricRetentionSweepsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRetention,
			Name:      "sweeps_total",
		},
		[]string{"status"},
	)

	// metricRetentionDeletedTotal counts deleted rows by table kind
	// ("sample" or "summary") and range key (empty for samples).
	metricRetentionDeletedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRetention,
			Name:      "deleted_total",
		},
		[]string{"kind", "range"},
	)
)
