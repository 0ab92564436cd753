package collector

import (
	"traffic-metrics/internal/shared/metrics"
)

var (
	// metricCollectorRunning is 1 while the polling loop is active.
	metricCollectorRunning = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "running",
		},
	)

	// metricCollectorTicksTotal counts ticks by outcome: "ok" for a
	// completed tick, "skipped" when the previous tick was still in
	// flight, "error" when the campaign listing failed.
	metricCollectorTicksTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "ticks_total",
		},
		[]string{"status"},
	)

	// metricCollectorFetchTotal counts vendor fetches by outcome and, on
	// error, the fetch error kind.
	metricCollectorFetchTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "fetch_total",
		},
		[]string{"status", "kind"},
	)
)
