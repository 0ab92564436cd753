package ingestors

import (
	"traffic-metrics/internal/shared/metrics"
)

// metricSampleIngestedTotal counts recorded samples by collection source
// ("auto" for collector fetches, "manual" for API submissions) and error
// code (empty on success).
var (
	metricSampleIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "sample_ingested_total",
		},
		[]string{"source", metrics.FieldErrorCode},
	)
)
