package streams

import (
	"traffic-metrics/internal/shared/metrics"
)

var (
	streamSampleRecorded              = "sample_recorded"
	metricSampleRecordedProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "sample_recorded_published_total",
		},
		[]string{"stream_id"},
	)

	metricSampleRecordedConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "sample_recorded_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
