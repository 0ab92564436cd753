package aggregators

import (
	"context"
	"time"

	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/svcerrors"
	"traffic-metrics/internal/stores"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate folds one sample into the summaries of every configured
	// range. Each range updates independently; the first failure is
	// surfaced after the remaining ranges have been attempted.
	Aggregate(ctx context.Context, sample *models.RawSample) *svcerrors.ServiceError
}

type aggregationService struct {
	summaryRolluper SummaryRolluper
	summaryStore    stores.WindowSummaryStore
	rawSampleStore  stores.RawSampleStore
	now             func() time.Time
}

func NewAggregationService(summaryRolluper SummaryRolluper, summaryStore stores.WindowSummaryStore, rawSampleStore stores.RawSampleStore) AggregationService {
	return &aggregationService{
		summaryRolluper: summaryRolluper,
		summaryStore:    summaryStore,
		rawSampleStore:  rawSampleStore,
		now:             time.Now,
	}
}

func (s *aggregationService) Aggregate(ctx context.Context, sample *models.RawSample) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldCampaignID, sample.CampaignID).
		Time("sample_timestamp", sample.Timestamp).
		Msg("started aggregating sample")

	var firstErr *svcerrors.ServiceError
	for _, rng := range models.AllTimeRanges() {
		if err := s.aggregateRange(ctx, sample, rng); err != nil {
			logger.Error().Err(err).
				Str(loggers.FieldCampaignID, sample.CampaignID).
				Str(loggers.FieldRangeKey, rng.Key).
				Msg("failed to aggregate sample into range")
			metricSampleRollupTotal.WithLabelValues(rng.Key, "error").Inc()
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		metricSampleRollupTotal.WithLabelValues(rng.Key, "ok").Inc()
	}
	return firstErr
}

func (s *aggregationService) aggregateRange(ctx context.Context, sample *models.RawSample, rng models.TimeRange) *svcerrors.ServiceError {
	windowStart, _ := rng.Window(sample.Timestamp)

	summary, err := s.summaryStore.Get(ctx, sample.CampaignID, rng, windowStart)
	if err != nil {
		return errInternalSummaryStoreFailed(err)
	}

	isNewSummary := summary.IsNew()
	var baseline *models.RawSample
	if isNewSummary {
		// The baseline anchors the window's delta math: the latest sample
		// strictly before the window began.
		baseline, err = s.rawSampleStore.LatestBefore(ctx, sample.CampaignID, windowStart)
		if err != nil {
			return errInternalSampleStoreFailed(err)
		}
	}

	if err := s.summaryRolluper.Rollup(summary, sample, baseline, s.now()); err != nil {
		return errInternalSummaryRollupFailed(err)
	}
	if err := s.summaryStore.Upsert(ctx, summary); err != nil {
		return errInternalSummaryStoreFailed(err)
	}

	if isNewSummary {
		metricWindowSummaryCreatedTotal.WithLabelValues(rng.Key).Inc()
	}
	return nil
}
