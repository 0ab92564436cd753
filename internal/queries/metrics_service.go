package queries

import (
	"context"
	"time"

	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/svcerrors"
	"traffic-metrics/internal/stores"
)

//go:generate mockgen -source=metrics_service.go -destination=./mocks/metrics_service_mock.go -package=mocks
type MetricsService interface {
	// GetCurrentMetrics returns one summary per configured range, keyed by
	// range key. Short ranges are computed on demand over a rolling window;
	// long ranges read the stored calendar-aligned summary.
	GetCurrentMetrics(ctx context.Context, campaignID string) (map[string]*models.WindowSummary, *svcerrors.ServiceError)
	// GetSummaryHistory returns up to limit stored summaries for the range,
	// ascending by window start (limit <= 0 means all).
	GetSummaryHistory(ctx context.Context, campaignID string, rangeKey string, limit int) ([]*models.WindowSummary, *svcerrors.ServiceError)
}

// onDemandRangeKeys are the ranges answered from raw samples: freshness
// matters more than amortized cost at dashboard-polling granularity. The
// remaining ranges read stored summaries, where incremental aggregation is
// cheaper than recomputing over a week or month of samples.
var onDemandRangeKeys = map[string]bool{
	models.RangeKeyMinute:  true,
	models.RangeKeyQuarter: true,
	models.RangeKeyHour:    true,
}

type metricsService struct {
	onDemandCalculator OnDemandCalculator
	rawSampleStore     stores.RawSampleStore
	summaryStore       stores.WindowSummaryStore
	campaignStore      stores.CampaignStore
	now                func() time.Time
}

func NewMetricsService(onDemandCalculator OnDemandCalculator, rawSampleStore stores.RawSampleStore, summaryStore stores.WindowSummaryStore, campaignStore stores.CampaignStore) MetricsService {
	return &metricsService{
		onDemandCalculator: onDemandCalculator,
		rawSampleStore:     rawSampleStore,
		summaryStore:       summaryStore,
		campaignStore:      campaignStore,
		now:                time.Now,
	}
}

func (s *metricsService) GetCurrentMetrics(ctx context.Context, campaignID string) (map[string]*models.WindowSummary, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	if svcErr := s.requireCampaign(ctx, campaignID); svcErr != nil {
		return nil, svcErr
	}

	now := s.now().UTC()
	result := make(map[string]*models.WindowSummary, len(models.AllTimeRanges()))
	for _, rng := range models.AllTimeRanges() {
		summary, svcErr := s.currentSummary(ctx, campaignID, rng, now)
		if svcErr != nil {
			logger.Error().Err(svcErr).
				Str(loggers.FieldCampaignID, campaignID).
				Str(loggers.FieldRangeKey, rng.Key).
				Msg("failed to compute current metrics for range")
			return nil, svcErr
		}
		result[rng.Key] = summary
	}
	return result, nil
}

func (s *metricsService) currentSummary(ctx context.Context, campaignID string, rng models.TimeRange, now time.Time) (*models.WindowSummary, *svcerrors.ServiceError) {
	if !onDemandRangeKeys[rng.Key] {
		windowStart, _ := rng.Window(now)
		summary, err := s.summaryStore.Get(ctx, campaignID, rng, windowStart)
		if err != nil {
			return nil, errInternalSummaryQueryFailed(err)
		}
		metricCurrentMetricsRequestsTotal.WithLabelValues(rng.Key, "stored").Inc()
		return summary, nil
	}

	windowStart := now.Add(-rng.Duration())
	samples, err := s.rawSampleStore.QueryRange(ctx, campaignID, windowStart, now)
	if err != nil {
		return nil, errInternalSampleQueryFailed(err)
	}
	baseline, err := s.rawSampleStore.LatestBefore(ctx, campaignID, windowStart)
	if err != nil {
		return nil, errInternalSampleQueryFailed(err)
	}

	metricCurrentMetricsRequestsTotal.WithLabelValues(rng.Key, "ondemand").Inc()
	return s.onDemandCalculator.Calculate(campaignID, rng, samples, baseline, now), nil
}

func (s *metricsService) GetSummaryHistory(ctx context.Context, campaignID string, rangeKey string, limit int) ([]*models.WindowSummary, *svcerrors.ServiceError) {
	if _, ok := models.TimeRangeByKey(rangeKey); !ok {
		return nil, errUnknownRangeKey(rangeKey)
	}
	if limit < 0 {
		return nil, errInvalidLimit(limit)
	}
	if svcErr := s.requireCampaign(ctx, campaignID); svcErr != nil {
		return nil, svcErr
	}

	history, err := s.summaryStore.History(ctx, campaignID, rangeKey, limit)
	if err != nil {
		return nil, errInternalSummaryQueryFailed(err)
	}
	metricSummaryHistoryRequestsTotal.WithLabelValues(rangeKey).Inc()
	return history, nil
}

func (s *metricsService) requireCampaign(ctx context.Context, campaignID string) *svcerrors.ServiceError {
	exists, err := s.campaignStore.Exists(ctx, campaignID)
	if err != nil {
		return errInternalCampaignLookupFailed(err)
	}
	if !exists {
		return errCampaignNotFound(campaignID)
	}
	return nil
}
