package retention

import (
	"context"
	"sync"
	"time"

	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/ulid"
	"traffic-metrics/internal/stores"
)

const (
	defaultSampleHorizon  = 48 * time.Hour
	defaultSummaryHorizon = 35 * 24 * time.Hour
	defaultSweepInterval  = time.Hour
)

// SweeperConfig sets the retention horizons and how often they are enforced.
// The summary horizon must cover the longest range's lookback plus slack so
// a still-referenced 30d window is never deleted mid-life.
type SweeperConfig struct {
	SampleHorizon  time.Duration
	SummaryHorizon time.Duration
	SweepInterval  time.Duration
}

// SweepSummary reports one sweep's outcome.
type SweepSummary struct {
	SamplesDeleted   int `json:"samplesDeleted"`
	SummariesDeleted int `json:"summariesDeleted"`
	Errors           int `json:"errors"`
}

//go:generate mockgen -source=sweeper.go -destination=./mocks/sweeper_mock.go -package=mocks
type Sweeper interface {
	Start(ctx context.Context)
	Stop()
}

// sweeper periodically drops raw samples and closed window summaries that
// fell out of their retention horizons. All registered campaigns are swept,
// paused and archived ones included: their old data ages out the same way.
type sweeper struct {
	cfg            SweeperConfig
	campaignStore  stores.CampaignStore
	rawSampleStore stores.RawSampleStore
	summaryStore   stores.WindowSummaryStore
	logger         loggers.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}

	now func() time.Time
}

func NewSweeper(cfg SweeperConfig, campaignStore stores.CampaignStore, rawSampleStore stores.RawSampleStore, summaryStore stores.WindowSummaryStore, logger loggers.Logger) Sweeper {
	if cfg.SampleHorizon <= 0 {
		cfg.SampleHorizon = defaultSampleHorizon
	}
	if cfg.SummaryHorizon <= 0 {
		cfg.SummaryHorizon = defaultSummaryHorizon
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	return &sweeper{
		cfg:            cfg,
		campaignStore:  campaignStore,
		rawSampleStore: rawSampleStore,
		summaryStore:   summaryStore,
		logger:         logger,
		stopCh:         make(chan struct{}),
		done:           make(chan struct{}),
		now:            time.Now,
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is
// called. The first sweep fires after one full interval, not immediately,
// so startup is not burdened with a scan.
func (s *sweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.runSweep(ctx)
			}
		}
	}()
}

// Stop waits for the loop to exit. An in-flight sweep finishes first.
func (s *sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.done
}

// runSweep enforces both horizons across every registered campaign. Store
// failures are counted and logged but never abort the sweep: the next
// interval retries everything that is still stale.
func (s *sweeper) runSweep(ctx context.Context) SweepSummary {
	sweepID := ulid.NewULID()
	ctx = s.logger.With().Str(loggers.FieldRequestID, sweepID).Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)

	now := s.now().UTC()
	sampleHorizon := now.Add(-s.cfg.SampleHorizon)
	summaryHorizon := now.Add(-s.cfg.SummaryHorizon)

	campaigns, err := s.campaignStore.List(ctx)
	if err != nil {
		metricRetentionSweepsTotal.WithLabelValues("error").Inc()
		logger.Error().Err(err).Msg("failed to list campaigns for retention sweep")
		return SweepSummary{Errors: 1}
	}

	var summary SweepSummary
	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			break
		}

		deleted, err := s.rawSampleStore.DeleteBefore(ctx, campaign.ID, sampleHorizon)
		if err != nil {
			summary.Errors++
			logger.Error().Err(err).
				Str(loggers.FieldCampaignID, campaign.ID).
				Msg("failed to delete stale samples")
		} else {
			summary.SamplesDeleted += deleted
			metricRetentionDeletedTotal.WithLabelValues("sample", "").Add(float64(deleted))
		}

		for _, rng := range models.AllTimeRanges() {
			deleted, err := s.summaryStore.DeleteBefore(ctx, campaign.ID, rng, summaryHorizon)
			if err != nil {
				summary.Errors++
				logger.Error().Err(err).
					Str(loggers.FieldCampaignID, campaign.ID).
					Str(loggers.FieldRangeKey, rng.Key).
					Msg("failed to delete stale summaries")
				continue
			}
			summary.SummariesDeleted += deleted
			metricRetentionDeletedTotal.WithLabelValues("summary", rng.Key).Add(float64(deleted))
		}
	}

	status := "ok"
	if summary.Errors > 0 {
		status = "partial"
	}
	metricRetentionSweepsTotal.WithLabelValues(status).Inc()
	logger.Info().
		Int("samples_deleted", summary.SamplesDeleted).
		Int("summaries_deleted", summary.SummariesDeleted).
		Int("errors", summary.Errors).
		Msg("retention sweep finished")
	return summary
}
