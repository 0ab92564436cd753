package collector

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"traffic-metrics/internal/ingestors"
	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/svcerrors"
	"traffic-metrics/internal/shared/ulid"
	"traffic-metrics/internal/stores"
	"traffic-metrics/internal/vendorapi"
)

const (
	defaultMaxConcurrentRequests = 3
	defaultBatchDelay            = 500 * time.Millisecond
	minInterval                  = time.Second
)

// Status is the externally visible collector state.
type Status struct {
	Running    bool       `json:"running"`
	IntervalMs int64      `json:"intervalMs"`
	NextRunAt  *time.Time `json:"nextRunAt,omitempty"`
}

// RunSummary reports one polling tick's outcome.
type RunSummary struct {
	TotalCampaigns int `json:"totalCampaigns"`
	Successful     int `json:"successful"`
	Errors         int `json:"errors"`
}

// CollectorConfig tunes the polling loop.
type CollectorConfig struct {
	// MaxConcurrentRequests bounds in-flight vendor fetches per batch.
	MaxConcurrentRequests int
	// BatchDelay is the politeness pause between batches.
	BatchDelay time.Duration
}

//go:generate mockgen -source=collector.go -destination=./mocks/collector_mock.go -package=mocks
type Collector interface {
	// Start transitions Stopped -> Running with the given polling
	// interval. Fails with a conflict if already running.
	Start(interval time.Duration) *svcerrors.ServiceError
	// Stop transitions Running -> Stopped and waits for the loop and any
	// in-flight tick to finish.
	Stop() *svcerrors.ServiceError
	Status() Status
}

type collector struct {
	cfg           CollectorConfig
	campaignStore stores.CampaignStore
	vendorClient  vendorapi.VendorClient
	ingestion     ingestors.IngestionService
	logger        loggers.Logger

	mu        sync.Mutex
	running   bool
	interval  time.Duration
	nextRunAt time.Time
	cancel    context.CancelFunc
	loopDone  chan struct{}

	// tickInFlight is the single-flight guard: a tick that is still
	// running when the next one fires causes the new tick to be skipped,
	// never overlapped.
	tickInFlight atomic.Bool
	tickWG       sync.WaitGroup
}

func NewCollector(cfg CollectorConfig, campaignStore stores.CampaignStore, vendorClient vendorapi.VendorClient, ingestion ingestors.IngestionService, logger loggers.Logger) Collector {
	if cfg.MaxConcurrentRequests <= 0 {
		cfg.MaxConcurrentRequests = defaultMaxConcurrentRequests
	}
	if cfg.BatchDelay <= 0 {
		cfg.BatchDelay = defaultBatchDelay
	}
	return &collector{
		cfg:           cfg,
		campaignStore: campaignStore,
		vendorClient:  vendorClient,
		ingestion:     ingestion,
		logger:        logger,
	}
}

func (c *collector) Start(interval time.Duration) *svcerrors.ServiceError {
	if interval < minInterval {
		return errInvalidInterval(interval)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return errAlreadyRunning()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.running = true
	c.interval = interval
	c.nextRunAt = time.Now().UTC().Add(interval)
	c.cancel = cancel
	c.loopDone = make(chan struct{})

	go c.runLoop(ctx, interval, c.loopDone)

	metricCollectorRunning.Set(1)
	c.logger.Info().Dur(loggers.FieldDuration, interval).Msg("collector started")
	return nil
}

func (c *collector) Stop() *svcerrors.ServiceError {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return errNotRunning()
	}
	cancel := c.cancel
	done := c.loopDone
	c.running = false
	c.cancel = nil
	c.nextRunAt = time.Time{}
	c.mu.Unlock()

	cancel()
	<-done
	c.tickWG.Wait()

	metricCollectorRunning.Set(0)
	c.logger.Info().Msg("collector stopped")
	return nil
}

func (c *collector) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{Running: c.running, IntervalMs: c.interval.Milliseconds()}
	if c.running && !c.nextRunAt.IsZero() {
		next := c.nextRunAt
		status.NextRunAt = &next
	}
	return status
}

func (c *collector) runLoop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			c.nextRunAt = time.Now().UTC().Add(interval)
			c.mu.Unlock()

			if !c.tickInFlight.CompareAndSwap(false, true) {
				metricCollectorTicksTotal.WithLabelValues("skipped").Inc()
				c.logger.Warn().Msg("previous tick still running, skipping this tick")
				continue
			}
			c.tickWG.Add(1)
			go func() {
				defer c.tickWG.Done()
				defer c.tickInFlight.Store(false)
				c.runTick(ctx)
			}()
		}
	}
}

// runTick polls every eligible campaign once, in batches of
// MaxConcurrentRequests with a politeness delay between batches. Failures
// are isolated per campaign.
func (c *collector) runTick(ctx context.Context) {
	tickID := ulid.NewULID()
	ctx = c.logger.With().Str(loggers.FieldTickID, tickID).Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)

	campaigns, err := c.campaignStore.ListEligible(ctx)
	if err != nil {
		metricCollectorTicksTotal.WithLabelValues("error").Inc()
		logger.Error().Err(err).Msg("failed to list eligible campaigns")
		return
	}

	var successful, failed atomic.Int32
	for start := 0; start < len(campaigns); start += c.cfg.MaxConcurrentRequests {
		if ctx.Err() != nil {
			break
		}
		end := start + c.cfg.MaxConcurrentRequests
		if end > len(campaigns) {
			end = len(campaigns)
		}

		group, groupCtx := errgroup.WithContext(ctx)
		for _, campaign := range campaigns[start:end] {
			group.Go(func() error {
				if c.collectOne(groupCtx, campaign) {
					successful.Add(1)
				} else {
					failed.Add(1)
				}
				return nil
			})
		}
		_ = group.Wait()

		if end < len(campaigns) {
			select {
			case <-ctx.Done():
			case <-time.After(c.cfg.BatchDelay):
			}
		}
	}

	summary := RunSummary{
		TotalCampaigns: len(campaigns),
		Successful:     int(successful.Load()),
		Errors:         int(failed.Load()),
	}
	metricCollectorTicksTotal.WithLabelValues("ok").Inc()
	logger.Info().
		Int("total_campaigns", summary.TotalCampaigns).
		Int("successful", summary.Successful).
		Int("errors", summary.Errors).
		Msg("collector tick finished")
}

// collectOne fetches one campaign's snapshot and records it. Returns true
// on success. A duplicate timestamp counts as success: the sample for that
// instant is already in.
func (c *collector) collectOne(ctx context.Context, campaign models.Campaign) bool {
	logger := loggers.Ctx(ctx)

	sample, err := c.vendorClient.FetchSnapshot(ctx, campaign.ID)
	if err != nil {
		var fetchErr *vendorapi.FetchError
		kind := string(vendorapi.FetchUnavailable)
		if errors.As(err, &fetchErr) {
			kind = string(fetchErr.Kind)
		}
		metricCollectorFetchTotal.WithLabelValues("error", kind).Inc()
		logger.Error().Err(err).
			Str(loggers.FieldCampaignID, campaign.ID).
			Msg("vendor fetch failed")
		return false
	}
	metricCollectorFetchTotal.WithLabelValues("ok", "").Inc()

	if svcErr := c.ingestion.Record(ctx, sample); svcErr != nil {
		if conflictErr, ok := svcerrors.AsServiceError(svcErr); ok && conflictErr.HttpStatusCode == 409 {
			logger.Debug().
				Str(loggers.FieldCampaignID, campaign.ID).
				Msg("sample for this timestamp already recorded")
			return true
		}
		logger.Error().Err(svcErr).
			Str(loggers.FieldCampaignID, campaign.ID).
			Msg("failed to record sample")
		return false
	}
	return true
}
