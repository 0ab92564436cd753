package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"traffic-metrics/internal/aggregators"
	"traffic-metrics/internal/collector"
	"traffic-metrics/internal/events"
	internalhttp "traffic-metrics/internal/http"
	"traffic-metrics/internal/ingestors"
	"traffic-metrics/internal/models"
	"traffic-metrics/internal/queries"
	"traffic-metrics/internal/retention"
	"traffic-metrics/internal/shared/configs"
	"traffic-metrics/internal/shared/filestorages"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/stores"
	"traffic-metrics/internal/streams"
	"traffic-metrics/internal/vendorapi"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	rawSampleStore   stores.RawSampleStore
	sampleConsumer   streams.SampleRecordedConsumer
	trafficCollector collector.Collector
	retentionSweeper retention.Sweeper

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "traffic-metrics").
		Logger()

	// Initialize stores
	fileStorage, err := filestorages.NewFileStorage(config.Storage.SummaryRootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize summary storage: %w", err)
	}
	summaryStore := stores.NewWindowSummaryStore(fileStorage)

	rawSampleStore, err := stores.NewRawSampleStore(stores.RawSampleStoreConfig{
		Dir:      config.Storage.SampleDir,
		InMemory: config.Storage.SampleInMemory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sample store: %w", err)
	}

	campaignStore := stores.NewCampaignStore(seedCampaigns(config.Campaigns))

	// Initialize stream queue
	sampleQueue := streams.NewPartitionedQueue[events.SampleRecordedEvent]()

	// Initialize aggregation pipeline
	summaryRolluper := aggregators.NewSummaryRolluper()
	aggregationService := aggregators.NewAggregationService(summaryRolluper, summaryStore, rawSampleStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	sampleConsumer := streams.NewSampleRecordedConsumer(sampleQueue, aggregationService, consumerLogger)

	// Initialize ingestion
	sampleProducer := streams.NewSampleRecordedProducer(sampleQueue)
	ingestionService := ingestors.NewIngestionService(campaignStore, rawSampleStore, sampleProducer)

	// Initialize query side
	onDemandCalculator := queries.NewOnDemandCalculator()
	metricsService := queries.NewMetricsService(onDemandCalculator, rawSampleStore, summaryStore, campaignStore)

	// Initialize collector
	vendorClient := vendorapi.NewVendorClient(vendorapi.VendorClientConfig{
		BaseURL:        config.Collector.VendorBaseURL,
		APIKey:         config.Collector.VendorAPIKey,
		FetchTimeout:   time.Duration(config.Collector.FetchTimeoutSeconds) * time.Second,
		RetryAttempts:  config.Collector.RetryAttempts,
		RetryBaseDelay: time.Duration(config.Collector.RetryBaseDelayMs) * time.Millisecond,
	})
	collectorLogger := appLogger.With().Str(loggers.FieldComponent, "collector").Logger()
	trafficCollector := collector.NewCollector(collector.CollectorConfig{
		MaxConcurrentRequests: config.Collector.MaxConcurrentRequests,
		BatchDelay:            time.Duration(config.Collector.BatchDelayMs) * time.Millisecond,
	}, campaignStore, vendorClient, ingestionService, collectorLogger)

	// Initialize retention
	sweeperLogger := appLogger.With().Str(loggers.FieldComponent, "retention").Logger()
	retentionSweeper := retention.NewSweeper(retention.SweeperConfig{
		SampleHorizon:  time.Duration(config.Retention.SampleHorizonHours) * time.Hour,
		SummaryHorizon: time.Duration(config.Retention.SummaryHorizonDays) * 24 * time.Hour,
		SweepInterval:  time.Duration(config.Retention.SweepIntervalMinutes) * time.Minute,
	}, campaignStore, rawSampleStore, summaryStore, sweeperLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	defaultInterval := time.Duration(config.Collector.IntervalSeconds) * time.Second
	router := internalhttp.NewRouter(ingestionService, metricsService, trafficCollector, defaultInterval, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		rawSampleStore:   rawSampleStore,
		sampleConsumer:   sampleConsumer,
		trafficCollector: trafficCollector,
		retentionSweeper: retentionSweeper,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting traffic-metrics service on port %d (log_level=%s, summary_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.SummaryRootDir)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.sampleConsumer.Start(app.backgroundCtx)
	app.retentionSweeper.Start(app.backgroundCtx)

	if app.config.Collector.AutoStart {
		interval := time.Duration(app.config.Collector.IntervalSeconds) * time.Second
		if svcErr := app.trafficCollector.Start(interval); svcErr != nil {
			return fmt.Errorf("failed to auto-start collector: %w", svcErr)
		}
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the collector so no new samples are produced
	if app.trafficCollector.Status().Running {
		if svcErr := app.trafficCollector.Stop(); svcErr != nil {
			app.appLogger.Error().Err(svcErr).Msg("failed to stop collector")
		}
	}

	// 3) Cancel background workers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background workers cancelled")
	}

	// 4) Wait for background workers to finish
	app.sampleConsumer.Stop()
	app.retentionSweeper.Stop()
	app.appLogger.Info().Msg("Background workers stopped")

	// 5) Close the sample store last so in-flight writes land
	if err := app.rawSampleStore.Close(); err != nil {
		return fmt.Errorf("sample store close failed: %w", err)
	}

	return nil
}

func seedCampaigns(seeds []configs.CampaignConfig) []models.Campaign {
	campaigns := make([]models.Campaign, 0, len(seeds))
	for _, seed := range seeds {
		campaigns = append(campaigns, models.Campaign{
			ID:            seed.ID,
			Name:          seed.Name,
			Status:        models.CampaignStatus(seed.Status),
			Archived:      seed.Archived,
			VendorTracked: seed.VendorTracked,
		})
	}
	return campaigns
}
