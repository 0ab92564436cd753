package http

import (
	"net/http"
	"time"

	"traffic-metrics/internal/collector"
	"traffic-metrics/internal/ingestors"
	"traffic-metrics/internal/queries"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, metricsService queries.MetricsService, coll collector.Collector, defaultCollectorInterval time.Duration, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestSampleHandler := NewIngestSampleHandler(ingestionService)
	currentMetricsHandler := NewCurrentMetricsHandler(metricsService)
	summaryHistoryHandler := NewSummaryHistoryHandler(metricsService)
	startCollectorHandler := NewStartCollectorHandler(coll, defaultCollectorInterval)
	stopCollectorHandler := NewStopCollectorHandler(coll)
	collectorStatusHandler := NewCollectorStatusHandler(coll)

	// Routes
	router.Post("/campaigns/{campaignId}/samples", errorHandlingAdapter(ingestSampleHandler))
	router.Get("/campaigns/{campaignId}/metrics", errorHandlingAdapter(currentMetricsHandler))
	router.Get("/campaigns/{campaignId}/summaries/{rangeKey}", errorHandlingAdapter(summaryHistoryHandler))
	router.Post("/collector/start", errorHandlingAdapter(startCollectorHandler))
	router.Post("/collector/stop", errorHandlingAdapter(stopCollectorHandler))
	router.Get("/collector/status", errorHandlingAdapter(collectorStatusHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
