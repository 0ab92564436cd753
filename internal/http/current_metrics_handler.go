package http

import (
	"net/http"

	"traffic-metrics/internal/queries"

	"github.com/go-chi/chi/v5"
)

type currentMetricsHandler struct {
	metricsService queries.MetricsService
}

func NewCurrentMetricsHandler(metricsService queries.MetricsService) AppHttpHandler {
	return &currentMetricsHandler{
		metricsService: metricsService,
	}
}

// Handle processes GET /campaigns/{campaignId}/metrics requests. The
// response maps every range key to its current window summary.
func (h *currentMetricsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summaries, svcErr := h.metricsService.GetCurrentMetrics(r.Context(), chi.URLParam(r, "campaignId"))
	if svcErr != nil {
		return svcErr
	}

	writeJSON(w, http.StatusOK, summaries)
	return nil
}
