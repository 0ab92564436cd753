package http

import (
	"net/http"
	"strconv"

	"traffic-metrics/internal/queries"

	"github.com/go-chi/chi/v5"
)

type summaryHistoryHandler struct {
	metricsService queries.MetricsService
}

func NewSummaryHistoryHandler(metricsService queries.MetricsService) AppHttpHandler {
	return &summaryHistoryHandler{
		metricsService: metricsService,
	}
}

// Handle processes GET /campaigns/{campaignId}/summaries/{rangeKey}
// requests. An optional limit query parameter caps the number of windows
// returned, newest first.
func (h *summaryHistoryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errInvalidLimitParam(raw, err)
		}
		limit = parsed
	}

	summaries, svcErr := h.metricsService.GetSummaryHistory(r.Context(), chi.URLParam(r, "campaignId"), chi.URLParam(r, "rangeKey"), limit)
	if svcErr != nil {
		return svcErr
	}

	writeJSON(w, http.StatusOK, summaries)
	return nil
}
