package http

import (
	"net/http"

	"traffic-metrics/internal/ingestors"

	"github.com/go-chi/chi/v5"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type ingestSampleHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestSampleHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestSampleHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /campaigns/{campaignId}/samples requests.
func (h *ingestSampleHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	sample, err := h.ingestionService.IngestSample(r.Context(), chi.URLParam(r, "campaignId"), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, sample)
	return nil
}
