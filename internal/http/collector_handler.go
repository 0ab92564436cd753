package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"traffic-metrics/internal/collector"
)

type startCollectorRequest struct {
	IntervalMs int64 `json:"intervalMs"`
}

type startCollectorHandler struct {
	collector       collector.Collector
	defaultInterval time.Duration
}

func NewStartCollectorHandler(coll collector.Collector, defaultInterval time.Duration) AppHttpHandler {
	return &startCollectorHandler{
		collector:       coll,
		defaultInterval: defaultInterval,
	}
}

// Handle processes POST /collector/start requests. The interval comes from
// the intervalSeconds query parameter or an optional {"intervalMs": n}
// body; with neither, the configured default interval is used.
func (h *startCollectorHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	interval := h.defaultInterval

	if raw := r.URL.Query().Get("intervalSeconds"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return errInvalidIntervalParam(raw, err)
		}
		interval = time.Duration(seconds) * time.Second
	}

	var req startCollectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidStartPayload(err)
	}
	if req.IntervalMs > 0 {
		interval = time.Duration(req.IntervalMs) * time.Millisecond
	}

	if svcErr := h.collector.Start(interval); svcErr != nil {
		return svcErr
	}

	writeJSON(w, http.StatusOK, h.collector.Status())
	return nil
}

type stopCollectorHandler struct {
	collector collector.Collector
}

func NewStopCollectorHandler(coll collector.Collector) AppHttpHandler {
	return &stopCollectorHandler{collector: coll}
}

// Handle processes POST /collector/stop requests.
func (h *stopCollectorHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if svcErr := h.collector.Stop(); svcErr != nil {
		return svcErr
	}

	writeJSON(w, http.StatusOK, h.collector.Status())
	return nil
}

type collectorStatusHandler struct {
	collector collector.Collector
}

func NewCollectorStatusHandler(coll collector.Collector) AppHttpHandler {
	return &collectorStatusHandler{collector: coll}
}

// Handle processes GET /collector/status requests.
func (h *collectorStatusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.collector.Status())
	return nil
}
