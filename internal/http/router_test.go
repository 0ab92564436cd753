package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	collectormocks "traffic-metrics/internal/collector/mocks"
	ingestormocks "traffic-metrics/internal/ingestors/mocks"
	querymocks "traffic-metrics/internal/queries/mocks"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// withURLParams injects chi route parameters for direct handler tests.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newTestRouter(t *testing.T) (http.Handler, *querymocks.MockMetricsService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger, err := loggers.New("disabled")
	require.NoError(t, err)

	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	metricsService := querymocks.NewMockMetricsService(ctrl)
	coll := collectormocks.NewMockCollector(ctrl)

	return NewRouter(ingestionService, metricsService, coll, 30*time.Second, logger), metricsService
}

func TestRouter_ErrorResponseShape(t *testing.T) {
	t.Parallel()

	router, metricsService := newTestRouter(t)

	metricsService.EXPECT().
		GetCurrentMetrics(gomock.Any(), "cmp-404").
		Return(nil, svcerrors.NewNotFoundError("QRY_1001", "campaign not found", nil))

	req := httptest.NewRequest(http.MethodGet, "/campaigns/cmp-404/metrics", nil)
	req.Header.Set(headerRequestID, "req-123")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "req-123", response.RequestID)
	assert.Equal(t, "not_found", response.ErrorCategory)
	assert.Equal(t, "QRY_1001", response.ErrorCode)
	assert.Equal(t, "campaign not found", response.ErrorDescription)
}

func TestRouter_RouteParamsReachServices(t *testing.T) {
	t.Parallel()

	router, metricsService := newTestRouter(t)

	metricsService.EXPECT().
		GetSummaryHistory(gomock.Any(), "cmp-1", "7d", 4).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/cmp-1/summaries/7d?limit=4", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_PrometheusEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}
