package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"traffic-metrics/internal/models"
	querymocks "traffic-metrics/internal/queries/mocks"
	"traffic-metrics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCurrentMetricsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricsService := querymocks.NewMockMetricsService(ctrl)
	handler := NewCurrentMetricsHandler(mockMetricsService)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/cmp-1/metrics", nil)
	req = withURLParams(req, map[string]string{"campaignId": "cmp-1"})
	rr := httptest.NewRecorder()

	summaries := map[string]*models.WindowSummary{
		"1m": {CampaignID: "cmp-1", RangeKey: "1m", TotalHits: 40},
		"1h": {CampaignID: "cmp-1", RangeKey: "1h", TotalHits: 900},
	}
	mockMetricsService.EXPECT().
		GetCurrentMetrics(gomock.Any(), "cmp-1").
		Return(summaries, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]*models.WindowSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, int64(40), response["1m"].TotalHits)
	assert.Equal(t, int64(900), response["1h"].TotalHits)
}

func TestCurrentMetricsHandler_Handle_UnknownCampaign(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricsService := querymocks.NewMockMetricsService(ctrl)
	handler := NewCurrentMetricsHandler(mockMetricsService)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/cmp-404/metrics", nil)
	req = withURLParams(req, map[string]string{"campaignId": "cmp-404"})
	rr := httptest.NewRecorder()

	mockMetricsService.EXPECT().
		GetCurrentMetrics(gomock.Any(), "cmp-404").
		Return(nil, svcerrors.NewNotFoundError("QRY_1001", "campaign not found", nil))

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1001", svcErr.Code)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
}
