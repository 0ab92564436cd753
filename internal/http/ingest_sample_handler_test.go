package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ingestormocks "traffic-metrics/internal/ingestors/mocks"
	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestSampleHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestSampleHandler(mockIngestionService)

	body := []byte(`{"timestamp":"2026-03-11T14:37:42Z","hits":140}`)
	req := httptest.NewRequest(http.MethodPost, "/campaigns/cmp-1/samples", bytes.NewReader(body))
	req = withURLParams(req, map[string]string{"campaignId": "cmp-1"})
	rr := httptest.NewRecorder()

	recorded := &models.RawSample{
		CampaignID:       "cmp-1",
		Timestamp:        time.Date(2026, 3, 11, 14, 37, 42, 0, time.UTC),
		Hits:             140,
		CollectionSource: models.SourceManual,
	}
	mockIngestionService.EXPECT().
		IngestSample(gomock.Any(), "cmp-1", gomock.Any()).
		Return(recorded, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var response models.RawSample
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "cmp-1", response.CampaignID)
	assert.Equal(t, int64(140), response.Hits)
}

func TestIngestSampleHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestSampleHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/campaigns/cmp-1/samples", bytes.NewReader([]byte(`{}`)))
	req = withURLParams(req, map[string]string{"campaignId": "cmp-1"})
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("ING_1000", "timestamp is required", nil)
	mockIngestionService.EXPECT().
		IngestSample(gomock.Any(), "cmp-1", gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
