package vendorapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"traffic-metrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
	"hits": 1200,
	"visits": 600,
	"views": 2400,
	"uniqueVisitors": 300,
	"speed": 2.5,
	"bounceRate": 41.0,
	"avgSessionDuration": 88.5,
	"countries": [{"country": "US", "hits": 900}, {"country": "DE", "hits": 300}]
}`

func newTestClient(baseURL string) VendorClient {
	return NewVendorClient(VendorClientConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		FetchTimeout:   2 * time.Second,
		RetryAttempts:  3,
		RetryBaseDelay: time.Millisecond,
	})
}

func TestFetchSnapshot_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/cmp-1/stats", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		_, _ = w.Write([]byte(snapshotJSON))
	}))
	defer server.Close()

	sample, err := newTestClient(server.URL).FetchSnapshot(context.Background(), "cmp-1")
	require.NoError(t, err)

	assert.Equal(t, "cmp-1", sample.CampaignID)
	assert.Equal(t, int64(1200), sample.Hits)
	assert.Equal(t, int64(600), sample.Visits)
	assert.Equal(t, models.SourceAuto, sample.CollectionSource)
	assert.False(t, sample.Timestamp.IsZero())
	require.Len(t, sample.CountryBreakdown, 2)
	assert.Equal(t, "US", sample.CountryBreakdown[0].Country)
}

func TestFetchSnapshot_RetriesRateLimitThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(snapshotJSON))
	}))
	defer server.Close()

	sample, err := newTestClient(server.URL).FetchSnapshot(context.Background(), "cmp-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), sample.Hits)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchSnapshot_ExhaustsRetriesOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchSnapshot(context.Background(), "cmp-1")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, FetchUnavailable, fetchErr.Kind)
	// Initial attempt plus three retries
	assert.Equal(t, int32(4), calls.Load())
}

func TestFetchSnapshot_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchSnapshot(context.Background(), "cmp-404")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, FetchProtocol, fetchErr.Kind)
	assert.False(t, fetchErr.Retryable())
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchSnapshot_MalformedBodyNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"hits": "not a number"`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchSnapshot(context.Background(), "cmp-1")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, FetchProtocol, fetchErr.Kind)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchError_Retryable(t *testing.T) {
	t.Parallel()

	assert.True(t, (&FetchError{Kind: FetchTimeout}).Retryable())
	assert.True(t, (&FetchError{Kind: FetchRateLimited}).Retryable())
	assert.True(t, (&FetchError{Kind: FetchUnavailable}).Retryable())
	assert.False(t, (&FetchError{Kind: FetchProtocol}).Retryable())

	assert.True(t, IsRetryable(&FetchError{Kind: FetchTimeout}))
	assert.False(t, IsRetryable(errors.New("plain error")))
}
