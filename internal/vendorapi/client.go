package vendorapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"traffic-metrics/internal/models"
)

const (
	headerAPIKey = "X-Api-Key"

	defaultFetchTimeout   = 15 * time.Second
	defaultRetryAttempts  = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
)

// snapshotPayload is the vendor's per-campaign statistics response.
type snapshotPayload struct {
	Hits               int64   `json:"hits"`
	Visits             int64   `json:"visits"`
	Views              int64   `json:"views"`
	UniqueVisitors     int64   `json:"uniqueVisitors"`
	Speed              float64 `json:"speed"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
	Countries          []struct {
		Country string `json:"country"`
		Hits    int64  `json:"hits"`
		Visits  int64  `json:"visits"`
		Views   int64  `json:"views"`
	} `json:"countries"`
}

//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type VendorClient interface {
	// FetchSnapshot reads the campaign's current cumulative counters from
	// the vendor. Transient failures (timeout, 429, 5xx, network) are
	// retried with exponential backoff; anything else fails immediately
	// with a non-retryable *FetchError.
	FetchSnapshot(ctx context.Context, campaignID string) (*models.RawSample, error)
}

// VendorClientConfig configures the HTTP vendor client.
type VendorClientConfig struct {
	BaseURL        string
	APIKey         string
	FetchTimeout   time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
}

type httpVendorClient struct {
	cfg        VendorClientConfig
	httpClient *http.Client
	executor   failsafe.Executor[*snapshotPayload]
	now        func() time.Time
}

func NewVendorClient(cfg VendorClientConfig) VendorClient {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}

	// Exponential backoff doubles the delay per attempt, capped so a long
	// retry chain never outlives the polling interval by much.
	maxDelay := cfg.RetryBaseDelay << uint(cfg.RetryAttempts)
	retry := retrypolicy.NewBuilder[*snapshotPayload]().
		WithBackoff(cfg.RetryBaseDelay, maxDelay).
		WithJitterFactor(0.1).
		WithMaxRetries(cfg.RetryAttempts).
		HandleIf(func(_ *snapshotPayload, err error) bool {
			return IsRetryable(err)
		}).
		Build()

	return &httpVendorClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		executor:   failsafe.With(retry),
		now:        time.Now,
	}
}

func (c *httpVendorClient) FetchSnapshot(ctx context.Context, campaignID string) (*models.RawSample, error) {
	payload, err := c.executor.WithContext(ctx).Get(func() (*snapshotPayload, error) {
		return c.fetchOnce(ctx, campaignID)
	})
	if err != nil {
		return nil, err
	}
	return c.buildSample(campaignID, payload), nil
}

func (c *httpVendorClient) fetchOnce(ctx context.Context, campaignID string) (*snapshotPayload, error) {
	endpoint, err := url.JoinPath(c.cfg.BaseURL, "campaigns", campaignID, "stats")
	if err != nil {
		return nil, &FetchError{Kind: FetchProtocol, CampaignID: campaignID, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Kind: FetchProtocol, CampaignID: campaignID, Cause: err}
	}
	req.Header.Set(headerAPIKey, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(campaignID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyStatus(campaignID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: FetchUnavailable, CampaignID: campaignID, Cause: err}
	}
	var payload snapshotPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Kind: FetchProtocol, CampaignID: campaignID, Cause: fmt.Errorf("malformed vendor response: %w", err)}
	}
	return &payload, nil
}

func (c *httpVendorClient) classifyTransportError(campaignID string, err error) *FetchError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &FetchError{Kind: FetchTimeout, CampaignID: campaignID, Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: FetchTimeout, CampaignID: campaignID, Cause: err}
	}
	// Connection resets and other dial/transport failures are transient.
	return &FetchError{Kind: FetchUnavailable, CampaignID: campaignID, Cause: err}
}

func (c *httpVendorClient) classifyStatus(campaignID string, status int) *FetchError {
	switch {
	case status == http.StatusTooManyRequests:
		return &FetchError{Kind: FetchRateLimited, CampaignID: campaignID, StatusCode: status}
	case status >= 500:
		return &FetchError{Kind: FetchUnavailable, CampaignID: campaignID, StatusCode: status}
	default:
		return &FetchError{Kind: FetchProtocol, CampaignID: campaignID, StatusCode: status}
	}
}

func (c *httpVendorClient) buildSample(campaignID string, payload *snapshotPayload) *models.RawSample {
	countries := make([]models.CountryStat, 0, len(payload.Countries))
	for _, country := range payload.Countries {
		countries = append(countries, models.CountryStat{
			Country: country.Country,
			Hits:    country.Hits,
			Visits:  country.Visits,
			Views:   country.Views,
		})
	}

	return &models.RawSample{
		CampaignID:         campaignID,
		Timestamp:          c.now().UTC(),
		Hits:               payload.Hits,
		Visits:             payload.Visits,
		Views:              payload.Views,
		UniqueVisitors:     payload.UniqueVisitors,
		Speed:              payload.Speed,
		BounceRate:         payload.BounceRate,
		AvgSessionDuration: payload.AvgSessionDuration,
		CountryBreakdown:   countries,
		CollectionSource:   models.SourceAuto,
	}
}
