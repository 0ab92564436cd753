package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/loggers"
	"traffic-metrics/internal/shared/metrics"
	"traffic-metrics/internal/stores"
	"traffic-metrics/internal/streams"
)

const (
	maxSampleBytes = 64 * 1024
	maxCountries   = 300
	maxCountryLen  = 8
)

// samplePayload is the wire form of a manually recorded sample.
type samplePayload struct {
	Timestamp          string               `json:"timestamp"`
	Hits               int64                `json:"hits"`
	Visits             int64                `json:"visits"`
	Views              int64                `json:"views"`
	UniqueVisitors     int64                `json:"uniqueVisitors"`
	Speed              float64              `json:"speed"`
	BounceRate         float64              `json:"bounceRate"`
	AvgSessionDuration float64              `json:"avgSessionDuration"`
	CountryBreakdown   []models.CountryStat `json:"countryBreakdown"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestSample parses, validates and records one manually submitted
	// sample for the campaign.
	IngestSample(ctx context.Context, campaignID string, r io.Reader) (*models.RawSample, error)
	// Record persists an already built sample and hands it to the
	// aggregation pipeline. Used by the collector after a vendor fetch.
	Record(ctx context.Context, sample *models.RawSample) error
}

type ingestionService struct {
	campaignStore  stores.CampaignStore
	rawSampleStore stores.RawSampleStore
	sampleProducer streams.SampleRecordedProducer
}

func NewIngestionService(campaignStore stores.CampaignStore, rawSampleStore stores.RawSampleStore, sampleProducer streams.SampleRecordedProducer) IngestionService {
	return &ingestionService{
		campaignStore:  campaignStore,
		rawSampleStore: rawSampleStore,
		sampleProducer: sampleProducer,
	}
}

func (s *ingestionService) IngestSample(ctx context.Context, campaignID string, r io.Reader) (*models.RawSample, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldCampaignID, campaignID).Msg("started ingesting sample")

	sample, err := s.validateSample(ctx, campaignID, r)
	if err != nil {
		return nil, err
	}

	if err := s.Record(ctx, sample); err != nil {
		return nil, err
	}
	return sample, nil
}

func (s *ingestionService) Record(ctx context.Context, sample *models.RawSample) error {
	err := s.rawSampleStore.Append(ctx, sample)
	if err != nil {
		if errors.Is(err, stores.ErrSampleExists) {
			svcErr := errSampleAlreadyRecorded(err)
			metricSampleIngestedTotal.WithLabelValues(string(sample.CollectionSource), svcErr.Code).Inc()
			return svcErr
		}
		return errInternalSampleStoreFailed(err)
	}

	if err := s.sampleProducer.Produce(ctx, sample); err != nil {
		return errInternalSamplePublisherFailed(err)
	}

	metricSampleIngestedTotal.WithLabelValues(string(sample.CollectionSource), metrics.ValueNoError).Inc()
	return nil
}

func (s *ingestionService) validateSample(ctx context.Context, campaignID string, r io.Reader) (*models.RawSample, error) {
	if campaignID == "" {
		return nil, errValidationFailed("campaignID is required", nil)
	}
	exists, err := s.campaignStore.Exists(ctx, campaignID)
	if err != nil {
		return nil, errInternalCampaignStoreFailed(err)
	}
	if !exists {
		return nil, errCampaignNotFound(campaignID)
	}

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}
	buf, err := io.ReadAll(io.LimitReader(r, maxSampleBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxSampleBytes {
		return nil, errValidationFailed(fmt.Sprintf("sample too large: must be <= %d bytes", maxSampleBytes), nil)
	}

	var payload samplePayload
	if err := json.Unmarshal(buf, &payload); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}

	timestamp, err := parseTimestamp(payload.Timestamp)
	if err != nil {
		return nil, err
	}

	for _, counter := range []struct {
		name  string
		value int64
	}{
		{"hits", payload.Hits},
		{"visits", payload.Visits},
		{"views", payload.Views},
		{"uniqueVisitors", payload.UniqueVisitors},
	} {
		if counter.value < 0 {
			return nil, errValidationFailed(fmt.Sprintf("%s must not be negative", counter.name), nil)
		}
	}
	if payload.Speed < 0 {
		return nil, errValidationFailed("speed must not be negative", nil)
	}
	if payload.BounceRate < 0 || payload.BounceRate > 100 {
		return nil, errValidationFailed("bounceRate must be between 0 and 100", nil)
	}
	if payload.AvgSessionDuration < 0 {
		return nil, errValidationFailed("avgSessionDuration must not be negative", nil)
	}
	if len(payload.CountryBreakdown) > maxCountries {
		return nil, errValidationFailed(fmt.Sprintf("countryBreakdown too large: max %d entries", maxCountries), nil)
	}
	for i, stat := range payload.CountryBreakdown {
		code := strings.TrimSpace(stat.Country)
		if code == "" || len(code) > maxCountryLen {
			return nil, errValidationFailed(fmt.Sprintf("countryBreakdown[%d]: invalid country code", i), nil)
		}
		if stat.Hits < 0 || stat.Visits < 0 || stat.Views < 0 {
			return nil, errValidationFailed(fmt.Sprintf("countryBreakdown[%d]: counters must not be negative", i), nil)
		}
		payload.CountryBreakdown[i].Country = strings.ToUpper(code)
	}

	return &models.RawSample{
		CampaignID:         campaignID,
		Timestamp:          timestamp,
		Hits:               payload.Hits,
		Visits:             payload.Visits,
		Views:              payload.Views,
		UniqueVisitors:     payload.UniqueVisitors,
		Speed:              payload.Speed,
		BounceRate:         payload.BounceRate,
		AvgSessionDuration: payload.AvgSessionDuration,
		CountryBreakdown:   payload.CountryBreakdown,
		CollectionSource:   models.SourceManual,
	}, nil
}

// parseTimestamp accepts RFC3339 with or without fractional seconds.
func parseTimestamp(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errValidationFailed("timestamp is required", nil)
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errValidationFailed(fmt.Sprintf("invalid timestamp format: %s", value), err)
	}
	return t.UTC(), nil
}
