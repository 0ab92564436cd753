package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"traffic-metrics/internal/models"
	"traffic-metrics/internal/shared/filestorages"
)

//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type WindowSummaryStore interface {
	// Upsert persists the summary under its (campaignID, rangeKey,
	// windowStart) identity, overwriting any previous version.
	Upsert(ctx context.Context, summary *models.WindowSummary) error
	// Get loads the summary for the bucket, or an empty zero-state summary
	// if none has been stored yet.
	Get(ctx context.Context, campaignID string, rng models.TimeRange, windowStart time.Time) (*models.WindowSummary, error)
	// History returns up to limit summaries for the range, ascending by
	// windowStart (limit <= 0 means all).
	History(ctx context.Context, campaignID string, rangeKey string, limit int) ([]*models.WindowSummary, error)
	// DeleteBefore removes summaries whose window closed before horizon.
	DeleteBefore(ctx context.Context, campaignID string, rng models.TimeRange, horizon time.Time) (int, error)
}

type windowSummaryStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewWindowSummaryStore(fileStorage filestorages.FileStorage) WindowSummaryStore {
	return &windowSummaryStore{fileStorage: fileStorage, dir: "summaries"}
}

func (s *windowSummaryStore) Upsert(ctx context.Context, summary *models.WindowSummary) error {
	rng, ok := models.TimeRangeByKey(summary.RangeKey)
	if !ok {
		return fmt.Errorf("unknown range key %q", summary.RangeKey)
	}

	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	key := s.key(summary.CampaignID, rng, summary.WindowStart)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put summary: %w", err)
	}
	return nil
}

func (s *windowSummaryStore) Get(ctx context.Context, campaignID string, rng models.TimeRange, windowStart time.Time) (*models.WindowSummary, error) {
	key := s.key(campaignID, rng, windowStart)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return models.NewEmptyWindowSummary(campaignID, rng, windowStart), nil
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	defer readCloser.Close()

	return decodeSummary(readCloser)
}

func (s *windowSummaryStore) History(ctx context.Context, campaignID string, rangeKey string, limit int) ([]*models.WindowSummary, error) {
	prefix := path.Join(s.dir, campaignID, rangeKey)
	keys, err := s.fileStorage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	// Window-start file names sort chronologically, so the listing is
	// already ascending; a positive limit keeps the most recent tail.
	if limit > 0 && len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}

	summaries := make([]*models.WindowSummary, 0, len(keys))
	for _, key := range keys {
		readCloser, getErr := s.fileStorage.Get(ctx, key)
		if getErr != nil {
			if errors.Is(getErr, filestorages.ErrFileNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get summary %q: %w", key, getErr)
		}
		summary, decodeErr := decodeSummary(readCloser)
		_ = readCloser.Close()
		if decodeErr != nil {
			return nil, decodeErr
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *windowSummaryStore) DeleteBefore(ctx context.Context, campaignID string, rng models.TimeRange, horizon time.Time) (int, error) {
	prefix := path.Join(s.dir, campaignID, rng.Key)
	keys, err := s.fileStorage.List(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("failed to list summaries: %w", err)
	}

	deleted := 0
	for _, key := range keys {
		windowStart, parseErr := parseWindowStartKey(key)
		if parseErr != nil {
			continue
		}
		windowEnd := windowStart.Add(rng.Duration())
		if !windowEnd.Before(horizon) {
			continue
		}
		if delErr := s.fileStorage.Delete(ctx, key); delErr != nil {
			return deleted, fmt.Errorf("failed to delete summary %q: %w", key, delErr)
		}
		deleted++
	}
	return deleted, nil
}

func (s *windowSummaryStore) key(campaignID string, rng models.TimeRange, windowStart time.Time) string {
	return fmt.Sprintf("%s/%s/%s/%s.json", s.dir, campaignID, rng.Key, rng.FormatWindowStart(windowStart))
}

func parseWindowStartKey(key string) (time.Time, error) {
	name := strings.TrimSuffix(path.Base(key), ".json")
	return time.Parse("20060102T150405Z", name)
}

func decodeSummary(r io.Reader) (*models.WindowSummary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}
	var summary models.WindowSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}
