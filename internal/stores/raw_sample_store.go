package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"traffic-metrics/internal/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

var (
	// ErrSampleExists signals that a sample with the same
	// (campaignID, timestamp) key was already appended. Re-delivery of the
	// same snapshot is detected here so one poll never contributes to a
	// summary twice.
	ErrSampleExists = errors.New("raw sample already exists")
)

//go:generate mockgen -source=raw_sample_store.go -destination=./mocks/raw_sample_store_mock.go -package=mocks
type RawSampleStore interface {
	// Append stores one immutable sample; idempotent on (campaignID, timestamp).
	Append(ctx context.Context, sample *models.RawSample) error
	// QueryRange returns samples with timestamp in [from, to], ascending.
	QueryRange(ctx context.Context, campaignID string, from, to time.Time) ([]*models.RawSample, error)
	// LatestBefore returns the most recent sample strictly before t, or nil.
	LatestBefore(ctx context.Context, campaignID string, t time.Time) (*models.RawSample, error)
	// DeleteBefore removes samples older than horizon; returns the count deleted.
	DeleteBefore(ctx context.Context, campaignID string, horizon time.Time) (int, error)
	Close() error
}

// RawSampleStoreConfig configures the badger backend.
type RawSampleStoreConfig struct {
	Dir      string
	InMemory bool
}

// rawSampleStore keeps samples in BadgerDB under keys of the form
// sample/<campaignID>/<unix-millis, zero-padded hex>. Ordered key iteration
// gives ascending range scans; reverse iteration gives latest-before.
type rawSampleStore struct {
	db *badger.DB
}

func NewRawSampleStore(cfg RawSampleStoreConfig) (RawSampleStore, error) {
	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.
		WithCompression(options.Snappy).
		WithNumVersionsToKeep(1).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample store: %w", err)
	}
	return &rawSampleStore{db: db}, nil
}

func (s *rawSampleStore) Append(ctx context.Context, sample *models.RawSample) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := sampleKey(sample.CampaignID, sample.Timestamp)
	value, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		_, getErr := txn.Get(key)
		if getErr == nil {
			return ErrSampleExists
		}
		if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return getErr
		}
		return txn.Set(key, value)
	})
	if errors.Is(err, badger.ErrConflict) {
		// A concurrent append of the same key won the transaction.
		return ErrSampleExists
	}
	return err
}

func (s *rawSampleStore) QueryRange(ctx context.Context, campaignID string, from, to time.Time) ([]*models.RawSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := sampleKey(campaignID, from)
	end := sampleKey(campaignID, to)

	var samples []*models.RawSample
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = samplePrefix(campaignID)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(start); it.Valid(); it.Next() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			item := it.Item()
			if string(item.Key()) > string(end) {
				break
			}
			sample, decodeErr := decodeSample(item)
			if decodeErr != nil {
				return decodeErr
			}
			samples = append(samples, sample)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func (s *rawSampleStore) LatestBefore(ctx context.Context, campaignID string, t time.Time) (*models.RawSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Seek target: one millisecond before t, so equality at t is excluded.
	seek := sampleKey(campaignID, t.Add(-time.Millisecond))

	var sample *models.RawSample
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = samplePrefix(campaignID)
		opts.Reverse = true

		it := txn.NewIterator(opts)
		defer it.Close()

		it.Seek(seek)
		if !it.Valid() {
			return nil
		}
		decoded, decodeErr := decodeSample(it.Item())
		if decodeErr != nil {
			return decodeErr
		}
		sample = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sample, nil
}

func (s *rawSampleStore) DeleteBefore(ctx context.Context, campaignID string, horizon time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	boundary := sampleKey(campaignID, horizon)

	var stale [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = samplePrefix(campaignID)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			if string(key) >= string(boundary) {
				break
			}
			stale = append(stale, key)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}
	return len(stale), nil
}

func (s *rawSampleStore) Close() error {
	return s.db.Close()
}

func samplePrefix(campaignID string) []byte {
	return []byte("sample/" + campaignID + "/")
}

func sampleKey(campaignID string, t time.Time) []byte {
	return []byte(fmt.Sprintf("sample/%s/%016x", campaignID, t.UTC().UnixMilli()))
}

func decodeSample(item *badger.Item) (*models.RawSample, error) {
	var sample models.RawSample
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &sample)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode sample %q: %w", item.Key(), err)
	}
	return &sample, nil
}
