package stores

import (
	"context"
	"sync"

	"traffic-metrics/internal/models"
)

//go:generate mockgen -source=campaign_store.go -destination=./mocks/campaign_store_mock.go -package=mocks
type CampaignStore interface {
	// Register adds or replaces a campaign in the registry.
	Register(ctx context.Context, campaign models.Campaign) error
	// Exists reports whether campaignID is known.
	Exists(ctx context.Context, campaignID string) (bool, error)
	// List returns every registered campaign in stable registration order.
	List(ctx context.Context) ([]models.Campaign, error)
	// ListEligible returns campaigns the collector should poll, in stable
	// registration order.
	ListEligible(ctx context.Context) ([]models.Campaign, error)
}

// campaignStore is an in-memory registry seeded at startup. Campaign CRUD
// is owned by the surrounding platform; the aggregation engine only needs
// existence checks and eligibility listings.
type campaignStore struct {
	mu    sync.RWMutex
	byID  map[string]models.Campaign
	order []string
}

func NewCampaignStore(seed []models.Campaign) CampaignStore {
	s := &campaignStore{byID: make(map[string]models.Campaign, len(seed))}
	for _, c := range seed {
		if _, exists := s.byID[c.ID]; !exists {
			s.order = append(s.order, c.ID)
		}
		s.byID[c.ID] = c
	}
	return s
}

func (s *campaignStore) Register(ctx context.Context, campaign models.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[campaign.ID]; !exists {
		s.order = append(s.order, campaign.ID)
	}
	s.byID[campaign.ID] = campaign
	return nil
}

func (s *campaignStore) Exists(ctx context.Context, campaignID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[campaignID]
	return ok, nil
}

func (s *campaignStore) List(ctx context.Context) ([]models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaigns := make([]models.Campaign, 0, len(s.order))
	for _, id := range s.order {
		campaigns = append(campaigns, s.byID[id])
	}
	return campaigns, nil
}

func (s *campaignStore) ListEligible(ctx context.Context) ([]models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var eligible []models.Campaign
	for _, id := range s.order {
		if c := s.byID[id]; c.EligibleForCollection() {
			eligible = append(eligible, c)
		}
	}
	return eligible, nil
}
