package models

// CampaignStatus is the campaign lifecycle state as owned by the (external)
// campaign management layer.
type CampaignStatus string

const (
	CampaignCreated CampaignStatus = "created"
	CampaignOK      CampaignStatus = "ok"
	CampaignRunning CampaignStatus = "running"
	CampaignPaused  CampaignStatus = "paused"
	CampaignStopped CampaignStatus = "stopped"
)

// Campaign is the slice of campaign state the aggregation engine needs.
type Campaign struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Status        CampaignStatus `json:"status"`
	Archived      bool           `json:"archived"`
	VendorTracked bool           `json:"vendorTracked"`
}

// EligibleForCollection reports whether the collector should poll this
// campaign: non-archived, vendor-tracked, lifecycle in {created, ok, running}.
func (c Campaign) EligibleForCollection() bool {
	if c.Archived || !c.VendorTracked {
		return false
	}
	switch c.Status {
	case CampaignCreated, CampaignOK, CampaignRunning:
		return true
	default:
		return false
	}
}
