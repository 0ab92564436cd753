package queries

import (
	"fmt"

	"traffic-metrics/internal/shared/svcerrors"
)

const (
	codeUnknownRangeKey   = "QRY_1000"
	codeCampaignNotFound  = "QRY_1001"
	codeInvalidLimit      = "QRY_1002"
	codeInternalSamples   = "QRY_9000"
	codeInternalSummaries = "QRY_9001"
	codeInternalCampaigns = "QRY_9002"
)

// errUnknownRangeKey returns an error when the requested range key is not configured.
func errUnknownRangeKey(rangeKey string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownRangeKey, fmt.Sprintf("unknown range key: %s", rangeKey), nil)
}

// errCampaignNotFound returns an error when the campaign is not registered.
func errCampaignNotFound(campaignID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeCampaignNotFound, fmt.Sprintf("campaign not found: %s", campaignID), nil)
}

// errInvalidLimit returns an error when the history limit is negative.
func errInvalidLimit(limit int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLimit, fmt.Sprintf("limit must not be negative, got %d", limit), nil)
}

// errInternalSampleQueryFailed returns an error when a raw sample lookup fails.
func errInternalSampleQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSamples, fmt.Errorf("sampleQueryFailed: %w", cause))
}

// errInternalSummaryQueryFailed returns an error when a summary lookup fails.
func errInternalSummaryQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaries, fmt.Errorf("summaryQueryFailed: %w", cause))
}

// errInternalCampaignLookupFailed returns an error when the campaign registry fails.
func errInternalCampaignLookupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCampaigns, fmt.Errorf("campaignLookupFailed: %w", cause))
}
