package ingestors

import (
	"fmt"

	"traffic-metrics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeSampleAlreadyRecorded = "ING_1001"
	codeCampaignNotFound      = "ING_1002"

	codeInternalSampleStoreFailed     = "ING_9000"
	codeInternalSamplePublisherFailed = "ING_9001"
	codeInternalCampaignStoreFailed   = "ING_9002"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errSampleAlreadyRecorded returns an error when a sample with the same
// campaign and timestamp was already recorded.
func errSampleAlreadyRecorded(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeSampleAlreadyRecorded, "sample already recorded for this timestamp", cause)
}

// errCampaignNotFound returns an error when the campaign is not registered.
func errCampaignNotFound(campaignID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeCampaignNotFound, fmt.Sprintf("campaign not found: %s", campaignID), nil)
}

// errInternalSampleStoreFailed returns an error when a raw sample store operation fails.
func errInternalSampleStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSampleStoreFailed, fmt.Errorf("sampleStoreFailed: %w", cause))
}

// errInternalSamplePublisherFailed returns an error when publishing the recorded-sample event fails.
func errInternalSamplePublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSamplePublisherFailed, fmt.Errorf("samplePublisherFailed: %w", cause))
}

// errInternalCampaignStoreFailed returns an error when the campaign registry fails.
func errInternalCampaignStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCampaignStoreFailed, fmt.Errorf("campaignStoreFailed: %w", cause))
}
