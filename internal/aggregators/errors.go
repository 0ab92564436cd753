package aggregators

import (
	"fmt"

	"traffic-metrics/internal/shared/svcerrors"
)

const (
	codeInternalSummaryRollupFailed = "AGG_9000"
	codeInternalSummaryStoreFailed  = "AGG_9001"
	codeInternalSampleStoreFailed   = "AGG_9002"
)

// errInternalSummaryRollupFailed returns an error when folding a sample into a window summary fails.
func errInternalSummaryRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryRollupFailed, fmt.Errorf("summaryRollupFailed: %w", cause))
}

// errInternalSummaryStoreFailed returns an error when a window summary store operation fails.
func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}

// errInternalSampleStoreFailed returns an error when a raw sample store lookup fails.
func errInternalSampleStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSampleStoreFailed, fmt.Errorf("sampleStoreFailed: %w", cause))
}
