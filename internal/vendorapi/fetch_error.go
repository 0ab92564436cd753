package vendorapi

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies a failed vendor fetch for retry decisions.
type FetchErrorKind string

const (
	// FetchTimeout is a request that exceeded the fetch deadline.
	FetchTimeout FetchErrorKind = "timeout"
	// FetchRateLimited is an HTTP 429 from the vendor.
	FetchRateLimited FetchErrorKind = "rate_limited"
	// FetchUnavailable is a transient 5xx or network-level failure.
	FetchUnavailable FetchErrorKind = "unavailable"
	// FetchProtocol is a permanent failure: non-429 4xx or a malformed
	// response body. Never retried.
	FetchProtocol FetchErrorKind = "protocol"
)

// FetchError is the typed result of a failed vendor snapshot fetch.
type FetchError struct {
	Kind       FetchErrorKind
	CampaignID string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("vendor fetch failed for campaign %s: %s (status %d)", e.CampaignID, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("vendor fetch failed for campaign %s: %s", e.CampaignID, e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the failure is transient.
func (e *FetchError) Retryable() bool {
	switch e.Kind {
	case FetchTimeout, FetchRateLimited, FetchUnavailable:
		return true
	default:
		return false
	}
}

// IsRetryable reports whether err is a transient FetchError.
func IsRetryable(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Retryable()
	}
	return false
}
