package collector

import (
	"fmt"
	"time"

	"traffic-metrics/internal/shared/svcerrors"
)

const (
	codeAlreadyRunning  = "COL_1000"
	codeNotRunning      = "COL_1001"
	codeInvalidInterval = "COL_1002"
)

// errAlreadyRunning returns an error when start is called on a running collector.
func errAlreadyRunning() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeAlreadyRunning, "collector already running", nil)
}

// errNotRunning returns an error when stop is called on a stopped collector.
func errNotRunning() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeNotRunning, "collector not running", nil)
}

// errInvalidInterval returns an error for sub-second polling intervals.
func errInvalidInterval(interval time.Duration) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidInterval, fmt.Sprintf("interval must be at least %s, got %s", minInterval, interval), nil)
}
