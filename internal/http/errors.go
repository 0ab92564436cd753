package http

import (
	"fmt"

	"traffic-metrics/internal/shared/svcerrors"
)

const (
	errorCodeInvalidLimitParam    = "API_1000"
	errorCodeInvalidStartPayload  = "API_1001"
	errorCodeInvalidIntervalParam = "API_1002"
)

func errInvalidLimitParam(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(
		errorCodeInvalidLimitParam,
		fmt.Sprintf("limit must be an integer, got %q", raw),
		cause,
	)
}

func errInvalidStartPayload(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(
		errorCodeInvalidStartPayload,
		"request body must be valid JSON",
		cause,
	)
}

func errInvalidIntervalParam(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(
		errorCodeInvalidIntervalParam,
		fmt.Sprintf("intervalSeconds must be an integer, got %q", raw),
		cause,
	)
}
