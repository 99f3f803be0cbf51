package http

import (
	"fmt"

	"log-summary/internal/shared/svcerrors"
)

const (
	codeInvalidHeader     = "REQ_1000"
	codeUploadRateLimited = "REQ_1001"
)

// errInvalidHeader returns an error when a request header cannot be parsed.
func errInvalidHeader(header string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidHeader, fmt.Sprintf("invalid %s header", header), cause)
}

// errUploadRateLimited returns an error when uploads arrive faster than the configured rate.
func errUploadRateLimited() *svcerrors.ServiceError {
	return svcerrors.NewTooManyRequestsError(codeUploadRateLimited, "upload rate limit exceeded")
}
