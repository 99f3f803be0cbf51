package exporters

import (
	"fmt"

	"log-summary/internal/shared/svcerrors"
)

const (
	codePathExportNotFound = "EXP_1000"

	codeInternalCSVEncodeFailed       = "EXP_9000"
	codeInternalPathExportStoreFailed = "EXP_9001"
)

// errPathExportNotFound returns an error when no export has been written for a summary yet.
func errPathExportNotFound(summaryID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codePathExportNotFound, fmt.Sprintf("no path export for summary %s", summaryID), cause)
}

// errInternalCSVEncodeFailed returns an error when path aggregates cannot be encoded as CSV.
func errInternalCSVEncodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCSVEncodeFailed, fmt.Errorf("csvEncodeFailed: %w", cause))
}

// errInternalPathExportStoreFailed returns an error when a path export store operation fails.
func errInternalPathExportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPathExportStoreFailed, fmt.Errorf("pathExportStoreFailed: %w", cause))
}
