package summarizers

import (
	"fmt"

	"log-summary/internal/shared/svcerrors"
)

const (
	codeSummaryNotFound = "SUM_1004"
	codeRawLogNotFound  = "SUM_1005"

	codeInternalSummaryStoreFailed = "SUM_9003"
	codeInternalRawLogStoreFailed  = "SUM_9004"
)

// errSummaryNotFound returns an error when no stored summary has the requested ID.
func errSummaryNotFound(summaryID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSummaryNotFound, fmt.Sprintf("summary %s not found", summaryID), cause)
}

// errRawLogNotFound returns an error when no raw log was archived for a summary.
func errRawLogNotFound(summaryID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeRawLogNotFound, fmt.Sprintf("raw log of summary %s not found", summaryID), cause)
}

// errInternalSummaryStoreFailed returns an error when reading the summary history fails.
func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}

// errInternalRawLogStoreFailed returns an error when reading an archived raw log fails.
func errInternalRawLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRawLogStoreFailed, fmt.Errorf("rawLogStoreFailed: %w", cause))
}
