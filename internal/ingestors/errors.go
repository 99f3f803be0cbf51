package ingestors

import (
	"fmt"

	"log-summary/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "SUM_1000"
	codeMalformedLog     = "SUM_1001"
	codeVersionNotFound  = "SUM_1002"
	codeDegenerateRun    = "SUM_1003"

	codeInternalSummaryStoreFailed          = "SUM_9000"
	codeInternalRawLogStoreFailed           = "SUM_9001"
	codeInternalSummaryCreatedPublishFailed = "SUM_9002"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errMalformedLog returns an error when the log does not follow the record layout.
func errMalformedLog(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedLog, "malformed log: "+cause.Error(), cause)
}

// errVersionNotFound returns an error when no record announces the application version.
func errVersionNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeVersionNotFound, "application version not found in log", cause)
}

// errDegenerateRun returns an error when the log holds nothing to measure, e.g. no request timings.
func errDegenerateRun(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDegenerateRun, "log cannot be summarised: "+cause.Error(), cause)
}

// errInternalSummaryStoreFailed returns an error when a summary store operation fails.
func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}

// errInternalRawLogStoreFailed returns an error when archiving the raw log fails.
func errInternalRawLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRawLogStoreFailed, fmt.Errorf("rawLogStoreFailed: %w", cause))
}

// errInternalSummaryCreatedPublishFailed returns an error when publishing a summary created event fails.
func errInternalSummaryCreatedPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryCreatedPublishFailed, fmt.Errorf("summaryCreatedPublishFailed: %w", cause))
}
