package http

import (
	"net/http"

	"log-summary/internal/shared/loggers"
	"log-summary/internal/shared/svcerrors"
)

// ErrorResponse represents an HTTP error response.
//
// Example JSON:
//
//	{
//	  "requestId": "01HMZ3NDEKTSV4RRFFQ69G5FAV",
//	  "errorCategory": "invalid_argument",
//	  "errorCode": "SUM_1002",
//	  "errorDescription": "application version not found in log"
//	}
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter turns an AppHttpHandler into an http.HandlerFunc that renders any
// returned error as an ErrorResponse. Errors that are not ServiceErrors become SYS_9001.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		if svcErr.IsInternalError() {
			loggers.Ctx(r.Context()).Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Msg("internal error in handler")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	// set serviceError for middlewares
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int(loggers.FieldHttpStatus, svcErr.HttpStatusCode).
		Msg("error response")

	_ = writeJSON(w, svcErr.HttpStatusCode, ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}
