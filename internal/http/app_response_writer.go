package http

import (
	"net/http"

	"log-summary/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps the http.ResponseWriter so middlewares can read what a handler did:
// the service error it failed with and the summary it served.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError  *svcerrors.ServiceError
	summaryID string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

func (w *appResponseWriter) SetSummaryID(summaryID string) {
	w.summaryID = summaryID
}

func (w *appResponseWriter) SummaryID() string {
	return w.summaryID
}

// setSummaryID records the summary a handler served, when w is an appResponseWriter.
func setSummaryID(w http.ResponseWriter, summaryID string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetSummaryID(summaryID)
	}
}
