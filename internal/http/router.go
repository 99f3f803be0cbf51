package http

import (
	"net/http"

	"log-summary/internal/exporters"
	"log-summary/internal/ingestors"
	"log-summary/internal/shared/loggers"
	"log-summary/internal/shared/metrics"
	"log-summary/internal/summarizers"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// RouterDeps are the services the HTTP API is served from.
type RouterDeps struct {
	IngestionService ingestors.IngestionService
	HistoryService   summarizers.HistoryService
	ExportService    exporters.ExportService
	// DefaultServer names uploads sent without the x-server header.
	DefaultServer string
	// UploadLimiter throttles POST /summaries. Nil means unlimited.
	UploadLimiter *rate.Limiter
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps RouterDeps, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	createSummaryHandler := NewCreateSummaryHandler(deps.IngestionService, deps.DefaultServer)
	listSummariesHandler := NewListSummariesHandler(deps.HistoryService)
	getSummaryHandler := NewGetSummaryHandler(deps.HistoryService)
	getPathsCSVHandler := NewGetPathsCSVHandler(deps.HistoryService, deps.ExportService)
	getRawLogHandler := NewGetRawLogHandler(deps.HistoryService)

	// Routes
	router.Route("/summaries", func(r chi.Router) {
		r.With(mwRateLimit(deps.UploadLimiter)).Post("/", errorHandlingAdapter(createSummaryHandler))
		r.Get("/", errorHandlingAdapter(listSummariesHandler))
		r.Get("/{summaryID}", errorHandlingAdapter(getSummaryHandler))
		r.Get("/{summaryID}/paths.csv", errorHandlingAdapter(getPathsCSVHandler))
		r.Get("/{summaryID}/log", errorHandlingAdapter(getRawLogHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
