package http

import (
	"net/http"

	"log-summary/internal/exporters"
	"log-summary/internal/summarizers"

	"github.com/go-chi/chi/v5"
)

const paramSummaryID = "summaryID"

type listSummariesHandler struct {
	historyService summarizers.HistoryService
}

func NewListSummariesHandler(historyService summarizers.HistoryService) AppHttpHandler {
	return &listSummariesHandler{historyService: historyService}
}

// Handle processes GET /summaries requests with the processed executions.
func (h *listSummariesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	history, svcErr := h.historyService.Processed(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, history)
}

type getSummaryHandler struct {
	historyService summarizers.HistoryService
}

func NewGetSummaryHandler(historyService summarizers.HistoryService) AppHttpHandler {
	return &getSummaryHandler{historyService: historyService}
}

// Handle processes GET /summaries/{summaryID} requests.
func (h *getSummaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summary, svcErr := h.historyService.Get(r.Context(), chi.URLParam(r, paramSummaryID))
	if svcErr != nil {
		return svcErr
	}
	setSummaryID(w, summary.ID)
	return writeJSON(w, http.StatusOK, summary)
}

type getPathsCSVHandler struct {
	historyService summarizers.HistoryService
	exportService  exporters.ExportService
}

func NewGetPathsCSVHandler(historyService summarizers.HistoryService, exportService exporters.ExportService) AppHttpHandler {
	return &getPathsCSVHandler{historyService: historyService, exportService: exportService}
}

// Handle processes GET /summaries/{summaryID}/paths.csv requests. The export is written
// asynchronously, so a stored summary can still answer 404 for a short while.
func (h *getPathsCSVHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summary, svcErr := h.historyService.Get(r.Context(), chi.URLParam(r, paramSummaryID))
	if svcErr != nil {
		return svcErr
	}
	setSummaryID(w, summary.ID)
	data, svcErr := h.exportService.Get(r.Context(), summary.ID)
	if svcErr != nil {
		return svcErr
	}
	writeFile(w, "text/csv; charset=utf-8", exporters.ExportFileName(summary.Version, summary.CreatedAt), data)
	return nil
}

type getRawLogHandler struct {
	historyService summarizers.HistoryService
}

func NewGetRawLogHandler(historyService summarizers.HistoryService) AppHttpHandler {
	return &getRawLogHandler{historyService: historyService}
}

// Handle processes GET /summaries/{summaryID}/log requests with the archived upload.
func (h *getRawLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summaryID := chi.URLParam(r, paramSummaryID)
	setSummaryID(w, summaryID)
	raw, svcErr := h.historyService.RawLog(r.Context(), summaryID)
	if svcErr != nil {
		return svcErr
	}
	writeFile(w, "text/plain; charset=utf-8", "", raw)
	return nil
}
