package http

import (
	"net/http"

	"log-summary/internal/ingestors"
	"log-summary/internal/models"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// CreateSummaryResponse is the body of POST /summaries.
type CreateSummaryResponse struct {
	Stored bool `json:"stored"`
	*models.Report
}

type createSummaryHandler struct {
	ingestionService ingestors.IngestionService
	defaultServer    string
}

func NewCreateSummaryHandler(ingestionService ingestors.IngestionService, defaultServer string) AppHttpHandler {
	return &createSummaryHandler{
		ingestionService: ingestionService,
		defaultServer:    defaultServer,
	}
}

// Handle processes POST /summaries requests. The body is the raw log.
// It answers 201 for a new run and 200 for a run that was already stored.
func (h *createSummaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	isClean, err := clean(r)
	if err != nil {
		return errInvalidHeader(headerClean, err)
	}
	meta := models.RunMetadata{
		Server:  server(r, h.defaultServer),
		IsClean: isClean,
		Commit:  commit(r),
	}

	result, err := h.ingestionService.Ingest(r.Context(), meta, r.Body)
	if err != nil {
		return err
	}

	setSummaryID(w, result.Report.Summary.ID)
	status := http.StatusCreated
	if !result.Stored {
		status = http.StatusOK
	}
	return writeJSON(w, status, CreateSummaryResponse{Stored: result.Stored, Report: result.Report})
}
