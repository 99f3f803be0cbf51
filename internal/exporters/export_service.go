package exporters

import (
	"bytes"
	"context"
	"errors"
	"strconv"

	"log-summary/internal/events"
	"log-summary/internal/shared/loggers"
	"log-summary/internal/shared/svcerrors"
	"log-summary/internal/stores"
)

//go:generate mockgen -source=export_service.go -destination=./mocks/export_service_mock.go -package=mocks
type ExportService interface {
	// Export writes the per-path CSV of a newly created summary.
	Export(ctx context.Context, event *events.SummaryCreatedEvent) *svcerrors.ServiceError
	// Get returns the CSV written for a summary.
	Get(ctx context.Context, summaryID string) ([]byte, *svcerrors.ServiceError)
}

type exportService struct {
	pathExportStore stores.PathExportStore
}

func NewExportService(pathExportStore stores.PathExportStore) ExportService {
	return &exportService{pathExportStore: pathExportStore}
}

func (s *exportService) Export(ctx context.Context, event *events.SummaryCreatedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldSummaryID, event.SummaryID).
		Msg("started exporting " + strconv.Itoa(len(event.Paths)) + " paths")

	var buf bytes.Buffer
	if err := EncodePathAggregates(&buf, event.Paths); err != nil {
		return errInternalCSVEncodeFailed(err)
	}
	if err := s.pathExportStore.Put(ctx, event.SummaryID, buf.Bytes()); err != nil {
		return errInternalPathExportStoreFailed(err)
	}

	metricPathExportWrittenTotal.WithLabelValues(pathCountBucket(len(event.Paths))).Inc()
	return nil
}

func (s *exportService) Get(ctx context.Context, summaryID string) ([]byte, *svcerrors.ServiceError) {
	data, err := s.pathExportStore.Get(ctx, summaryID)
	if err != nil {
		if errors.Is(err, stores.ErrPathExportNotFound) {
			return nil, errPathExportNotFound(summaryID, err)
		}
		return nil, errInternalPathExportStoreFailed(err)
	}
	return data, nil
}
