package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"log-summary/internal/events"
	"log-summary/internal/models"
	"log-summary/internal/parsers"
	"log-summary/internal/shared/loggers"
	"log-summary/internal/shared/metrics"
	"log-summary/internal/shared/svcerrors"
	"log-summary/internal/shared/validators"
	"log-summary/internal/stores"
	"log-summary/internal/streams"
	"log-summary/internal/summarizers"
)

const DefaultMaxLogBytes int64 = 64 << 20

// IngestResult represents the result of analysing one uploaded log.
type IngestResult struct {
	Report *models.Report
	// Stored is false when the same run was already in the history.
	Stored bool
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest analyses the log read from r and records the run in the history.
	Ingest(ctx context.Context, meta models.RunMetadata, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	summaryBuilder         summarizers.SummaryBuilder
	summaryStore           stores.SummaryStore
	rawLogStore            stores.RawLogStore
	summaryCreatedProducer streams.SummaryCreatedProducer
	validate               *validators.Validate
	maxLogBytes            int64
	now                    func() time.Time
}

func NewIngestionService(
	summaryBuilder summarizers.SummaryBuilder,
	summaryStore stores.SummaryStore,
	rawLogStore stores.RawLogStore,
	summaryCreatedProducer streams.SummaryCreatedProducer,
	maxLogBytes int64,
) IngestionService {
	if maxLogBytes <= 0 {
		maxLogBytes = DefaultMaxLogBytes
	}
	return &ingestionService{
		summaryBuilder:         summaryBuilder,
		summaryStore:           summaryStore,
		rawLogStore:            rawLogStore,
		summaryCreatedProducer: summaryCreatedProducer,
		validate:               validators.New(),
		maxLogBytes:            maxLogBytes,
		now:                    time.Now,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, meta models.RunMetadata, r io.Reader) (*IngestResult, error) {
	result, err := s.ingest(ctx, meta, r)
	if err != nil {
		code := svcerrors.NewInternalErrorUndefined(err).Code
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			code = svcErr.Code
		}
		metricSummaryIngestedTotal.WithLabelValues(code, outcomeRejected).Inc()
		return nil, err
	}

	outcome := outcomeStored
	if !result.Stored {
		outcome = outcomeDuplicate
	}
	metricSummaryIngestedTotal.WithLabelValues(metrics.ValueNoError, outcome).Inc()
	return result, nil
}

func (s *ingestionService) ingest(ctx context.Context, meta models.RunMetadata, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting log for server: %s, clean: %t, commit: %s", meta.Server, meta.IsClean, meta.Commit)

	raw, err := s.validateUpload(meta, r)
	if err != nil {
		return nil, err
	}

	lines := SplitLines(string(raw))
	metricLogLinesIngested.WithLabelValues().Observe(float64(len(lines)))

	report, err := s.summaryBuilder.Build(ctx, lines, meta)
	if err != nil {
		return nil, mapBuildError(err)
	}
	summary := report.Summary
	summary.CreatedAt = s.now().UTC()

	stored, err := s.summaryStore.Add(ctx, summary)
	if err != nil {
		return nil, errInternalSummaryStoreFailed(err)
	}
	if !stored {
		logger.Info().
			Str(loggers.FieldSummaryID, summary.ID).
			Str(loggers.FieldVersion, summary.Version).
			Msg("run already in history, skipped storing")
		return &IngestResult{Report: report, Stored: false}, nil
	}

	if err := s.rawLogStore.Put(ctx, summary.ID, raw); err != nil {
		return nil, errInternalRawLogStoreFailed(err)
	}

	event := &events.SummaryCreatedEvent{
		SummaryID: summary.ID,
		Server:    summary.Server,
		Version:   summary.Version,
		CreatedAt: summary.CreatedAt,
		Paths:     report.Paths,
	}
	if err := s.summaryCreatedProducer.Produce(ctx, event); err != nil {
		return nil, errInternalSummaryCreatedPublishFailed(err)
	}

	logger.Info().
		Str(loggers.FieldSummaryID, summary.ID).
		Str(loggers.FieldVersion, summary.Version).
		Msg("stored new run")
	return &IngestResult{Report: report, Stored: true}, nil
}

func (s *ingestionService) validateUpload(meta models.RunMetadata, r io.Reader) ([]byte, error) {
	if err := s.validate.Struct(meta); err != nil {
		return nil, errValidationFailed(formatMetadataError(err), err)
	}

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	raw, err := s.readWithLimit(r, s.maxLogBytes)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}
	if !utf8.Valid(raw) {
		return nil, errValidationFailed("log must be UTF-8 text", nil)
	}
	return raw, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int64) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if int64(len(buf)) > max {
		return nil, errValidationFailed(fmt.Sprintf("log too large: must be <= %d bytes", max), nil)
	}
	return buf, nil
}

func mapBuildError(err error) *svcerrors.ServiceError {
	switch {
	case errors.Is(err, parsers.ErrNoHeaderLine),
		errors.Is(err, parsers.ErrTimestampFormat),
		errors.Is(err, parsers.ErrMalformedHeader):
		return errMalformedLog(err)
	case errors.Is(err, parsers.ErrVersionNotFound):
		return errVersionNotFound(err)
	case errors.Is(err, models.ErrEmptySeries), errors.Is(err, models.ErrDivisionByZero):
		return errDegenerateRun(err)
	default:
		return svcerrors.NewInternalErrorUndefined(err)
	}
}

func formatMetadataError(err error) string {
	var validationErrors validators.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid run metadata"
	}
	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", strings.ToLower(e.Field()), e.Tag(), e.Param()))
			continue
		}
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(e.Field()), e.Tag()))
	}
	return "invalid run metadata: " + strings.Join(fields, ", ")
}
