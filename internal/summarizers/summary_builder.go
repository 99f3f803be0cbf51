package summarizers

import (
	"context"
	"fmt"
	"time"

	"log-summary/internal/aggregators"
	"log-summary/internal/models"
	"log-summary/internal/parsers"
	"log-summary/internal/shared/loggers"
)

const (
	DefaultTimingClassName = "SpringTimerFilter"
	DefaultSlowestLimit    = 10
)

// BuilderOptions configures a SummaryBuilder.
type BuilderOptions struct {
	// TimingClassName selects the records that carry request timings.
	TimingClassName string
	// SlowestLimit caps Report.Slowest.
	SlowestLimit int
}

// SummaryBuilder turns the lines of one log into a Report.
//
// Build runs the whole analysis in order: records are reconstructed, the version is found, level
// counts and the log span are taken, timing events are extracted and aggregated, then classified.
// Any failure aborts the run; no partial report is returned. Errors are wrapped with the stage
// that failed ("reconstruct", "version", "durations", "paths", "rates" or "apdex") and keep
// their sentinel for errors.Is.
//
//go:generate mockgen -source=summary_builder.go -destination=./mocks/summary_builder_mock.go -package=mocks
type SummaryBuilder interface {
	Build(ctx context.Context, lines []string, meta models.RunMetadata) (*models.Report, error)
}

type summaryBuilder struct {
	reconstructor    parsers.RecordReconstructor
	versionExtractor parsers.VersionExtractor
	timingExtractor  parsers.TimingExtractor
	classifier       aggregators.SatisfactionClassifier
	opts             BuilderOptions
}

func NewSummaryBuilder(
	reconstructor parsers.RecordReconstructor,
	versionExtractor parsers.VersionExtractor,
	timingExtractor parsers.TimingExtractor,
	classifier aggregators.SatisfactionClassifier,
	opts BuilderOptions,
) SummaryBuilder {
	if opts.TimingClassName == "" {
		opts.TimingClassName = DefaultTimingClassName
	}
	if opts.SlowestLimit <= 0 {
		opts.SlowestLimit = DefaultSlowestLimit
	}
	return &summaryBuilder{
		reconstructor:    reconstructor,
		versionExtractor: versionExtractor,
		timingExtractor:  timingExtractor,
		classifier:       classifier,
		opts:             opts,
	}
}

func (b *summaryBuilder) Build(ctx context.Context, lines []string, meta models.RunMetadata) (*models.Report, error) {
	records, err := b.reconstructor.Reconstruct(lines)
	if err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}

	version, err := b.versionExtractor.Extract(records)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}

	summary := &models.Summary{
		Server:       meta.Server,
		Version:      version,
		IsClean:      meta.IsClean,
		Commit:       meta.Commit,
		TotalLines:   len(lines),
		TotalRecords: len(records),
	}
	countLevels(summary, records)
	summary.Start, summary.End = span(records)

	extraction := b.timingExtractor.Extract(records, b.opts.TimingClassName)
	summary.TimingRecordCount = extraction.Matched
	summary.TimingEventCount = len(extraction.Events)
	summary.TimingMissCount = extraction.Misses
	metricTimingEventsExtractedTotal.WithLabelValues(b.opts.TimingClassName).Add(float64(len(extraction.Events)))
	metricTimingParseMissesTotal.WithLabelValues(b.opts.TimingClassName).Add(float64(extraction.Misses))

	summary.Durations, err = aggregators.Aggregate(aggregators.Durations(extraction.Events))
	if err != nil {
		return nil, fmt.Errorf("durations: %w", err)
	}

	summary.Satisfaction = b.classifier.Classify(extraction.Events)

	paths, err := aggregators.BuildPathAggregates(extraction.Events)
	if err != nil {
		return nil, fmt.Errorf("paths: %w", err)
	}

	rates, err := summary.Rates()
	if err != nil {
		return nil, fmt.Errorf("rates: %w", err)
	}
	rates.Apdex, err = aggregators.Apdex(summary.Satisfaction)
	if err != nil {
		return nil, fmt.Errorf("apdex: %w", err)
	}

	report := &models.Report{
		Summary: summary,
		Rates:   rates,
		Paths:   paths,
		Slowest: aggregators.TopSlowest(extraction.Events, b.opts.SlowestLimit),
	}
	logReport(loggers.Ctx(ctx), report)
	return report, nil
}

func countLevels(summary *models.Summary, records []models.LogRecord) {
	for _, record := range records {
		switch record.Level {
		case models.LevelError:
			summary.ErrorCount++
		case models.LevelWarn:
			summary.WarnCount++
		case models.LevelInfo:
			summary.InfoCount++
		}
	}
}

// span returns the earliest and latest timestamps. Records are not assumed to be in time order.
func span(records []models.LogRecord) (start, end time.Time) {
	if len(records) == 0 {
		return start, end
	}
	start, end = records[0].Timestamp, records[0].Timestamp
	for _, record := range records[1:] {
		if record.Timestamp.Before(start) {
			start = record.Timestamp
		}
		if record.Timestamp.After(end) {
			end = record.Timestamp
		}
	}
	return start, end
}

func logReport(logger *loggers.Logger, report *models.Report) {
	summary := report.Summary
	rates := report.Rates
	logger.Info().
		Str(loggers.FieldServer, summary.Server).
		Str(loggers.FieldVersion, summary.Version).
		Int("lines", summary.TotalLines).
		Int("records", summary.TotalRecords).
		Float64("records_to_lines", rates.RecordsToLines).
		Int("error_records", summary.ErrorCount).
		Float64("error_rate", rates.Error).
		Int("warn_records", summary.WarnCount).
		Float64("warn_rate", rates.Warn).
		Int("info_records", summary.InfoCount).
		Float64("info_rate", rates.Info).
		Int("other_records", summary.OtherCount()).
		Float64("other_rate", rates.Other).
		Int("timing_records", summary.TimingRecordCount).
		Float64("timing_record_rate", rates.TimingRecord).
		Int("timing_misses", summary.TimingMissCount).
		Time("start", summary.Start).
		Time("end", summary.End).
		Str("log_duration", summary.FormatLogDuration()).
		Msg("log records analysed")

	event := logger.Info().
		Int("count", summary.Durations.Count).
		Int64("min_ms", summary.Durations.Min).
		Int64("max_ms", summary.Durations.Max).
		Int64("sum_ms", summary.Durations.Sum).
		Float64("mean_ms", summary.Durations.Mean).
		Float64("median_ms", summary.Durations.Median).
		Int("satisfied", summary.Satisfaction.Satisfied).
		Float64("satisfied_rate", rates.Satisfied).
		Int("tolerant", summary.Satisfaction.Tolerant).
		Float64("tolerant_rate", rates.Tolerant).
		Int("frustrated", summary.Satisfaction.Frustrated).
		Float64("frustrated_rate", rates.Frustrated).
		Float64("apdex", rates.Apdex).
		Int("paths", len(report.Paths))
	if perSpan, err := summary.ResponseTimePerLogDuration(); err == nil {
		event = event.Float64("response_time_per_log_duration", perSpan)
	}
	event.Msg("response times analysed")
}
