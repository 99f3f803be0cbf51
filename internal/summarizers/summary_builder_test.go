package summarizers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"log-summary/internal/aggregators"
	"log-summary/internal/models"
	"log-summary/internal/parsers"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(opts BuilderOptions) SummaryBuilder {
	patterns := parsers.NewPatterns(time.UTC)
	return NewSummaryBuilder(
		parsers.NewRecordReconstructor(patterns),
		parsers.NewVersionExtractor(patterns),
		parsers.NewTimingExtractor(patterns),
		aggregators.NewSatisfactionClassifier(aggregators.DefaultThresholds),
		opts,
	)
}

var testMeta = models.RunMetadata{Server: "app-01", IsClean: true, Commit: "9f2c1e0"}

func TestSummaryBuilder_Build_EndToEnd(t *testing.T) {
	t.Parallel()

	lines := []string{
		"01 Jan 2024 00:00:00:000 INFO [t] (C.java:1) - Opendata [version=1.2.3]",
		"01 Jan 2024 00:00:01:000 INFO [t] (SpringTimerFilter.java:2) - ... for Spring Action [GET:/a] took (50) ms",
		"01 Jan 2024 00:00:02:000 INFO [t] (SpringTimerFilter.java:3) - ... for Spring Action [GET:/a] took (150) ms",
	}

	report, err := newTestBuilder(BuilderOptions{}).Build(context.Background(), lines, testMeta)
	require.NoError(t, err)

	summary := report.Summary
	assert.Equal(t, "app-01", summary.Server)
	assert.True(t, summary.IsClean)
	assert.Equal(t, "9f2c1e0", summary.Commit)
	assert.Equal(t, "1.2.3", summary.Version)
	assert.Equal(t, 3, summary.TotalLines)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 3, summary.InfoCount)
	assert.Equal(t, 0, summary.OtherCount())
	assert.Equal(t, 2, summary.TimingRecordCount)
	assert.Equal(t, 2, summary.TimingEventCount)
	assert.Equal(t, 0, summary.TimingMissCount)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), summary.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 2, 0, time.UTC), summary.End)
	assert.Equal(t, models.StatBlock{Count: 2, Min: 50, Max: 150, Sum: 200, Mean: 100, Median: 100}, summary.Durations)
	assert.Equal(t, models.SatisfactionCounts{Satisfied: 1, Tolerant: 1, Frustrated: 0}, summary.Satisfaction)
	assert.Empty(t, summary.ID)

	assert.Equal(t, 0.75, report.Rates.Apdex)
	assert.Equal(t, 1.0, report.Rates.RecordsToLines)
	assert.InDelta(t, 2.0/3.0, report.Rates.TimingRecord, 1e-9)

	require.Len(t, report.Paths, 1)
	assert.Equal(t, "/a", report.Paths[0].Path)
	assert.Equal(t, 2, report.Paths[0].Count)

	assert.Equal(t, []models.TimingEvent{
		{Method: "GET", Path: "/a", DurationMs: 150},
		{Method: "GET", Path: "/a", DurationMs: 50},
	}, report.Slowest)
}

func TestSummaryBuilder_Build_CountsLevelsAndSpan(t *testing.T) {
	t.Parallel()

	lines := []string{
		"01 Jan 2024 00:00:05:000 INFO [main] (App.java:1) - starting [version=2.0.0-7]",
		"01 Jan 2024 00:00:01:000 ERROR [main] (App.java:2) - clock skew",
		"java.lang.IllegalStateException: boom",
		"01 Jan 2024 00:00:09:500 WARN [main] (App.java:3) - slow disk",
		"01 Jan 2024 00:00:03:000 DEBUG [main] (App.java:4) - noise",
		"01 Jan 2024 00:00:04:000 INFO [http-1] (SpringTimerFilter.java:9) - Action [POST:/b] took (5000) ms",
		"01 Jan 2024 00:00:04:100 INFO [http-1] (SpringTimerFilter.java:9) - filter initialised",
	}

	report, err := newTestBuilder(BuilderOptions{SlowestLimit: 1}).Build(context.Background(), lines, testMeta)
	require.NoError(t, err)

	summary := report.Summary
	assert.Equal(t, 7, summary.TotalLines)
	assert.Equal(t, 6, summary.TotalRecords)
	assert.Equal(t, 1, summary.ErrorCount)
	assert.Equal(t, 1, summary.WarnCount)
	assert.Equal(t, 3, summary.InfoCount)
	assert.Equal(t, 1, summary.OtherCount())
	assert.Equal(t, 2, summary.TimingRecordCount)
	assert.Equal(t, 1, summary.TimingEventCount)
	assert.Equal(t, 1, summary.TimingMissCount)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC), summary.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 9, 500*int(time.Millisecond), time.UTC), summary.End)
	assert.Equal(t, "00:00:08.500", summary.FormatLogDuration())
	assert.Equal(t, models.SatisfactionCounts{Frustrated: 1}, summary.Satisfaction)
	assert.Equal(t, 0.0, report.Rates.Apdex)
	assert.Len(t, report.Slowest, 1)
}

func TestSummaryBuilder_Build_CustomTimingClass(t *testing.T) {
	t.Parallel()

	lines := []string{
		"01 Jan 2024 00:00:00:000 INFO [t] (C.java:1) - [version=1.0.0]",
		"01 Jan 2024 00:00:01:000 INFO [t] (RequestTimer.java:2) - Action [GET:/x] took (10) ms",
		"01 Jan 2024 00:00:02:000 INFO [t] (SpringTimerFilter.java:3) - Action [GET:/y] took (20) ms",
	}

	report, err := newTestBuilder(BuilderOptions{TimingClassName: "RequestTimer"}).Build(context.Background(), lines, testMeta)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.TimingEventCount)
	_, ok := report.Paths.Get("/x")
	assert.True(t, ok)
	_, ok = report.Paths.Get("/y")
	assert.False(t, ok)
}

func TestSummaryBuilder_Build_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lines     []string
		wantErr   error
		wantStage string
	}{
		{
			name:      "empty log has no version",
			lines:     []string{},
			wantErr:   parsers.ErrVersionNotFound,
			wantStage: "version: ",
		},
		{
			name: "first line is a continuation",
			lines: []string{
				"at Foo.bar(Foo.java:1)",
				"01 Jan 2024 00:00:00:000 INFO [t] (C.java:1) - [version=1.2.3]",
			},
			wantErr:   parsers.ErrNoHeaderLine,
			wantStage: "reconstruct: ",
		},
		{
			name: "impossible date",
			lines: []string{
				"31 Feb 2024 00:00:00:000 INFO [t] (C.java:1) - [version=1.2.3]",
			},
			wantErr:   parsers.ErrTimestampFormat,
			wantStage: "reconstruct: ",
		},
		{
			name: "no version marker",
			lines: []string{
				"01 Jan 2024 00:00:01:000 INFO [t] (SpringTimerFilter.java:2) - Action [GET:/a] took (50) ms",
			},
			wantErr:   parsers.ErrVersionNotFound,
			wantStage: "version: ",
		},
		{
			name: "no timing events",
			lines: []string{
				"01 Jan 2024 00:00:00:000 INFO [t] (C.java:1) - [version=1.2.3]",
				"01 Jan 2024 00:00:01:000 INFO [t] (SpringTimerFilter.java:2) - not a timing",
			},
			wantErr:   models.ErrEmptySeries,
			wantStage: "durations: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report, err := newTestBuilder(BuilderOptions{}).Build(context.Background(), tt.lines, testMeta)
			assert.Nil(t, report)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantStage)
		})
	}
}

type emptyClassifier struct{}

func (emptyClassifier) Classify([]models.TimingEvent) models.SatisfactionCounts {
	return models.SatisfactionCounts{}
}

func TestSummaryBuilder_Build_ApdexWithoutClassifiedEvents(t *testing.T) {
	t.Parallel()

	patterns := parsers.NewPatterns(time.UTC)
	builder := NewSummaryBuilder(
		parsers.NewRecordReconstructor(patterns),
		parsers.NewVersionExtractor(patterns),
		parsers.NewTimingExtractor(patterns),
		emptyClassifier{},
		BuilderOptions{},
	)
	lines := []string{
		"01 Jan 2024 00:00:00:000 INFO [t] (C.java:1) - [version=1.2.3]",
		"01 Jan 2024 00:00:01:000 INFO [t] (SpringTimerFilter.java:2) - ... for Spring Action [GET:/a] took (50) ms",
	}

	report, err := builder.Build(context.Background(), lines, testMeta)
	assert.Nil(t, report)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrEmptySeries)
	assert.Contains(t, err.Error(), "apdex: ")
}

func TestSummaryBuilder_Build_LogsFigures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	lines := []string{
		"01 Jan 2024 00:00:00:000 INFO [t] (C.java:1) - [version=1.2.3]",
		"01 Jan 2024 00:00:01:000 INFO [t] (SpringTimerFilter.java:2) - Action [GET:/a] took (50) ms",
	}

	_, err := newTestBuilder(BuilderOptions{}).Build(ctx, lines, testMeta)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"message":"log records analysed"`)
	assert.Contains(t, output, `"message":"response times analysed"`)
	assert.Contains(t, output, `"apdex":1`)
	assert.Contains(t, output, `"log_duration":"00:00:01.000"`)
}

func TestNewSummaryBuilder_Defaults(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(BuilderOptions{}).(*summaryBuilder)

	assert.Equal(t, DefaultTimingClassName, builder.opts.TimingClassName)
	assert.Equal(t, DefaultSlowestLimit, builder.opts.SlowestLimit)
}
