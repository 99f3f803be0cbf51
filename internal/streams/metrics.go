package streams

import (
	"log-summary/internal/shared/metrics"
)

const (
	streamSummaryCreated = "summary_created"

	labelStream  = "stream"
	labelOutcome = "outcome"

	outcomePublished = "published"
	outcomeCancelled = "cancelled"
)

var (
	// metricEventsPublishedTotal counts publish attempts; a cancelled attempt gave up on a full
	// partition when its context ended.
	metricEventsPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_published_total",
		},
		[]string{labelStream, labelOutcome},
	)

	metricEventsHandledTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_handled_total",
		},
		[]string{labelStream, metrics.FieldErrorCode},
	)

	metricEventHandleDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_handle_duration_seconds",
			Buckets:   metrics.ExponentialBuckets(0.001, 4, 8),
		},
		[]string{labelStream},
	)
)
