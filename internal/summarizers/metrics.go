package summarizers

import (
	"log-summary/internal/shared/metrics"
)

var (
	// metricTimingEventsExtractedTotal counts request timings found in analysed logs.
	metricTimingEventsExtractedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "timing_events_extracted_total",
		},
		[]string{"timing_class"},
	)

	// metricTimingParseMissesTotal counts timing class records that carried no timing entry.
	// A growing rate usually means the timing filter changed its message format.
	metricTimingParseMissesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "timing_parse_misses_total",
		},
		[]string{"timing_class"},
	)
)
