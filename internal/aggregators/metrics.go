package aggregators

import (
	"log-summary/internal/shared/metrics"
)

const (
	tierSatisfied  = "satisfied"
	tierTolerant   = "tolerant"
	tierFrustrated = "frustrated"
)

// metricTimingEventsClassifiedTotal counts timing events per satisfaction tier.
//
// The tier label is one of "satisfied", "tolerant" or "frustrated". A run with
// 3 events at 50, 500 and 5000 ms adds 1 to each tier.
var (
	metricTimingEventsClassifiedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "timing_events_classified_total",
		},
		[]string{"tier"},
	)
)
