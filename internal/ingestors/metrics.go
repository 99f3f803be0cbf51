package ingestors

import (
	"log-summary/internal/shared/metrics"
)

const (
	outcomeStored    = "stored"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
)

var (
	metricSummaryIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "summary_ingested_total",
		},
		[]string{metrics.FieldErrorCode, "outcome"},
	)

	metricLogLinesIngested = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "log_lines",
			Buckets:   metrics.ExponentialBuckets(100, 10, 5),
		},
		[]string{},
	)
)
