package http

import (
	"log-summary/internal/shared/metrics"
)

var (
	// metricHTTPRequestsTotal counts HTTP requests by route pattern, status and error code.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "http_requests_total",
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)

	// metricHTTPResponseSize observes response body sizes. Summary reports are a few KiB,
	// while raw log downloads grow with the uploaded log.
	metricHTTPResponseSize = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "response_size_bytes",
			Buckets:   metrics.ExponentialBuckets(256, 4, 10),
		},
		[]string{"method", "path"},
	)
)
