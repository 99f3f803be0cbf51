package exporters

import (
	"log-summary/internal/shared/metrics"
)

// metricPathExportWrittenTotal counts the CSV exports written.
//
// The paths label buckets the number of exported paths: "lt10", "lt100" or "ge100".
var (
	metricPathExportWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "path_export_written_total",
		},
		[]string{"paths"},
	)
)

func pathCountBucket(n int) string {
	switch {
	case n < 10:
		return "lt10"
	case n < 100:
		return "lt100"
	default:
		return "ge100"
	}
}
