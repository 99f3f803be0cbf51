package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"log-summary/internal/models"
)

var pathAggregatesHeader = []string{"path", "count", "min", "max", "sum", "mean", "median"}

// EncodePathAggregates writes one CSV row per path, in the order of paths, after a header row.
// Mean and median keep six decimals.
func EncodePathAggregates(w io.Writer, paths models.PathAggregates) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(pathAggregatesHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, path := range paths {
		row := []string{
			path.Path,
			strconv.Itoa(path.Count),
			strconv.FormatInt(path.Min, 10),
			strconv.FormatInt(path.Max, 10),
			strconv.FormatInt(path.Sum, 10),
			strconv.FormatFloat(path.Mean, 'f', 6, 64),
			strconv.FormatFloat(path.Median, 'f', 6, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", path.Path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportFileName names a downloaded export after the run's version and creation time.
func ExportFileName(version string, createdAt time.Time) string {
	return fmt.Sprintf("url_paths_%s_%s.csv", version, createdAt.UTC().Format("2006-01-02_15-04-05"))
}
