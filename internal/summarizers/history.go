package summarizers

import (
	"regexp"
	"sort"

	"log-summary/internal/models"
)

const DefaultHistoryLimit = 20

var releaseVersion = regexp.MustCompile(`^\d*\.\d*\.\d*(-\d*)?$`)

// IsReleaseVersion reports whether version looks like a release, e.g. "1.2.3" or "1.2.3-4".
func IsReleaseVersion(version string) bool {
	return releaseVersion.MatchString(version)
}

// SelectProcessed picks the runs worth comparing against: clean runs, release versions and the
// newest run. The result is newest first and holds at most limit runs. Runs without an ID are
// never selected.
func SelectProcessed(summaries []*models.Summary, limit int) models.History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	newestID := ""
	for _, summary := range summaries {
		if summary.ID > newestID {
			newestID = summary.ID
		}
	}

	selected := make([]*models.Summary, 0, min(limit, len(summaries)))
	for _, summary := range summaries {
		if summary.ID == "" {
			continue
		}
		if summary.IsClean || summary.ID == newestID || IsReleaseVersion(summary.Version) {
			selected = append(selected, summary)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool { return selected[i].ID > selected[j].ID })
	if len(selected) > limit {
		selected = selected[:limit]
	}

	history := models.History{Executions: selected}
	for _, summary := range selected {
		if summary.OtherCount() > 0 {
			history.ShowOthers = true
			break
		}
	}
	return history
}
