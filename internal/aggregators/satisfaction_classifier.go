package aggregators

import (
	"log-summary/internal/models"
)

// Thresholds are the inclusive upper bounds of the satisfied and tolerant tiers.
type Thresholds struct {
	SatisfiedMaxMs int64
	TolerantMaxMs  int64
}

// DefaultThresholds: satisfied up to 100 ms, tolerant up to 1 s, frustrated beyond.
var DefaultThresholds = Thresholds{SatisfiedMaxMs: 100, TolerantMaxMs: 1000}

//go:generate mockgen -source=satisfaction_classifier.go -destination=./mocks/satisfaction_classifier_mock.go -package=mocks
type SatisfactionClassifier interface {
	Classify(events []models.TimingEvent) models.SatisfactionCounts
}

type satisfactionClassifier struct {
	thresholds Thresholds
}

func NewSatisfactionClassifier(thresholds Thresholds) SatisfactionClassifier {
	return &satisfactionClassifier{thresholds: thresholds}
}

func (c *satisfactionClassifier) Classify(events []models.TimingEvent) models.SatisfactionCounts {
	var counts models.SatisfactionCounts
	for _, e := range events {
		switch {
		case e.DurationMs <= c.thresholds.SatisfiedMaxMs:
			counts.Satisfied++
		case e.DurationMs <= c.thresholds.TolerantMaxMs:
			counts.Tolerant++
		}
	}
	// frustrated is the remainder so the tiers always partition the events
	counts.Frustrated = len(events) - counts.Satisfied - counts.Tolerant

	metricTimingEventsClassifiedTotal.WithLabelValues(tierSatisfied).Add(float64(counts.Satisfied))
	metricTimingEventsClassifiedTotal.WithLabelValues(tierTolerant).Add(float64(counts.Tolerant))
	metricTimingEventsClassifiedTotal.WithLabelValues(tierFrustrated).Add(float64(counts.Frustrated))
	return counts
}

// Apdex scores counts as (satisfied + tolerant/2) / total.
func Apdex(counts models.SatisfactionCounts) (float64, error) {
	total := counts.Total()
	if total == 0 {
		return 0, models.ErrEmptySeries
	}
	return (float64(counts.Satisfied) + 0.5*float64(counts.Tolerant)) / float64(total), nil
}
