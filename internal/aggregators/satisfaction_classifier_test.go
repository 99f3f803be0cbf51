package aggregators

import (
	"testing"

	"log-summary/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventsWithDurations(durations ...int64) []models.TimingEvent {
	events := make([]models.TimingEvent, 0, len(durations))
	for _, d := range durations {
		events = append(events, models.TimingEvent{Method: "GET", Path: "/", DurationMs: d})
	}
	return events
}

func TestSatisfactionClassifier_Classify_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration int64
		expected models.SatisfactionCounts
	}{
		{name: "zero is satisfied", duration: 0, expected: models.SatisfactionCounts{Satisfied: 1}},
		{name: "100 is satisfied", duration: 100, expected: models.SatisfactionCounts{Satisfied: 1}},
		{name: "101 is tolerant", duration: 101, expected: models.SatisfactionCounts{Tolerant: 1}},
		{name: "1000 is tolerant", duration: 1000, expected: models.SatisfactionCounts{Tolerant: 1}},
		{name: "1001 is frustrated", duration: 1001, expected: models.SatisfactionCounts{Frustrated: 1}},
	}

	classifier := NewSatisfactionClassifier(DefaultThresholds)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classifier.Classify(eventsWithDurations(tt.duration)))
		})
	}
}

func TestSatisfactionClassifier_Classify_PartitionsAllEvents(t *testing.T) {
	t.Parallel()

	classifier := NewSatisfactionClassifier(DefaultThresholds)
	series := [][]int64{
		{},
		{5},
		{5, 500, 5000},
		{1, 2, 3, 101, 999, 1000, 1001, 60000, 100, 100},
	}

	for _, durations := range series {
		events := eventsWithDurations(durations...)
		counts := classifier.Classify(events)
		assert.Equal(t, len(events), counts.Satisfied+counts.Tolerant+counts.Frustrated)
	}
}

func TestApdex(t *testing.T) {
	t.Parallel()

	score, err := Apdex(models.SatisfactionCounts{Satisfied: 1, Tolerant: 1})
	require.NoError(t, err)
	assert.Equal(t, 0.75, score)

	score, err = Apdex(models.SatisfactionCounts{Frustrated: 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	score, err = Apdex(models.SatisfactionCounts{Satisfied: 4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestApdex_ErrEmptySeries(t *testing.T) {
	t.Parallel()

	_, err := Apdex(models.SatisfactionCounts{})
	assert.ErrorIs(t, err, models.ErrEmptySeries)
}
