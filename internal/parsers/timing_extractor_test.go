package parsers

import (
	"testing"
	"time"

	"log-summary/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTimingExtractor_Extract(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		{ClassName: "SpringTimerFilter", Message: "Request for Spring Action [GET:/api/orders] took (153) ms"},
		{ClassName: "OrderService", Message: "Request for Spring Action [GET:/ignored] took (1) ms"},
		{ClassName: "SpringTimerFilter", Message: "filter initialised"},
		{ClassName: "SpringTimerFilter", Message: "for Spring Action [POST:/api/orders/v1.2] took (0) ms\ntrailing detail"},
	}

	extraction := NewTimingExtractor(NewPatterns(time.UTC)).Extract(records, "SpringTimerFilter")

	expected := models.TimingExtraction{
		Events: []models.TimingEvent{
			{Method: "GET", Path: "/api/orders", DurationMs: 153},
			{Method: "POST", Path: "/api/orders/v1.2", DurationMs: 0},
		},
		Matched: 3,
		Misses:  1,
	}
	assert.Equal(t, expected, extraction)
}

func TestTimingExtractor_Extract_NoMatchingClass(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		{ClassName: "Other", Message: "for Spring Action [GET:/a] took (5) ms"},
	}

	extraction := NewTimingExtractor(NewPatterns(time.UTC)).Extract(records, "SpringTimerFilter")

	assert.Empty(t, extraction.Events)
	assert.Equal(t, 0, extraction.Matched)
	assert.Equal(t, 0, extraction.Misses)
}

func TestTimingExtractor_Extract_DurationOverflowIsMiss(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		{ClassName: "SpringTimerFilter", Message: "for Spring Action [GET:/a] took (99999999999999999999) ms"},
	}

	extraction := NewTimingExtractor(NewPatterns(time.UTC)).Extract(records, "SpringTimerFilter")

	assert.Empty(t, extraction.Events)
	assert.Equal(t, 1, extraction.Misses)
}
