package parsers

import (
	"strconv"

	"log-summary/internal/models"
)

//go:generate mockgen -source=timing_extractor.go -destination=./mocks/timing_extractor_mock.go -package=mocks
type TimingExtractor interface {
	// Extract scans records emitted by tagFilter and pulls out their timing entries.
	// Records of that class without a timing entry are counted as misses, not errors.
	Extract(records []models.LogRecord, tagFilter string) models.TimingExtraction
}

type timingExtractor struct {
	patterns *Patterns
}

func NewTimingExtractor(patterns *Patterns) TimingExtractor {
	return &timingExtractor{patterns: patterns}
}

func (e *timingExtractor) Extract(records []models.LogRecord, tagFilter string) models.TimingExtraction {
	result := models.TimingExtraction{Events: []models.TimingEvent{}}

	for _, record := range records {
		if record.ClassName != tagFilter {
			continue
		}
		result.Matched++

		timing, ok := e.patterns.matchTiming(record.Message)
		if !ok {
			result.Misses++
			continue
		}
		duration, err := strconv.ParseInt(timing.duration, 10, 64)
		if err != nil {
			// digits only, so this is an overflow
			result.Misses++
			continue
		}
		result.Events = append(result.Events, models.TimingEvent{
			Method:     timing.method,
			Path:       timing.path,
			DurationMs: duration,
		})
	}

	return result
}
