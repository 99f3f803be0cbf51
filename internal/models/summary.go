package models

import (
	"fmt"
	"time"
)

// Summary is the result of one analysis run over a single application log.
//
// Example JSON:
//
//	{
//	  "id": "01HMZ3NDEKTSV4RRFFQ69G5FAV",
//	  "server": "app-01",
//	  "version": "1.2.3",
//	  "isClean": true,
//	  "commit": "9f2c1e0",
//	  "totalLines": 5,
//	  "totalRecords": 3,
//	  "errorCount": 0,
//	  "warnCount": 0,
//	  "infoCount": 3,
//	  "timingRecordCount": 2,
//	  "timingEventCount": 2,
//	  "timingMissCount": 0,
//	  "start": "2024-01-01T00:00:00Z",
//	  "end": "2024-01-01T00:00:02Z",
//	  "durations": {"count": 2, "min": 50, "max": 150, "sum": 200, "mean": 100, "median": 100},
//	  "satisfaction": {"satisfied": 1, "tolerant": 1, "frustrated": 0},
//	  "createdAt": "2024-01-01T00:05:00Z"
//	}
//
// Frustrated is always TimingEventCount - Satisfied - Tolerant, so the three tiers add up to
// the number of timing events.
type Summary struct {
	ID      string `json:"id"`
	Server  string `json:"server"`
	Version string `json:"version"`
	IsClean bool   `json:"isClean"`
	Commit  string `json:"commit"`

	TotalLines   int `json:"totalLines"`
	TotalRecords int `json:"totalRecords"`
	ErrorCount   int `json:"errorCount"`
	WarnCount    int `json:"warnCount"`
	InfoCount    int `json:"infoCount"`

	TimingRecordCount int `json:"timingRecordCount"`
	TimingEventCount  int `json:"timingEventCount"`
	TimingMissCount   int `json:"timingMissCount"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Durations    StatBlock          `json:"durations"`
	Satisfaction SatisfactionCounts `json:"satisfaction"`

	CreatedAt time.Time `json:"createdAt"`
}

// SummaryRates are the ratios derived from a Summary's counters.
type SummaryRates struct {
	RecordsToLines float64 `json:"recordsToLines"`
	Error          float64 `json:"error"`
	Warn           float64 `json:"warn"`
	Info           float64 `json:"info"`
	Other          float64 `json:"other"`
	TimingRecord   float64 `json:"timingRecord"`
	Satisfied      float64 `json:"satisfied"`
	Tolerant       float64 `json:"tolerant"`
	Frustrated     float64 `json:"frustrated"`
	// Apdex is set by the summary builder.
	Apdex float64 `json:"apdex"`
}

// Report bundles everything one analysis run produces.
type Report struct {
	Summary *Summary       `json:"summary"`
	Rates   SummaryRates   `json:"rates"`
	Paths   PathAggregates `json:"paths"`
	Slowest []TimingEvent  `json:"slowest"`
}

func (s *Summary) OtherCount() int {
	return s.TotalRecords - s.ErrorCount - s.WarnCount - s.InfoCount
}

func (s *Summary) LogDuration() time.Duration {
	return s.End.Sub(s.Start)
}

// FormatLogDuration renders the log span as HH:MM:SS.mmm.
func (s *Summary) FormatLogDuration() string {
	d := s.LogDuration()
	hours := int64(d / time.Hour)
	minutes := int64(d/time.Minute) % 60
	seconds := int64(d/time.Second) % 60
	millis := int64(d/time.Millisecond) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func (s *Summary) RecordsToLinesRate() (float64, error) {
	return Ratio(float64(s.TotalRecords), float64(s.TotalLines))
}

func (s *Summary) ErrorRate() (float64, error) {
	return Ratio(float64(s.ErrorCount), float64(s.TotalRecords))
}

func (s *Summary) WarnRate() (float64, error) {
	return Ratio(float64(s.WarnCount), float64(s.TotalRecords))
}

func (s *Summary) InfoRate() (float64, error) {
	return Ratio(float64(s.InfoCount), float64(s.TotalRecords))
}

func (s *Summary) OtherRate() (float64, error) {
	return Ratio(float64(s.OtherCount()), float64(s.TotalRecords))
}

func (s *Summary) TimingRecordRate() (float64, error) {
	return Ratio(float64(s.TimingRecordCount), float64(s.TotalRecords))
}

func (s *Summary) SatisfiedRate() (float64, error) {
	return Ratio(float64(s.Satisfaction.Satisfied), float64(s.TimingEventCount))
}

func (s *Summary) TolerantRate() (float64, error) {
	return Ratio(float64(s.Satisfaction.Tolerant), float64(s.TimingEventCount))
}

func (s *Summary) FrustratedRate() (float64, error) {
	return Ratio(float64(s.Satisfaction.Frustrated), float64(s.TimingEventCount))
}

// ResponseTimePerLogDuration is the share of the log span spent serving timed requests.
// It fails for a log whose records all carry the same timestamp.
func (s *Summary) ResponseTimePerLogDuration() (float64, error) {
	return Ratio(float64(s.Durations.Sum), float64(s.LogDuration().Milliseconds()))
}

// Rates computes every ratio of the summary, failing on the first zero denominator.
// Apdex is left zero; it is scored from the satisfaction counts by aggregators.Apdex.
func (s *Summary) Rates() (SummaryRates, error) {
	var rates SummaryRates
	steps := []struct {
		name string
		dst  *float64
		fn   func() (float64, error)
	}{
		{"recordsToLines", &rates.RecordsToLines, s.RecordsToLinesRate},
		{"error", &rates.Error, s.ErrorRate},
		{"warn", &rates.Warn, s.WarnRate},
		{"info", &rates.Info, s.InfoRate},
		{"other", &rates.Other, s.OtherRate},
		{"timingRecord", &rates.TimingRecord, s.TimingRecordRate},
		{"satisfied", &rates.Satisfied, s.SatisfiedRate},
		{"tolerant", &rates.Tolerant, s.TolerantRate},
		{"frustrated", &rates.Frustrated, s.FrustratedRate},
	}
	for _, step := range steps {
		v, err := step.fn()
		if err != nil {
			return SummaryRates{}, fmt.Errorf("%s rate: %w", step.name, err)
		}
		*step.dst = v
	}
	return rates, nil
}
