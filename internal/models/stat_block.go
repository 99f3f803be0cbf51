package models

import "errors"

var (
	ErrEmptySeries    = errors.New("empty series")
	ErrDivisionByZero = errors.New("division by zero")
)

// StatBlock holds descriptive statistics over an integer series.
// A StatBlock is only ever produced for a non-empty series.
type StatBlock struct {
	Count  int     `json:"count"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
	Sum    int64   `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Percentiles are t-digest estimates, not exact order statistics.
type Percentiles struct {
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

// Ratio divides numerator by denominator and fails on a zero denominator instead of
// producing NaN or Inf.
func Ratio(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}
	return numerator / denominator, nil
}
