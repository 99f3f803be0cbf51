package aggregators

import (
	"fmt"
	"slices"

	"log-summary/internal/models"

	"github.com/influxdata/tdigest"
)

// digestCompression bounds a path's t-digest to roughly 100 centroids.
const digestCompression = 100

// Aggregate computes count, min, max, sum, mean and median over values.
//
// The median of an even-length series is the mean of the two middle elements of the sorted
// series (indices n/2-1 and n/2); of an odd-length series, the element at n/2.
// values is not modified.
func Aggregate(values []int64) (models.StatBlock, error) {
	if len(values) == 0 {
		return models.StatBlock{}, models.ErrEmptySeries
	}

	block := models.StatBlock{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}
	for _, v := range values {
		block.Min = min(block.Min, v)
		block.Max = max(block.Max, v)
		block.Sum += v
	}
	block.Mean = float64(block.Sum) / float64(block.Count)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := block.Count / 2
	if block.Count%2 == 0 {
		block.Median = float64(sorted[mid-1]+sorted[mid]) / 2
	} else {
		block.Median = float64(sorted[mid])
	}

	return block, nil
}

// KeyedStatBlock is a StatBlock for one grouping key.
type KeyedStatBlock struct {
	Key    string
	Values []int64
	models.StatBlock
}

// AggregateByKey groups items by keyOf and aggregates valueOf per group.
// Groups come back in the order their key was first seen.
func AggregateByKey[E any](items []E, keyOf func(E) string, valueOf func(E) int64) ([]KeyedStatBlock, error) {
	index := make(map[string]int)
	groups := make([]KeyedStatBlock, 0)
	for _, item := range items {
		key := keyOf(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, KeyedStatBlock{Key: key})
		}
		groups[i].Values = append(groups[i].Values, valueOf(item))
	}

	for i := range groups {
		block, err := Aggregate(groups[i].Values)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", groups[i].Key, err)
		}
		groups[i].StatBlock = block
	}
	return groups, nil
}

// EstimatePercentiles estimates P95 and P99 of values with a t-digest.
func EstimatePercentiles(values []int64) models.Percentiles {
	if len(values) == 0 {
		return models.Percentiles{}
	}
	digest := tdigest.NewWithCompression(digestCompression)
	for _, v := range values {
		digest.Add(float64(v), 1)
	}
	return models.Percentiles{
		P95: digest.Quantile(0.95),
		P99: digest.Quantile(0.99),
	}
}

// BuildPathAggregates aggregates timing durations per URL path.
func BuildPathAggregates(events []models.TimingEvent) (models.PathAggregates, error) {
	groups, err := AggregateByKey(events,
		func(e models.TimingEvent) string { return e.Path },
		func(e models.TimingEvent) int64 { return e.DurationMs },
	)
	if err != nil {
		return nil, err
	}

	paths := make(models.PathAggregates, 0, len(groups))
	for _, group := range groups {
		paths = append(paths, models.PathAggregate{
			Path:        group.Key,
			StatBlock:   group.StatBlock,
			Percentiles: EstimatePercentiles(group.Values),
		})
	}
	return paths, nil
}

// Durations returns the duration series of events.
func Durations(events []models.TimingEvent) []int64 {
	values := make([]int64, 0, len(events))
	for _, e := range events {
		values = append(values, e.DurationMs)
	}
	return values
}

// TopSlowest returns at most n events ordered by duration, slowest first. Events with equal
// durations keep their log order.
func TopSlowest(events []models.TimingEvent, n int) []models.TimingEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b models.TimingEvent) int {
		switch {
		case a.DurationMs > b.DurationMs:
			return -1
		case a.DurationMs < b.DurationMs:
			return 1
		}
		return 0
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []models.TimingEvent{}
	}
	return sorted
}
