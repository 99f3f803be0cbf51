package aggregators

import (
	"testing"

	"log-summary/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []int64
		expected models.StatBlock
	}{
		{
			name:     "single value",
			values:   []int64{5},
			expected: models.StatBlock{Count: 1, Min: 5, Max: 5, Sum: 5, Mean: 5.0, Median: 5.0},
		},
		{
			name:     "even count averages the two middle elements",
			values:   []int64{4, 1, 3, 2},
			expected: models.StatBlock{Count: 4, Min: 1, Max: 4, Sum: 10, Mean: 2.5, Median: 2.5},
		},
		{
			name:     "odd count takes the middle element",
			values:   []int64{3, 1, 2},
			expected: models.StatBlock{Count: 3, Min: 1, Max: 3, Sum: 6, Mean: 2.0, Median: 2.0},
		},
		{
			name:     "duplicates",
			values:   []int64{100, 100, 1000, 0},
			expected: models.StatBlock{Count: 4, Min: 0, Max: 1000, Sum: 1200, Mean: 300.0, Median: 100.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, err := Aggregate(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, block)
		})
	}
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	values := []int64{3, 1, 2}
	_, err := Aggregate(values)
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 1, 2}, values)
}

func TestAggregate_ErrEmptySeries(t *testing.T) {
	t.Parallel()

	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, models.ErrEmptySeries)

	_, err = Aggregate([]int64{})
	assert.ErrorIs(t, err, models.ErrEmptySeries)
}

func TestAggregateByKey_InsertionOrder(t *testing.T) {
	t.Parallel()

	events := []models.TimingEvent{
		{Path: "/b", DurationMs: 10},
		{Path: "/a", DurationMs: 20},
		{Path: "/b", DurationMs: 30},
		{Path: "/c", DurationMs: 5},
		{Path: "/a", DurationMs: 40},
	}

	groups, err := AggregateByKey(events,
		func(e models.TimingEvent) string { return e.Path },
		func(e models.TimingEvent) int64 { return e.DurationMs },
	)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "/b", groups[0].Key)
	assert.Equal(t, models.StatBlock{Count: 2, Min: 10, Max: 30, Sum: 40, Mean: 20, Median: 20}, groups[0].StatBlock)
	assert.Equal(t, "/a", groups[1].Key)
	assert.Equal(t, models.StatBlock{Count: 2, Min: 20, Max: 40, Sum: 60, Mean: 30, Median: 30}, groups[1].StatBlock)
	assert.Equal(t, "/c", groups[2].Key)
	assert.Equal(t, models.StatBlock{Count: 1, Min: 5, Max: 5, Sum: 5, Mean: 5, Median: 5}, groups[2].StatBlock)
}

func TestAggregateByKey_Empty(t *testing.T) {
	t.Parallel()

	groups, err := AggregateByKey([]models.TimingEvent{},
		func(e models.TimingEvent) string { return e.Path },
		func(e models.TimingEvent) int64 { return e.DurationMs },
	)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestBuildPathAggregates(t *testing.T) {
	t.Parallel()

	events := []models.TimingEvent{
		{Method: "GET", Path: "/a", DurationMs: 50},
		{Method: "GET", Path: "/a", DurationMs: 150},
		{Method: "POST", Path: "/b", DurationMs: 7},
	}

	paths, err := BuildPathAggregates(events)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	a, ok := paths.Get("/a")
	require.True(t, ok)
	assert.Equal(t, models.StatBlock{Count: 2, Min: 50, Max: 150, Sum: 200, Mean: 100, Median: 100}, a.StatBlock)
	assert.GreaterOrEqual(t, a.P95, 50.0)
	assert.LessOrEqual(t, a.P99, 150.0)
	assert.LessOrEqual(t, a.P95, a.P99)

	assert.Equal(t, "/b", paths[1].Path)
}

func TestEstimatePercentiles_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.Percentiles{}, EstimatePercentiles(nil))
}

func TestEstimatePercentiles_WithinRange(t *testing.T) {
	t.Parallel()

	values := make([]int64, 0, 1000)
	for i := int64(1); i <= 1000; i++ {
		values = append(values, i)
	}

	p := EstimatePercentiles(values)

	assert.InDelta(t, 950, p.P95, 15)
	assert.InDelta(t, 990, p.P99, 15)
}

func TestTopSlowest(t *testing.T) {
	t.Parallel()

	events := []models.TimingEvent{
		{Path: "/a", DurationMs: 10},
		{Path: "/b", DurationMs: 300},
		{Path: "/c", DurationMs: 20},
		{Path: "/d", DurationMs: 300},
	}

	top := TopSlowest(events, 3)

	assert.Equal(t, []models.TimingEvent{
		{Path: "/b", DurationMs: 300},
		{Path: "/d", DurationMs: 300},
		{Path: "/c", DurationMs: 20},
	}, top)
	assert.Equal(t, "/a", events[0].Path, "input must not be reordered")

	assert.Len(t, TopSlowest(events, 10), 4)
	assert.Equal(t, []models.TimingEvent{}, TopSlowest(nil, 10))
}

func TestDurations(t *testing.T) {
	t.Parallel()

	events := []models.TimingEvent{{DurationMs: 3}, {DurationMs: 1}}

	assert.Equal(t, []int64{3, 1}, Durations(events))
}
