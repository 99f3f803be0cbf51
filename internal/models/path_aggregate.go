package models

// PathAggregate is the StatBlock of the timing durations recorded for one URL path.
type PathAggregate struct {
	Path string `json:"path"`
	StatBlock
	Percentiles
}

// PathAggregates keeps aggregates in the order their path was first seen.
type PathAggregates []PathAggregate

// Get returns the aggregate for path, if any.
func (p PathAggregates) Get(path string) (PathAggregate, bool) {
	for _, agg := range p {
		if agg.Path == path {
			return agg, true
		}
	}
	return PathAggregate{}, false
}
