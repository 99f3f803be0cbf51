package models

// TimingEvent is one request-timing measurement found inside a timing filter record, e.g.
//
//	... for Spring Action [GET:/api/orders] took (153) ms
//
// yields {Method: "GET", Path: "/api/orders", DurationMs: 153}.
type TimingEvent struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	DurationMs int64  `json:"durationMs"`
}

// TimingExtraction is the result of scanning the timing filter records of one log.
type TimingExtraction struct {
	Events  []TimingEvent
	Matched int // records emitted by the timing filter class
	Misses  int // matched records whose message carried no timing entry
}
