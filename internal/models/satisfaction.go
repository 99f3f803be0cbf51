package models

// SatisfactionCounts partitions timing events into the three Apdex tiers.
type SatisfactionCounts struct {
	Satisfied  int `json:"satisfied"`
	Tolerant   int `json:"tolerant"`
	Frustrated int `json:"frustrated"`
}

func (c SatisfactionCounts) Total() int {
	return c.Satisfied + c.Tolerant + c.Frustrated
}
