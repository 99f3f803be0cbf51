package models

// History is the list of processed runs shown next to a new analysis.
type History struct {
	Executions []*Summary `json:"executions"`
	// ShowOthers is set when any listed run has records outside ERROR, WARN and INFO.
	ShowOthers bool `json:"showOthers"`
}
