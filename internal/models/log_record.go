package models

import "time"

// LogRecord is one logical log entry rebuilt from a header line plus any continuation lines
// that followed it (stack traces, wrapped payloads).
//
// Example source lines:
//
//	01 Jan 2024 00:00:00:000 ERROR [main] (Loader.java:42) - failed to load
//	java.lang.IllegalStateException: boom
//	    at Loader.load(Loader.java:42)
//
// become a single LogRecord whose Message is the three message parts joined by "\n".
type LogRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Level      string    `json:"level"`
	Thread     string    `json:"thread"`
	ClassName  string    `json:"className"`
	LineNumber int       `json:"lineNumber"`
	Message    string    `json:"message"`
}

const (
	LevelError = "ERROR"
	LevelWarn  = "WARN"
	LevelInfo  = "INFO"
)
