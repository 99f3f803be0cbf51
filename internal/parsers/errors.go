package parsers

import "errors"

var (
	// ErrNoHeaderLine is returned when the log starts with a continuation line.
	ErrNoHeaderLine = errors.New("no header line before continuation")
	// ErrTimestampFormat is returned when a header carries a timestamp that does not parse.
	ErrTimestampFormat = errors.New("malformed timestamp")
	// ErrMalformedHeader is returned when a header's source line number is not a positive int.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrVersionNotFound is returned when no record announces the application version.
	ErrVersionNotFound = errors.New("version announcement not found")
)
