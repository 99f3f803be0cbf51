package parsers

import (
	"log-summary/internal/models"
)

//go:generate mockgen -source=version_extractor.go -destination=./mocks/version_extractor_mock.go -package=mocks
type VersionExtractor interface {
	// Extract returns the version announced by the first record carrying "[version=...]".
	Extract(records []models.LogRecord) (string, error)
}

type versionExtractor struct {
	patterns *Patterns
}

func NewVersionExtractor(patterns *Patterns) VersionExtractor {
	return &versionExtractor{patterns: patterns}
}

func (e *versionExtractor) Extract(records []models.LogRecord) (string, error) {
	for _, record := range records {
		if version, ok := e.patterns.matchVersion(record.Message); ok {
			return version, nil
		}
	}
	return "", ErrVersionNotFound
}
