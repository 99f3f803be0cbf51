package parsers

import (
	"fmt"
	"strconv"
	"strings"

	"log-summary/internal/models"
)

// lineSeparator joins a record's header message with its continuation lines.
const lineSeparator = "\n"

//go:generate mockgen -source=record_reconstructor.go -destination=./mocks/record_reconstructor_mock.go -package=mocks
type RecordReconstructor interface {
	// Reconstruct folds raw lines into records, appending every non-header line to the
	// message of the record opened before it.
	Reconstruct(lines []string) ([]models.LogRecord, error)
}

type recordReconstructor struct {
	patterns *Patterns
}

func NewRecordReconstructor(patterns *Patterns) RecordReconstructor {
	return &recordReconstructor{patterns: patterns}
}

// reconstruction is the fold state: the record still accepting continuation lines and the
// records already closed.
type reconstruction struct {
	open     *models.LogRecord
	message  strings.Builder
	finished []models.LogRecord
}

func (r *reconstruction) closeOpen() {
	if r.open == nil {
		return
	}
	r.open.Message = r.message.String()
	r.finished = append(r.finished, *r.open)
	r.open = nil
	r.message.Reset()
}

func (s *recordReconstructor) Reconstruct(lines []string) ([]models.LogRecord, error) {
	acc := &reconstruction{finished: make([]models.LogRecord, 0, len(lines))}

	for i, line := range lines {
		header, ok := s.patterns.matchHeader(line)
		if !ok {
			if acc.open == nil {
				return nil, fmt.Errorf("line %d: %w", i+1, ErrNoHeaderLine)
			}
			acc.message.WriteString(lineSeparator)
			acc.message.WriteString(line)
			continue
		}

		record, err := s.newRecord(header)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		acc.closeOpen()
		acc.open = record
		acc.message.WriteString(header.message)
	}
	acc.closeOpen()

	return acc.finished, nil
}

func (s *recordReconstructor) newRecord(header headerMatch) (*models.LogRecord, error) {
	timestamp, err := s.patterns.parseTimestamp(header.timestamp)
	if err != nil {
		return nil, err
	}
	lineNumber, err := strconv.Atoi(header.line)
	if err != nil {
		return nil, fmt.Errorf("%w: source line number %q: %w", ErrMalformedHeader, header.line, err)
	}
	if lineNumber <= 0 {
		return nil, fmt.Errorf("%w: source line number %d", ErrMalformedHeader, lineNumber)
	}
	return &models.LogRecord{
		Timestamp:  timestamp,
		Level:      header.level,
		Thread:     header.thread,
		ClassName:  header.className,
		LineNumber: lineNumber,
	}, nil
}
