package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"log-summary/internal/models"
	"log-summary/internal/shared/filestorages"
	"log-summary/internal/shared/ulid"
)

var (
	ErrSummaryNotFound = errors.New("summary not found")
)

// SummaryStore keeps the history of analysis runs. A run is identified by its server, version and
// first timestamp, so uploading the same log twice stores it once. Add relies on the file storage's
// create-if-not-exists put for that, which also settles two concurrent uploads of the same log.
//
//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type SummaryStore interface {
	// Add assigns an ID to the summary and stores it. When the run is already stored, Add returns
	// false and sets summary.ID to the stored run's ID.
	Add(ctx context.Context, summary *models.Summary) (bool, error)
	List(ctx context.Context) ([]*models.Summary, error)
	Get(ctx context.Context, id string) (*models.Summary, error)
}

type summaryStore struct {
	fileStorage filestorages.FileStorage
	dir         string
	newID       func() string
}

func NewSummaryStore(fileStorage filestorages.FileStorage) SummaryStore {
	return &summaryStore{fileStorage: fileStorage, dir: "summaries", newID: ulid.NewULID}
}

func (s *summaryStore) Add(ctx context.Context, summary *models.Summary) (bool, error) {
	record := *summary
	record.ID = s.newID()
	jsonData, err := json.Marshal(&record)
	if err != nil {
		return false, fmt.Errorf("failed to marshal summary: %w", err)
	}

	key := s.getKey(summary)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if !errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return false, fmt.Errorf("failed to put summary: %w", err)
		}
		existing, err := s.read(ctx, key)
		if err != nil {
			return false, err
		}
		summary.ID = existing.ID
		return false, nil
	}

	summary.ID = record.ID
	return true, nil
}

func (s *summaryStore) List(ctx context.Context) ([]*models.Summary, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	summaries := make([]*models.Summary, 0, len(keys))
	for _, key := range keys {
		if !strings.HasSuffix(key, ".json") {
			continue
		}
		summary, err := s.read(ctx, key)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *summaryStore) Get(ctx context.Context, id string) (*models.Summary, error) {
	if _, err := ulid.Time(id); err != nil {
		return nil, fmt.Errorf("%w: %q is not a summary id", ErrSummaryNotFound, id)
	}
	summaries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, summary := range summaries {
		if summary.ID == id {
			return summary, nil
		}
	}
	return nil, ErrSummaryNotFound
}

func (s *summaryStore) read(ctx context.Context, key string) (*models.Summary, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary %s: %w", key, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary %s: %w", key, err)
	}
	var summary models.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary %s: %w", key, err)
	}
	return &summary, nil
}

func (s *summaryStore) getKey(summary *models.Summary) string {
	return fmt.Sprintf("%s/%s/%s/%d.json", s.dir, keySegment(summary.Server), keySegment(summary.Version), summary.Start.UnixMilli())
}
