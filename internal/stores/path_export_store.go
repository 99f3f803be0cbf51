package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"log-summary/internal/shared/filestorages"
)

var (
	ErrPathExportNotFound = errors.New("path export not found")
)

// PathExportStore holds the per-path CSV export of each summary. Exports are derived data, so a
// later export replaces an earlier one.
//
//go:generate mockgen -source=path_export_store.go -destination=./mocks/path_export_store_mock.go -package=mocks
type PathExportStore interface {
	Put(ctx context.Context, summaryID string, csv []byte) error
	Get(ctx context.Context, summaryID string) ([]byte, error)
}

type pathExportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewPathExportStore(fileStorage filestorages.FileStorage) PathExportStore {
	return &pathExportStore{fileStorage: fileStorage, dir: "exports"}
}

func (s *pathExportStore) Put(ctx context.Context, summaryID string, csv []byte) error {
	_, err := s.fileStorage.Put(ctx, s.getKey(summaryID), bytes.NewReader(csv), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put path export: %w", err)
	}
	return nil
}

func (s *pathExportStore) Get(ctx context.Context, summaryID string) ([]byte, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(summaryID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrPathExportNotFound
		}
		return nil, fmt.Errorf("failed to get path export: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read path export: %w", err)
	}
	return data, nil
}

func (s *pathExportStore) getKey(summaryID string) string {
	return fmt.Sprintf("%s/%s/url_paths.csv", s.dir, keySegment(summaryID))
}
