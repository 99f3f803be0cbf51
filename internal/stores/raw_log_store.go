package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"log-summary/internal/shared/filestorages"

	"github.com/klauspost/compress/zstd"
)

var (
	ErrRawLogNotFound      = errors.New("raw log not found")
	ErrRawLogAlreadyExists = errors.New("raw log already exists")
)

// RawLogStore archives the uploaded log of every stored summary, zstd-compressed.
//
//go:generate mockgen -source=raw_log_store.go -destination=./mocks/raw_log_store_mock.go -package=mocks
type RawLogStore interface {
	Put(ctx context.Context, summaryID string, raw []byte) error
	Get(ctx context.Context, summaryID string) ([]byte, error)
}

type rawLogStore struct {
	fileStorage filestorages.FileStorage
	dir         string
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
}

func NewRawLogStore(fileStorage filestorages.FileStorage) (RawLogStore, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &rawLogStore{fileStorage: fileStorage, dir: "raw-logs", encoder: encoder, decoder: decoder}, nil
}

func (s *rawLogStore) Put(ctx context.Context, summaryID string, raw []byte) error {
	compressed := s.encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2))

	_, err := s.fileStorage.Put(ctx, s.getKey(summaryID), bytes.NewReader(compressed), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrRawLogAlreadyExists
		}
		return fmt.Errorf("failed to put raw log: %w", err)
	}
	return nil
}

func (s *rawLogStore) Get(ctx context.Context, summaryID string) ([]byte, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(summaryID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrRawLogNotFound
		}
		return nil, fmt.Errorf("failed to get raw log: %w", err)
	}
	defer readCloser.Close()

	compressed, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw log: %w", err)
	}
	raw, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress raw log: %w", err)
	}
	return raw, nil
}

func (s *rawLogStore) getKey(summaryID string) string {
	return fmt.Sprintf("%s/%s.log.zst", s.dir, keySegment(summaryID))
}
