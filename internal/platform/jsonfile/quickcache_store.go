package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/phrazzld/quickcache/internal/store"
)

// QuickCacheStore keeps the flashcards in one JSON file.
type QuickCacheStore struct {
	path   string
	logger *slog.Logger
}

// Ensure QuickCacheStore implements the store.QuickCacheStore interface
var _ store.QuickCacheStore = (*QuickCacheStore)(nil)

// NewQuickCacheStore creates a store for the file at path.
func NewQuickCacheStore(path string, log *slog.Logger) *QuickCacheStore {
	if log == nil {
		log = slog.Default()
	}
	return &QuickCacheStore{
		path:   path,
		logger: log.With(slog.String("component", "json_quickcache_store")),
	}
}

// QuickCacheFilePath implements store.QuickCacheStore.QuickCacheFilePath
func (s *QuickCacheStore) QuickCacheFilePath() string {
	return s.path
}

// ReadQuickCache implements store.QuickCacheStore.ReadQuickCache
func (s *QuickCacheStore) ReadQuickCache(ctx context.Context) (*domain.QuickCache, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if isNotExist(err) {
			return nil, store.NewStoreError(store.EntityQuickCache, "read",
				"data file "+s.path+" not found", store.ErrNotFound)
		}
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "failed to read data file", err)
	}

	cards, rowErrs, err := DecodeFlashcards(data)
	if err != nil {
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "malformed data file",
			fmt.Errorf("%w: %v", store.ErrDataConversion, err))
	}
	if len(rowErrs) > 0 {
		msgs := make([]string, len(rowErrs))
		for i, e := range rowErrs {
			msgs[i] = e.Error()
		}
		log.Warn("invalid flashcards in data file",
			slog.String("path", s.path),
			slog.Int("invalid", len(rowErrs)))
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "invalid flashcards in data file",
			fmt.Errorf("%w: %s", store.ErrDataConversion, strings.Join(msgs, "; ")))
	}

	qc, err := domain.NewQuickCache(cards...)
	if err != nil {
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "invalid quickcache",
			fmt.Errorf("%w: %v", store.ErrDataConversion, err))
	}

	log.Debug("read quickcache", slog.String("path", s.path), slog.Int("flashcards", qc.Len()))
	return qc, nil
}

// SaveQuickCache implements store.QuickCacheStore.SaveQuickCache
func (s *QuickCacheStore) SaveQuickCache(ctx context.Context, qc *domain.QuickCache) error {
	var cards []*domain.Flashcard
	if qc != nil {
		cards = qc.Flashcards()
	}

	data, err := EncodeFlashcards(cards)
	if err != nil {
		return store.NewStoreError(store.EntityQuickCache, "save", "failed to encode flashcards", err)
	}
	if err := WriteFile(s.path, data); err != nil {
		return store.NewStoreError(store.EntityQuickCache, "save", "failed to write data file", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("saved quickcache",
		slog.String("path", s.path), slog.Int("flashcards", len(cards)))
	return nil
}
