package store

import (
	"context"

	"github.com/phrazzld/quickcache/internal/domain"
)

// QuickCacheStore persists the flashcard collection.
type QuickCacheStore interface {
	// QuickCacheFilePath describes where the data lives: a file path for
	// file backends, a database location for SQL backends.
	QuickCacheFilePath() string

	// ReadQuickCache loads every flashcard.
	// Returns ErrNotFound if nothing was saved yet and ErrDataConversion if
	// the stored data is not a valid QuickCache.
	ReadQuickCache(ctx context.Context) (*domain.QuickCache, error)

	// SaveQuickCache replaces the stored flashcards with those of qc.
	SaveQuickCache(ctx context.Context, qc *domain.QuickCache) error
}

// UserPrefsStore persists the user preferences.
type UserPrefsStore interface {
	// UserPrefsFilePath returns the preferences file location.
	UserPrefsFilePath() string

	// ReadUserPrefs loads the preferences.
	// Returns ErrNotFound if nothing was saved yet and ErrDataConversion if
	// the stored data is malformed.
	ReadUserPrefs(ctx context.Context) (domain.UserPrefs, error)

	// SaveUserPrefs writes the preferences.
	SaveUserPrefs(ctx context.Context, prefs domain.UserPrefs) error
}

// Storage is the full persistence API used by the application.
type Storage interface {
	QuickCacheStore
	UserPrefsStore
}
