package store

import (
	"context"
	"log/slog"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/phrazzld/quickcache/internal/redact"
)

// Manager combines a QuickCacheStore and a UserPrefsStore.
type Manager struct {
	quickCache QuickCacheStore
	userPrefs  UserPrefsStore
}

// Ensure Manager implements the Storage interface
var _ Storage = (*Manager)(nil)

// NewManager creates a Manager over both stores.
func NewManager(quickCache QuickCacheStore, userPrefs UserPrefsStore) *Manager {
	return &Manager{quickCache: quickCache, userPrefs: userPrefs}
}

// QuickCacheFilePath implements QuickCacheStore.QuickCacheFilePath
func (m *Manager) QuickCacheFilePath() string {
	return m.quickCache.QuickCacheFilePath()
}

// ReadQuickCache implements QuickCacheStore.ReadQuickCache
func (m *Manager) ReadQuickCache(ctx context.Context) (*domain.QuickCache, error) {
	return m.quickCache.ReadQuickCache(ctx)
}

// SaveQuickCache implements QuickCacheStore.SaveQuickCache
func (m *Manager) SaveQuickCache(ctx context.Context, qc *domain.QuickCache) error {
	return m.quickCache.SaveQuickCache(ctx, qc)
}

// UserPrefsFilePath implements UserPrefsStore.UserPrefsFilePath
func (m *Manager) UserPrefsFilePath() string {
	return m.userPrefs.UserPrefsFilePath()
}

// ReadUserPrefs implements UserPrefsStore.ReadUserPrefs
func (m *Manager) ReadUserPrefs(ctx context.Context) (domain.UserPrefs, error) {
	return m.userPrefs.ReadUserPrefs(ctx)
}

// SaveUserPrefs implements UserPrefsStore.SaveUserPrefs
func (m *Manager) SaveUserPrefs(ctx context.Context, prefs domain.UserPrefs) error {
	return m.userPrefs.SaveUserPrefs(ctx, prefs)
}

// LoadQuickCache reads the QuickCache for startup. When nothing was saved
// yet it returns the sample flashcards; when the data cannot be read it logs
// a warning and returns an empty QuickCache.
func LoadQuickCache(ctx context.Context, s QuickCacheStore) *domain.QuickCache {
	log := logger.FromContext(ctx)

	qc, err := s.ReadQuickCache(ctx)
	switch {
	case err == nil:
		log.Debug("loaded quickcache",
			slog.String("location", s.QuickCacheFilePath()),
			slog.Int("flashcard_count", qc.Len()))
		return qc
	case IsNotFoundError(err):
		log.Info("data file not found, starting with sample flashcards",
			slog.String("location", s.QuickCacheFilePath()))
		return domain.SampleQuickCache()
	case IsDataConversionError(err):
		log.Warn("data file is not in the correct format, starting with an empty QuickCache",
			slog.String("location", s.QuickCacheFilePath()),
			slog.String("error", redact.Error(err)))
	default:
		log.Warn("problem while reading from the data file, starting with an empty QuickCache",
			slog.String("location", s.QuickCacheFilePath()),
			slog.String("error", redact.Error(err)))
	}
	return &domain.QuickCache{}
}

// LoadUserPrefs reads the preferences for startup, falling back to defaults
// that point at defaultDataFile.
func LoadUserPrefs(ctx context.Context, s UserPrefsStore, defaultDataFile string) domain.UserPrefs {
	log := logger.FromContext(ctx)

	prefs, err := s.ReadUserPrefs(ctx)
	switch {
	case err == nil:
		if prefs.QuickCacheFilePath == "" {
			prefs.QuickCacheFilePath = defaultDataFile
		}
		return prefs
	case IsNotFoundError(err):
		log.Info("preferences file not found, using default preferences",
			slog.String("location", s.UserPrefsFilePath()))
	default:
		log.Warn("could not read preferences, using default preferences",
			slog.String("location", s.UserPrefsFilePath()),
			slog.String("error", redact.Error(err)))
	}
	return domain.NewUserPrefs(defaultDataFile)
}
