package mocks

import (
	"context"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/store"
)

// MockUserPrefsStore implements store.UserPrefsStore for testing.
type MockUserPrefsStore struct {
	ReadUserPrefsFn func(ctx context.Context) (domain.UserPrefs, error)
	SaveUserPrefsFn func(ctx context.Context, prefs domain.UserPrefs) error

	// Path is returned by UserPrefsFilePath.
	Path string
	// Prefs is the stored value; nil means nothing was saved yet.
	Prefs *domain.UserPrefs
}

var _ store.UserPrefsStore = (*MockUserPrefsStore)(nil)

// UserPrefsFilePath implements store.UserPrefsStore.
func (m *MockUserPrefsStore) UserPrefsFilePath() string {
	return m.Path
}

// ReadUserPrefs implements store.UserPrefsStore.
func (m *MockUserPrefsStore) ReadUserPrefs(ctx context.Context) (domain.UserPrefs, error) {
	if m.ReadUserPrefsFn != nil {
		return m.ReadUserPrefsFn(ctx)
	}
	if m.Prefs == nil {
		return domain.UserPrefs{}, store.ErrNotFound
	}
	return *m.Prefs, nil
}

// SaveUserPrefs implements store.UserPrefsStore.
func (m *MockUserPrefsStore) SaveUserPrefs(ctx context.Context, prefs domain.UserPrefs) error {
	if m.SaveUserPrefsFn != nil {
		return m.SaveUserPrefsFn(ctx, prefs)
	}
	m.Prefs = &prefs
	return nil
}
