package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/store"
)

// MockQuickCacheStore implements store.QuickCacheStore for testing.
// Without custom functions it behaves like an in-memory store holding QuickCache.
type MockQuickCacheStore struct {
	ReadQuickCacheFn func(ctx context.Context) (*domain.QuickCache, error)
	SaveQuickCacheFn func(ctx context.Context, qc *domain.QuickCache) error

	// Path is returned by QuickCacheFilePath.
	Path string
	// QuickCache is the stored data; nil means nothing was saved yet.
	QuickCache *domain.QuickCache

	// SaveQuickCacheCalls tracks every save for verification.
	SaveQuickCacheCalls struct {
		mu sync.Mutex

		// Count tracks how many times SaveQuickCache was called
		Count int

		// Saved holds a snapshot of every QuickCache passed to SaveQuickCache
		Saved []*domain.QuickCache
	}
}

var _ store.QuickCacheStore = (*MockQuickCacheStore)(nil)

// QuickCacheFilePath implements store.QuickCacheStore.
func (m *MockQuickCacheStore) QuickCacheFilePath() string {
	return m.Path
}

// ReadQuickCache implements store.QuickCacheStore.
func (m *MockQuickCacheStore) ReadQuickCache(ctx context.Context) (*domain.QuickCache, error) {
	if m.ReadQuickCacheFn != nil {
		return m.ReadQuickCacheFn(ctx)
	}
	if m.QuickCache == nil {
		return nil, store.ErrNotFound
	}
	qc := &domain.QuickCache{}
	qc.ResetData(m.QuickCache)
	return qc, nil
}

// SaveQuickCache implements store.QuickCacheStore.
func (m *MockQuickCacheStore) SaveQuickCache(ctx context.Context, qc *domain.QuickCache) error {
	snapshot := &domain.QuickCache{}
	snapshot.ResetData(qc)

	m.SaveQuickCacheCalls.mu.Lock()
	m.SaveQuickCacheCalls.Count++
	m.SaveQuickCacheCalls.Saved = append(m.SaveQuickCacheCalls.Saved, snapshot)
	m.SaveQuickCacheCalls.mu.Unlock()

	if m.SaveQuickCacheFn != nil {
		return m.SaveQuickCacheFn(ctx, qc)
	}
	m.QuickCache = snapshot
	return nil
}

// NewMockQuickCacheStoreWithError creates a store whose reads and saves fail with err.
func NewMockQuickCacheStoreWithError(err error) *MockQuickCacheStore {
	return &MockQuickCacheStore{
		ReadQuickCacheFn: func(context.Context) (*domain.QuickCache, error) { return nil, err },
		SaveQuickCacheFn: func(context.Context, *domain.QuickCache) error { return err },
	}
}
