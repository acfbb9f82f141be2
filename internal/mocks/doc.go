// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, tests across the
// logic, store and cli packages reuse the mocks defined here.
//
// Usage:
//
//	import "github.com/phrazzld/quickcache/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    s := &mocks.MockQuickCacheStore{
//	        SaveQuickCacheFn: func(ctx context.Context, qc *domain.QuickCache) error {
//	            return errors.New("disk full")
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// Two styles are used: function-field mocks with call tracking
// (MockQuickCacheStore, MockUserPrefsStore) and testify/mock mocks
// (TestifyMockExchange) for tests that assert on arguments.
package mocks
