package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/platform/jsonfile"
	"github.com/phrazzld/quickcache/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickCacheStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		s := jsonfile.NewQuickCacheStore(filepath.Join(t.TempDir(), "missing.json"), nil)

		_, err := s.ReadQuickCache(ctx)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("save creates parent directories and reads back", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "data", "quickcache.json")
		s := jsonfile.NewQuickCacheStore(path, nil)
		sample := domain.SampleQuickCache()

		require.NoError(t, s.SaveQuickCache(ctx, sample))
		assert.FileExists(t, path)
		assert.Equal(t, path, s.QuickCacheFilePath())

		got, err := s.ReadQuickCache(ctx)
		require.NoError(t, err)
		assert.True(t, sample.Equal(got))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files must not be left behind")
	})

	t.Run("empty quickcache", func(t *testing.T) {
		t.Parallel()
		s := jsonfile.NewQuickCacheStore(filepath.Join(t.TempDir(), "quickcache.json"), nil)

		require.NoError(t, s.SaveQuickCache(ctx, &domain.QuickCache{}))
		got, err := s.ReadQuickCache(ctx)
		require.NoError(t, err)
		assert.Zero(t, got.Len())
	})

	corrupt := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{"flashcards": [`},
		{name: "invalid flashcard", content: `{"flashcards": [{"question": "", "answer": "a"}]}`},
		{name: "duplicate flashcards", content: `{"flashcards": [
			{"question": "q", "answer": "a"},
			{"question": "q", "answer": "a", "tags": ["other"]}
		]}`},
	}
	for _, tt := range corrupt {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "quickcache.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := jsonfile.NewQuickCacheStore(path, nil).ReadQuickCache(ctx)
			assert.ErrorIs(t, err, store.ErrDataConversion)
		})
	}

	t.Run("unwritable location", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		err := jsonfile.NewQuickCacheStore(filepath.Join(blocker, "quickcache.json"), nil).
			SaveQuickCache(ctx, domain.SampleQuickCache())

		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "save", storeErr.Operation)
		assert.Equal(t, store.EntityQuickCache, storeErr.Entity)
	})
}

func TestUserPrefsStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := jsonfile.NewUserPrefsStore(filepath.Join(t.TempDir(), "prefs.json"), nil).ReadUserPrefs(ctx)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "preferences.json")
		s := jsonfile.NewUserPrefsStore(path, nil)
		prefs := domain.UserPrefs{
			GuiSettings: domain.GuiSettings{
				WindowWidth:       1024,
				WindowHeight:      768,
				WindowCoordinates: &domain.Point{X: 10, Y: 20},
			},
			QuickCacheFilePath: "data/cards.json",
		}

		require.NoError(t, s.SaveUserPrefs(ctx, prefs))
		got, err := s.ReadUserPrefs(ctx)

		require.NoError(t, err)
		assert.Equal(t, prefs.QuickCacheFilePath, got.QuickCacheFilePath)
		assert.True(t, prefs.GuiSettings.Equal(got.GuiSettings))
		assert.Equal(t, path, s.UserPrefsFilePath())
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "preferences.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"quickCacheFilePath": "other.json"}`), 0o600))

		got, err := jsonfile.NewUserPrefsStore(path, nil).ReadUserPrefs(ctx)

		require.NoError(t, err)
		assert.Equal(t, "other.json", got.QuickCacheFilePath)
		assert.True(t, domain.DefaultGuiSettings().Equal(got.GuiSettings))
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "preferences.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"guiSettings": 3}`), 0o600))

		_, err := jsonfile.NewUserPrefsStore(path, nil).ReadUserPrefs(ctx)
		assert.ErrorIs(t, err, store.ErrDataConversion)
	})
}
