package sqlstore_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/platform/sqlite"
	"github.com/phrazzld/quickcache/internal/platform/sqlstore"
	"github.com/phrazzld/quickcache/internal/store"
	"github.com/phrazzld/quickcache/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return testutils.DiscardLogger()
}

// newTestDB opens a migrated SQLite database in a temp directory.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "data", "quickcache.db"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlstore.Migrate(ctx, db.DB, sqlstore.DialectSQLite, sqlstore.MigrateUp, discardLogger()))
	return db
}

func newTestStore(t *testing.T) (*sqlstore.Store, *sqlx.DB) {
	t.Helper()
	db := newTestDB(t)
	return sqlstore.New(db, "sqlite:test.db", discardLogger(), sqlstore.WithErrorMapper(sqlite.MapError)), db
}

func TestStore_ReadBeforeSave(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	qc, err := s.ReadQuickCache(context.Background())

	assert.Nil(t, qc)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestStore_SaveAndRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)

	sample := domain.SampleQuickCache()
	tested := sample.Flashcards()[2].Clone()
	tested.Statistics = domain.Statistics{TimesTested: 3, TimesTestedCorrect: 2}
	require.NoError(t, sample.SetFlashcard(sample.Flashcards()[2], tested))

	require.NoError(t, s.SaveQuickCache(ctx, sample))

	got, err := s.ReadQuickCache(ctx)
	require.NoError(t, err)
	assert.True(t, sample.Equal(got), "read quickcache differs from saved one")

	for i, f := range got.Flashcards() {
		assert.Equal(t, sample.Flashcards()[i].ID, f.ID)
	}
	assert.Equal(t, domain.Statistics{TimesTested: 3, TimesTestedCorrect: 2}, got.Flashcards()[2].Statistics)
	assert.True(t, got.Flashcards()[2].Question.IsMultipleChoice())
	assert.Equal(t, "sqlite:test.db", s.QuickCacheFilePath())
}

func TestStore_SaveReplacesContent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, db := newTestStore(t)

	require.NoError(t, s.SaveQuickCache(ctx, domain.SampleQuickCache()))

	q, err := domain.NewOpenEndedQuestion("What is 2 + 2?")
	require.NoError(t, err)
	f, err := domain.NewFlashcard(q, "4", []domain.Tag{"math"}, domain.DifficultyLow)
	require.NoError(t, err)
	qc, err := domain.NewQuickCache(f)
	require.NoError(t, err)

	require.NoError(t, s.SaveQuickCache(ctx, qc))
	require.NoError(t, s.SaveQuickCache(ctx, qc))

	got, err := s.ReadQuickCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.True(t, qc.Equal(got))

	var saves int
	require.NoError(t, db.Get(&saves, "SELECT COUNT(*) FROM quickcache_saves"))
	assert.Equal(t, 1, saves)
}

func TestStore_EmptyQuickCacheIsNotMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.SaveQuickCache(ctx, domain.SampleQuickCache()))
	require.NoError(t, s.SaveQuickCache(ctx, &domain.QuickCache{}))

	got, err := s.ReadQuickCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestStore_CorruptRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		update string
	}{
		{
			name:   "malformed tags",
			update: `UPDATE flashcards SET tags = '{not json' WHERE position = 0`,
		},
		{
			name:   "invalid tag name",
			update: `UPDATE flashcards SET tags = '["not a tag"]' WHERE position = 0`,
		},
		{
			name:   "answer missing from choices",
			update: `UPDATE flashcards SET answer = 'Linked list' WHERE position = 2`,
		},
		{
			name:   "invalid id",
			update: `UPDATE flashcards SET id = 'card-1' WHERE position = 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			s, db := newTestStore(t)
			require.NoError(t, s.SaveQuickCache(ctx, domain.SampleQuickCache()))

			_, err := db.Exec(tt.update)
			require.NoError(t, err)

			qc, err := s.ReadQuickCache(ctx)
			assert.Nil(t, qc)
			assert.ErrorIs(t, err, store.ErrDataConversion)

			var storeErr *store.StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, store.EntityQuickCache, storeErr.Entity)
			assert.Equal(t, "read", storeErr.Operation)
		})
	}
}

func TestStore_SaveFailureIsWrapped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, db := newTestStore(t)

	_, err := db.Exec(`DROP TABLE quickcache_saves`)
	require.NoError(t, err)

	err = s.SaveQuickCache(ctx, domain.SampleQuickCache())

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "save", storeErr.Operation)
}
