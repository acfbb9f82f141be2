package sqlstore_test

import (
	"context"
	"testing"

	"github.com/phrazzld/quickcache/internal/platform/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()

	t.Run("up creates the schema", func(t *testing.T) {
		db := newTestDB(t)

		var tables []string
		require.NoError(t, db.Select(&tables,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`))
		assert.Equal(t, []string{"flashcards", "quickcache_saves", sqlstore.MigrationTableName}, tables)
	})

	t.Run("up is idempotent", func(t *testing.T) {
		db := newTestDB(t)
		assert.NoError(t, sqlstore.Migrate(ctx, db.DB, sqlstore.DialectSQLite, sqlstore.MigrateUp, discardLogger()))
	})

	t.Run("down drops the schema", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, sqlstore.Migrate(ctx, db.DB, sqlstore.DialectSQLite, sqlstore.MigrateDown, discardLogger()))

		var count int
		require.NoError(t, db.Get(&count,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'flashcards'`))
		assert.Zero(t, count)
	})

	t.Run("status and version", func(t *testing.T) {
		db := newTestDB(t)
		assert.NoError(t, sqlstore.Migrate(ctx, db.DB, sqlstore.DialectSQLite, sqlstore.MigrateStatus, discardLogger()))
		assert.NoError(t, sqlstore.Migrate(ctx, db.DB, sqlstore.DialectSQLite, sqlstore.MigrateVersion, discardLogger()))
	})

	t.Run("unknown command", func(t *testing.T) {
		db := newTestDB(t)
		err := sqlstore.Migrate(ctx, db.DB, sqlstore.DialectSQLite, "sideways", discardLogger())
		assert.ErrorContains(t, err, `unknown migration command "sideways"`)
	})

	t.Run("unknown dialect", func(t *testing.T) {
		db := newTestDB(t)
		err := sqlstore.Migrate(ctx, db.DB, sqlstore.Dialect("oracle"), sqlstore.MigrateUp, discardLogger())
		assert.ErrorContains(t, err, `unsupported dialect "oracle"`)
	})
}
