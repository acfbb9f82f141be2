package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/phrazzld/quickcache/internal/config"
	"github.com/phrazzld/quickcache/internal/events"
	"github.com/phrazzld/quickcache/internal/exchange"
	"github.com/phrazzld/quickcache/internal/logic"
	"github.com/phrazzld/quickcache/internal/model"
	"github.com/phrazzld/quickcache/internal/platform/jsonfile"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/phrazzld/quickcache/internal/platform/postgres"
	"github.com/phrazzld/quickcache/internal/platform/sqlite"
	"github.com/phrazzld/quickcache/internal/platform/sqlstore"
	"github.com/phrazzld/quickcache/internal/store"
)

// application holds the wired dependencies of one session.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sqlx.DB
	storage *store.Manager
	model   *model.ModelManager
	logic   *logic.LogicManager
}

// loadConfig reads the optional env file and the configuration, then sets
// up logging on stderr so that stdout stays with the shell.
func loadConfig(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("failed to load %s: %w", opts.envFile, err)
		}
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.App, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return cfg, log, nil
}

// bootstrap loads the configuration and wires every component.
func bootstrap(ctx context.Context, opts *rootOptions) (*application, error) {
	cfg, log, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return newApplication(logger.WithLogger(ctx, log), cfg, log)
}

func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: log}

	prefsStore := jsonfile.NewUserPrefsStore(cfg.App.PrefsFile, log)
	prefs := store.LoadUserPrefs(ctx, prefsStore, cfg.Storage.DataFile)

	quickCacheStore, err := app.openQuickCacheStore(ctx, prefs.QuickCacheFilePath)
	if err != nil {
		return nil, err
	}
	app.storage = store.NewManager(quickCacheStore, prefsStore)

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.NewLoggingHandler(log))

	app.model = model.NewModelManager(store.LoadQuickCache(ctx, app.storage), prefs, emitter, log)

	app.logic, err = logic.NewLogicManager(app.model, app.storage, exchange.New(cfg.Storage.ExportDir, log), log)
	if err != nil {
		app.cleanup(ctx)
		return nil, fmt.Errorf("failed to create logic manager: %w", err)
	}

	log.Info("application initialized",
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("location", app.storage.QuickCacheFilePath()))
	return app, nil
}

// openQuickCacheStore builds the store selected by storage.driver. SQL
// databases are migrated to the latest schema first.
func (app *application) openQuickCacheStore(ctx context.Context, dataFile string) (store.QuickCacheStore, error) {
	cfg := app.config.Storage
	if cfg.Driver == config.DriverJSON {
		return jsonfile.NewQuickCacheStore(dataFile, app.logger), nil
	}

	db, dialect, err := openDatabase(ctx, cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := sqlstore.Migrate(ctx, db.DB, dialect, sqlstore.MigrateUp, app.logger); err != nil {
		app.cleanup(ctx)
		return nil, err
	}

	if dialect == sqlstore.DialectPostgres {
		return sqlstore.New(db, postgres.MaskDatabaseURL(cfg.DatabaseURL), app.logger,
			sqlstore.WithErrorMapper(postgres.MapError)), nil
	}
	return sqlstore.New(db, cfg.SQLitePath, app.logger,
		sqlstore.WithErrorMapper(sqlite.MapError)), nil
}

// openDatabase connects to the database of a SQL storage driver.
func openDatabase(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (*sqlx.DB, sqlstore.Dialect, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath, log)
		return db, sqlstore.DialectSQLite, err
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL, log)
		return db, sqlstore.DialectPostgres, err
	default:
		return nil, "", fmt.Errorf("storage driver %q has no database", cfg.Driver)
	}
}

// cleanup saves the user preferences and closes the database.
func (app *application) cleanup(ctx context.Context) {
	if app.model != nil && app.storage != nil {
		if err := app.storage.SaveUserPrefs(context.WithoutCancel(ctx), app.model.UserPrefs()); err != nil {
			app.logger.Error("failed to save user preferences", slog.String("error", err.Error()))
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
		app.db = nil
	}
}
