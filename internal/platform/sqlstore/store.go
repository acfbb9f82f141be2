package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/phrazzld/quickcache/internal/store"
)

const (
	selectFlashcardsQuery = `
		SELECT CAST(id AS TEXT) AS id, position, question, answer, choices, tags,
			difficulty, times_tested, times_tested_correct
		FROM flashcards
		ORDER BY position`

	insertFlashcardQuery = `
		INSERT INTO flashcards (id, position, question, answer, choices, tags,
			difficulty, times_tested, times_tested_correct)
		VALUES (:id, :position, :question, :answer, :choices, :tags,
			:difficulty, :times_tested, :times_tested_correct)`

	countSavesQuery  = `SELECT COUNT(*) FROM quickcache_saves`
	deleteSavesQuery = `DELETE FROM quickcache_saves`
	insertSaveQuery  = `INSERT INTO quickcache_saves (id, saved_at) VALUES (1, ?)`
)

// flashcardRow is the database shape of a flashcard. Choices and tags are
// JSON arrays.
type flashcardRow struct {
	ID                 string `db:"id"`
	Position           int    `db:"position"`
	Question           string `db:"question"`
	Answer             string `db:"answer"`
	Choices            string `db:"choices"`
	Tags               string `db:"tags"`
	Difficulty         string `db:"difficulty"`
	TimesTested        int    `db:"times_tested"`
	TimesTestedCorrect int    `db:"times_tested_correct"`
}

func newFlashcardRow(position int, f *domain.Flashcard) (flashcardRow, error) {
	id := f.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	choices, err := json.Marshal(nonNil(f.Question.Choices))
	if err != nil {
		return flashcardRow{}, err
	}
	tags, err := json.Marshal(nonNil(f.Tags))
	if err != nil {
		return flashcardRow{}, err
	}
	return flashcardRow{
		ID:                 id.String(),
		Position:           position,
		Question:           f.Question.Text,
		Answer:             string(f.Answer),
		Choices:            string(choices),
		Tags:               string(tags),
		Difficulty:         string(f.Difficulty),
		TimesTested:        f.Statistics.TimesTested,
		TimesTestedCorrect: f.Statistics.TimesTestedCorrect,
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r flashcardRow) toDomain() (*domain.Flashcard, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", r.ID, err)
	}
	var choices []domain.Choice
	if err := json.Unmarshal([]byte(r.Choices), &choices); err != nil {
		return nil, fmt.Errorf("invalid choices: %w", err)
	}
	var tags []domain.Tag
	if err := json.Unmarshal([]byte(r.Tags), &tags); err != nil {
		return nil, fmt.Errorf("invalid tags: %w", err)
	}
	if len(choices) == 0 {
		choices = nil
	}

	f := &domain.Flashcard{
		ID:         id,
		Question:   domain.Question{Text: r.Question, Choices: choices},
		Answer:     domain.Answer(r.Answer),
		Tags:       domain.NormalizeTags(tags),
		Difficulty: domain.Difficulty(r.Difficulty),
		Statistics: domain.Statistics{
			TimesTested:        r.TimesTested,
			TimesTestedCorrect: r.TimesTestedCorrect,
		},
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Store implements store.QuickCacheStore on a SQL database migrated with
// Migrate.
type Store struct {
	db       *sqlx.DB
	location string
	mapError func(error) error
	logger   *slog.Logger
}

// Ensure Store implements the store.QuickCacheStore interface
var _ store.QuickCacheStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithErrorMapper translates driver errors into store errors.
func WithErrorMapper(fn func(error) error) Option {
	return func(s *Store) {
		if fn != nil {
			s.mapError = fn
		}
	}
}

// New creates a Store. location is reported by QuickCacheFilePath.
func New(db *sqlx.DB, location string, log *slog.Logger, opts ...Option) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		db:       db,
		location: location,
		mapError: func(err error) error { return err },
		logger:   log.With(slog.String("component", "sql_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QuickCacheFilePath implements store.QuickCacheStore.QuickCacheFilePath
func (s *Store) QuickCacheFilePath() string {
	return s.location
}

// ReadQuickCache implements store.QuickCacheStore.ReadQuickCache
func (s *Store) ReadQuickCache(ctx context.Context) (*domain.QuickCache, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var saves int
	if err := s.db.GetContext(ctx, &saves, countSavesQuery); err != nil {
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "failed to query saves", s.mapError(err))
	}
	if saves == 0 {
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "no quickcache saved", store.ErrNotFound)
	}

	var rows []flashcardRow
	if err := s.db.SelectContext(ctx, &rows, selectFlashcardsQuery); err != nil {
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "failed to query flashcards", s.mapError(err))
	}

	cards := make([]*domain.Flashcard, 0, len(rows))
	for _, row := range rows {
		f, err := row.toDomain()
		if err != nil {
			log.Warn("invalid flashcard row",
				slog.String("id", row.ID),
				slog.Int("position", row.Position),
				slog.String("error", err.Error()))
			return nil, store.NewStoreError(store.EntityQuickCache, "read",
				fmt.Sprintf("invalid flashcard at position %d", row.Position),
				fmt.Errorf("%w: %v", store.ErrDataConversion, err))
		}
		cards = append(cards, f)
	}

	qc, err := domain.NewQuickCache(cards...)
	if err != nil {
		return nil, store.NewStoreError(store.EntityQuickCache, "read", "invalid quickcache",
			fmt.Errorf("%w: %v", store.ErrDataConversion, err))
	}

	log.Debug("read quickcache", slog.Int("flashcards", qc.Len()))
	return qc, nil
}

// SaveQuickCache implements store.QuickCacheStore.SaveQuickCache
func (s *Store) SaveQuickCache(ctx context.Context, qc *domain.QuickCache) error {
	var cards []*domain.Flashcard
	if qc != nil {
		cards = qc.Flashcards()
	}

	rows := make([]flashcardRow, 0, len(cards))
	for i, f := range cards {
		row, err := newFlashcardRow(i, f)
		if err != nil {
			return store.NewStoreError(store.EntityQuickCache, "save", "failed to encode flashcard", err)
		}
		rows = append(rows, row)
	}

	txCtx := logger.WithLogger(ctx, logger.FromContextOrDefault(ctx, s.logger))
	err := store.RunInTransaction(txCtx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM flashcards`); err != nil {
			return s.mapError(err)
		}
		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, insertFlashcardQuery, row); err != nil {
				return s.mapError(err)
			}
		}
		if _, err := tx.ExecContext(ctx, deleteSavesQuery); err != nil {
			return s.mapError(err)
		}
		_, err := tx.ExecContext(ctx, tx.Rebind(insertSaveQuery), time.Now().UTC())
		return s.mapError(err)
	})
	if err != nil {
		return store.NewStoreError(store.EntityQuickCache, "save", "failed to save flashcards", err)
	}

	s.logger.Debug("saved quickcache", slog.Int("flashcards", len(rows)))
	return nil
}
