// Package model holds the in-memory state of a QuickCache session: the
// flashcards, the user preferences and the currently displayed subset.
package model

import (
	"context"

	"github.com/phrazzld/quickcache/internal/domain"
)

// Model is the API commands execute against.
type Model interface {
	// UserPrefs returns the user preferences.
	UserPrefs() domain.UserPrefs

	// SetUserPrefs replaces the user preferences.
	SetUserPrefs(ctx context.Context, prefs domain.UserPrefs)

	// GuiSettings returns the window settings from the user preferences.
	GuiSettings() domain.GuiSettings

	// SetGuiSettings replaces the window settings in the user preferences.
	SetGuiSettings(ctx context.Context, settings domain.GuiSettings)

	// QuickCacheFilePath returns the data file recorded in the user preferences.
	QuickCacheFilePath() string

	// SetQuickCacheFilePath records a new data file in the user preferences.
	SetQuickCacheFilePath(ctx context.Context, path string)

	// QuickCache returns a snapshot of every flashcard.
	QuickCache() *domain.QuickCache

	// SetQuickCache replaces every flashcard with the contents of qc.
	SetQuickCache(ctx context.Context, qc *domain.QuickCache)

	// HasFlashcard reports whether a flashcard equivalent to f exists.
	HasFlashcard(f *domain.Flashcard) bool

	// AddFlashcard adds f and resets the displayed list to show everything.
	// Returns domain.ErrDuplicateFlashcard if an equivalent card exists.
	AddFlashcard(ctx context.Context, f *domain.Flashcard) error

	// DeleteFlashcard removes target.
	// Returns domain.ErrFlashcardNotFound if it does not exist.
	DeleteFlashcard(ctx context.Context, target *domain.Flashcard) error

	// SetFlashcard replaces target with edited.
	SetFlashcard(ctx context.Context, target, edited *domain.Flashcard) error

	// FilteredFlashcardList returns the flashcards currently displayed.
	FilteredFlashcardList() []*domain.Flashcard

	// UpdateFilteredFlashcardList changes which flashcards are displayed.
	UpdateFilteredFlashcardList(ctx context.Context, predicate domain.Predicate)
}
