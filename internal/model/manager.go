package model

import (
	"context"
	"log/slog"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/events"
	"github.com/phrazzld/quickcache/internal/platform/logger"
)

// flashcardPayload is the event payload describing one flashcard.
type flashcardPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func payloadOf(f *domain.Flashcard) flashcardPayload {
	return flashcardPayload{Question: f.Question.Text, Answer: string(f.Answer)}
}

// ModelManager is the in-memory Model.
type ModelManager struct {
	quickCache *domain.QuickCache
	userPrefs  domain.UserPrefs
	predicate  domain.Predicate
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// Ensure ModelManager implements the Model interface
var _ Model = (*ModelManager)(nil)

// NewModelManager creates a model holding a copy of qc.
// The emitter is optional; when set it receives every model change.
// If logger is nil, a default logger will be used.
func NewModelManager(
	qc *domain.QuickCache,
	prefs domain.UserPrefs,
	emitter events.EventEmitter,
	log *slog.Logger,
) *ModelManager {
	if log == nil {
		log = slog.Default()
	}

	own := &domain.QuickCache{}
	if qc != nil {
		own.ResetData(qc)
	}

	log = log.With(slog.String("component", "model_manager"))
	log.Debug("initializing model",
		slog.Int("flashcard_count", own.Len()),
		slog.String("quickcache_file", prefs.QuickCacheFilePath))

	return &ModelManager{
		quickCache: own,
		userPrefs:  prefs,
		predicate:  domain.ShowAll,
		emitter:    emitter,
		logger:     log,
	}
}

func (m *ModelManager) emit(ctx context.Context, eventType string, payload any) {
	if m.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, m.logger)

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		log.Error("failed to build model event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}
	if err := m.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("model event handler failed",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}

// UserPrefs implements Model.UserPrefs
func (m *ModelManager) UserPrefs() domain.UserPrefs {
	return m.userPrefs
}

// SetUserPrefs implements Model.SetUserPrefs
func (m *ModelManager) SetUserPrefs(ctx context.Context, prefs domain.UserPrefs) {
	m.userPrefs = prefs
	m.emit(ctx, events.TypeUserPrefsChanged, prefs.QuickCacheFilePath)
}

// GuiSettings implements Model.GuiSettings
func (m *ModelManager) GuiSettings() domain.GuiSettings {
	return m.userPrefs.GuiSettings
}

// SetGuiSettings implements Model.SetGuiSettings
func (m *ModelManager) SetGuiSettings(ctx context.Context, settings domain.GuiSettings) {
	m.userPrefs.GuiSettings = settings
	m.emit(ctx, events.TypeUserPrefsChanged, m.userPrefs.QuickCacheFilePath)
}

// QuickCacheFilePath implements Model.QuickCacheFilePath
func (m *ModelManager) QuickCacheFilePath() string {
	return m.userPrefs.QuickCacheFilePath
}

// SetQuickCacheFilePath implements Model.SetQuickCacheFilePath
func (m *ModelManager) SetQuickCacheFilePath(ctx context.Context, path string) {
	m.userPrefs.QuickCacheFilePath = path
	m.emit(ctx, events.TypeUserPrefsChanged, path)
}

// QuickCache implements Model.QuickCache
func (m *ModelManager) QuickCache() *domain.QuickCache {
	snapshot := &domain.QuickCache{}
	snapshot.ResetData(m.quickCache)
	return snapshot
}

// SetQuickCache implements Model.SetQuickCache
func (m *ModelManager) SetQuickCache(ctx context.Context, qc *domain.QuickCache) {
	m.quickCache.ResetData(qc)
	m.emit(ctx, events.TypeQuickCacheReplaced, m.quickCache.Len())
}

// HasFlashcard implements Model.HasFlashcard
func (m *ModelManager) HasFlashcard(f *domain.Flashcard) bool {
	return m.quickCache.Contains(f)
}

// AddFlashcard implements Model.AddFlashcard
func (m *ModelManager) AddFlashcard(ctx context.Context, f *domain.Flashcard) error {
	if err := m.quickCache.Add(f); err != nil {
		return err
	}
	m.emit(ctx, events.TypeFlashcardAdded, payloadOf(f))
	m.UpdateFilteredFlashcardList(ctx, domain.ShowAll)
	return nil
}

// DeleteFlashcard implements Model.DeleteFlashcard
func (m *ModelManager) DeleteFlashcard(ctx context.Context, target *domain.Flashcard) error {
	if err := m.quickCache.Remove(target); err != nil {
		return err
	}
	m.emit(ctx, events.TypeFlashcardDeleted, payloadOf(target))
	return nil
}

// SetFlashcard implements Model.SetFlashcard
func (m *ModelManager) SetFlashcard(ctx context.Context, target, edited *domain.Flashcard) error {
	if err := m.quickCache.SetFlashcard(target, edited); err != nil {
		return err
	}
	m.emit(ctx, events.TypeFlashcardUpdated, payloadOf(edited))
	return nil
}

// FilteredFlashcardList implements Model.FilteredFlashcardList
func (m *ModelManager) FilteredFlashcardList() []*domain.Flashcard {
	all := m.quickCache.Flashcards()
	filtered := make([]*domain.Flashcard, 0, len(all))
	for _, f := range all {
		if m.predicate(f) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// UpdateFilteredFlashcardList implements Model.UpdateFilteredFlashcardList
func (m *ModelManager) UpdateFilteredFlashcardList(ctx context.Context, predicate domain.Predicate) {
	if predicate == nil {
		predicate = domain.ShowAll
	}
	m.predicate = predicate
	m.emit(ctx, events.TypeFilteredListChanged, len(m.FilteredFlashcardList()))
}
