// Package logic connects user input to the model: it parses a command,
// executes it and persists the result.
package logic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/logic/commands"
	"github.com/phrazzld/quickcache/internal/logic/parser"
	"github.com/phrazzld/quickcache/internal/model"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/phrazzld/quickcache/internal/store"
)

// Logic is the API the shell uses.
type Logic interface {
	// Execute parses and runs one line of input.
	// Returns *parser.ParseError for malformed input and
	// *commands.CommandError for commands that cannot be carried out.
	Execute(ctx context.Context, input string) (commands.CommandResult, error)

	// QuickCache returns a snapshot of every flashcard.
	QuickCache() *domain.QuickCache

	// FilteredFlashcardList returns the flashcards currently displayed.
	FilteredFlashcardList() []*domain.Flashcard

	// QuickCacheFilePath returns where flashcards are saved.
	QuickCacheFilePath() string

	// GuiSettings returns the window settings.
	GuiSettings() domain.GuiSettings

	// SetGuiSettings replaces the window settings.
	SetGuiSettings(ctx context.Context, settings domain.GuiSettings)

	// History returns the session's command history.
	History() *CommandHistory
}

// LogicManager is the main Logic implementation.
type LogicManager struct {
	model   model.Model
	store   store.QuickCacheStore
	parser  *parser.QuickCacheParser
	history *CommandHistory
	logger  *slog.Logger
}

// Ensure LogicManager implements the Logic interface
var _ Logic = (*LogicManager)(nil)

// NewLogicManager creates a LogicManager.
// The exchange backs import and export and may be nil.
// If logger is nil, a default logger will be used.
func NewLogicManager(
	m model.Model,
	s store.QuickCacheStore,
	exchange commands.Exchange,
	log *slog.Logger,
) (*LogicManager, error) {
	if m == nil {
		return nil, errors.New("model cannot be nil")
	}
	if s == nil {
		return nil, errors.New("store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	history := NewCommandHistory()
	return &LogicManager{
		model:   m,
		store:   s,
		parser:  parser.NewQuickCacheParser(exchange, history),
		history: history,
		logger:  log.With(slog.String("component", "logic_manager")),
	}, nil
}

// Execute implements Logic.Execute
func (l *LogicManager) Execute(ctx context.Context, input string) (commands.CommandResult, error) {
	log := logger.FromContextOrDefault(ctx, l.logger)
	log.Debug("executing command", slog.String("input", input))

	l.history.Add(input)

	cmd, err := l.parser.ParseCommand(input)
	if err != nil {
		log.Debug("failed to parse command", slog.String("error", err.Error()))
		return commands.CommandResult{}, err
	}

	snapshot := l.model.QuickCache()
	result, err := cmd.Execute(ctx, l.model)
	if err != nil {
		var cmdErr *commands.CommandError
		if errors.As(err, &cmdErr) {
			log.Debug("command rejected", slog.String("error", err.Error()))
		} else {
			log.Error("command failed", slog.String("error", err.Error()))
		}
		return commands.CommandResult{}, err
	}

	if err := l.store.SaveQuickCache(ctx, l.model.QuickCache()); err != nil {
		log.Error("failed to save quickcache",
			slog.String("location", l.store.QuickCacheFilePath()),
			slog.String("error", err.Error()))
		// Memory must match what is on disk.
		l.model.SetQuickCache(ctx, snapshot)
		return commands.CommandResult{}, commands.NewCommandError(
			fmt.Sprintf(commands.MessageSaveFailed, err), err)
	}

	return result, nil
}

// QuickCache implements Logic.QuickCache
func (l *LogicManager) QuickCache() *domain.QuickCache {
	return l.model.QuickCache()
}

// FilteredFlashcardList implements Logic.FilteredFlashcardList
func (l *LogicManager) FilteredFlashcardList() []*domain.Flashcard {
	return l.model.FilteredFlashcardList()
}

// QuickCacheFilePath implements Logic.QuickCacheFilePath
func (l *LogicManager) QuickCacheFilePath() string {
	return l.model.QuickCacheFilePath()
}

// GuiSettings implements Logic.GuiSettings
func (l *LogicManager) GuiSettings() domain.GuiSettings {
	return l.model.GuiSettings()
}

// SetGuiSettings implements Logic.SetGuiSettings
func (l *LogicManager) SetGuiSettings(ctx context.Context, settings domain.GuiSettings) {
	l.model.SetGuiSettings(ctx, settings)
}

// History implements Logic.History
func (l *LogicManager) History() *CommandHistory {
	return l.history
}
