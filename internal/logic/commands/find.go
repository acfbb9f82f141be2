package commands

import (
	"context"
	"fmt"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// MessageListSuccess is the feedback of the list command.
const MessageListSuccess = "Listed all flashcards"

// FindCommand narrows the displayed list to the flashcards matching Filter.
type FindCommand struct {
	Filter domain.FlashcardFilter
}

// NewFindCommand creates the command.
func NewFindCommand(filter domain.FlashcardFilter) *FindCommand {
	return &FindCommand{Filter: filter}
}

// Execute implements Command.Execute
func (c *FindCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	m.UpdateFilteredFlashcardList(ctx, c.Filter.Test)
	return CommandResult{
		Feedback: fmt.Sprintf(MessageFlashcardsListedOverview, len(m.FilteredFlashcardList())),
		ShowList: true,
	}, nil
}

// ListCommand displays every flashcard.
type ListCommand struct{}

// Execute implements Command.Execute
func (ListCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	m.UpdateFilteredFlashcardList(ctx, domain.ShowAll)
	return CommandResult{Feedback: MessageListSuccess, ShowList: true}, nil
}
