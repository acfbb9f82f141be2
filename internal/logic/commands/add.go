package commands

import (
	"context"
	"fmt"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// MessageAddSuccess is the feedback after a flashcard is added.
const MessageAddSuccess = "New flashcard added: %s"

// AddOpenEndedQuestionCommand adds an open-ended flashcard.
type AddOpenEndedQuestionCommand struct {
	Flashcard *domain.Flashcard
}

// NewAddOpenEndedQuestionCommand creates the command for f.
func NewAddOpenEndedQuestionCommand(f *domain.Flashcard) *AddOpenEndedQuestionCommand {
	return &AddOpenEndedQuestionCommand{Flashcard: f}
}

// Execute implements Command.Execute
func (c *AddOpenEndedQuestionCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	return addFlashcard(ctx, m, c.Flashcard)
}

// AddMultipleChoiceQuestionCommand adds a multiple-choice flashcard.
type AddMultipleChoiceQuestionCommand struct {
	Flashcard *domain.Flashcard
}

// NewAddMultipleChoiceQuestionCommand creates the command for f.
func NewAddMultipleChoiceQuestionCommand(f *domain.Flashcard) *AddMultipleChoiceQuestionCommand {
	return &AddMultipleChoiceQuestionCommand{Flashcard: f}
}

// Execute implements Command.Execute
func (c *AddMultipleChoiceQuestionCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	return addFlashcard(ctx, m, c.Flashcard)
}

func addFlashcard(ctx context.Context, m model.Model, f *domain.Flashcard) (CommandResult, error) {
	if m.HasFlashcard(f) {
		return CommandResult{}, NewCommandError(MessageDuplicateFlashcard, domain.ErrDuplicateFlashcard)
	}
	if err := m.AddFlashcard(ctx, f); err != nil {
		return CommandResult{}, fromModelError(err)
	}
	return NewCommandResult(fmt.Sprintf(MessageAddSuccess, f)), nil
}
