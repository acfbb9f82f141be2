package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// Edit command messages.
const (
	MessageEditSuccess          = "Edited Flashcard: %s"
	MessageEditNotEdited        = "At least one field to edit must be provided."
	MessageEditChoicesOpenEnded = "Choices can only be edited on multiple choice questions"
)

// EditFlashcardDescriptor holds the fields an edit replaces. Nil fields keep
// the current value. TagsEdited distinguishes "clear all tags" from
// "leave tags alone".
type EditFlashcardDescriptor struct {
	Question   *string
	Answer     *domain.Answer
	Choices    []domain.Choice
	Tags       []domain.Tag
	TagsEdited bool
	Difficulty *domain.Difficulty
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditFlashcardDescriptor) IsAnyFieldEdited() bool {
	return d.Question != nil || d.Answer != nil || d.Choices != nil || d.TagsEdited || d.Difficulty != nil
}

// apply returns a copy of f with the descriptor's fields replaced.
func (d EditFlashcardDescriptor) apply(f *domain.Flashcard) *domain.Flashcard {
	edited := f.Clone()
	if d.Question != nil {
		edited.Question.Text = *d.Question
	}
	if d.Choices != nil {
		edited.Question.Choices = slices.Clone(d.Choices)
	}
	if d.Answer != nil {
		edited.Answer = *d.Answer
	}
	if d.TagsEdited {
		edited.Tags = domain.NormalizeTags(d.Tags)
	}
	if d.Difficulty != nil {
		edited.Difficulty = *d.Difficulty
	}
	return edited
}

// EditCommand edits the flashcard at a displayed index. Statistics are kept.
type EditCommand struct {
	Index      domain.Index
	Descriptor EditFlashcardDescriptor
}

// NewEditCommand creates the command.
func NewEditCommand(index domain.Index, descriptor EditFlashcardDescriptor) *EditCommand {
	return &EditCommand{Index: index, Descriptor: descriptor}
}

// Execute implements Command.Execute
func (c *EditCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	target, err := flashcardAt(m, c.Index)
	if err != nil {
		return CommandResult{}, err
	}

	if c.Descriptor.Choices != nil && !target.Question.IsMultipleChoice() {
		return CommandResult{}, NewCommandError(MessageEditChoicesOpenEnded, nil)
	}

	edited := c.Descriptor.apply(target)
	if err := edited.Validate(); err != nil {
		return CommandResult{}, NewCommandError(err.Error(), err)
	}

	if !target.IsSameFlashcard(edited) && m.HasFlashcard(edited) {
		return CommandResult{}, NewCommandError(MessageDuplicateFlashcard, domain.ErrDuplicateFlashcard)
	}

	if err := m.SetFlashcard(ctx, target, edited); err != nil {
		return CommandResult{}, fromModelError(err)
	}
	m.UpdateFilteredFlashcardList(ctx, domain.ShowAll)

	return NewCommandResult(fmt.Sprintf(MessageEditSuccess, edited)), nil
}
