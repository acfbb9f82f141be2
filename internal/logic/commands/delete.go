package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// Delete command messages.
const (
	MessageDeleteSuccess       = "Deleted Flashcard: %s"
	MessageDeleteByTagsSuccess = "Deleted %d flashcards with tags: %s"
)

// DeleteCommand deletes the flashcard at a displayed index.
type DeleteCommand struct {
	Index domain.Index
}

// NewDeleteCommand creates the command.
func NewDeleteCommand(index domain.Index) *DeleteCommand {
	return &DeleteCommand{Index: index}
}

// Execute implements Command.Execute
func (c *DeleteCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	target, err := flashcardAt(m, c.Index)
	if err != nil {
		return CommandResult{}, err
	}
	if err := m.DeleteFlashcard(ctx, target); err != nil {
		return CommandResult{}, fromModelError(err)
	}
	return NewCommandResult(fmt.Sprintf(MessageDeleteSuccess, target)), nil
}

// DeleteByTagsCommand deletes every flashcard, displayed or not, that
// carries all of Tags.
type DeleteByTagsCommand struct {
	Tags []domain.Tag
}

// NewDeleteByTagsCommand creates the command.
func NewDeleteByTagsCommand(tags []domain.Tag) *DeleteByTagsCommand {
	return &DeleteByTagsCommand{Tags: domain.NormalizeTags(tags)}
}

// Execute implements Command.Execute
func (c *DeleteByTagsCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	deleted := 0
	for _, f := range m.QuickCache().Flashcards() {
		if !f.HasTags(c.Tags...) {
			continue
		}
		if err := m.DeleteFlashcard(ctx, f); err != nil {
			return CommandResult{}, fromModelError(err)
		}
		deleted++
	}
	return NewCommandResult(fmt.Sprintf(MessageDeleteByTagsSuccess, deleted, formatTags(c.Tags))), nil
}

func formatTags(tags []domain.Tag) string {
	var b strings.Builder
	for _, t := range tags {
		b.WriteString(t.String())
	}
	return b.String()
}
