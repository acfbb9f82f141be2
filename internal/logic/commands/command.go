// Package commands implements every QuickCache command as a value that can be
// executed against a model.Model.
//
// Commands are produced by the parser package and carry already-validated
// arguments. Execution failures that the user can act on (an index out of
// range, a duplicate flashcard, a wrong answering mode) are returned as
// *CommandError; anything else is an internal error and is wrapped as-is.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// Command is a parsed user instruction.
type Command interface {
	// Execute runs the command against m and returns the feedback to show.
	Execute(ctx context.Context, m model.Model) (CommandResult, error)
}

// CommandResult is what the user sees after a command succeeds.
type CommandResult struct {
	// Feedback is the message printed to the user.
	Feedback string
	// ShowHelp asks the shell to display the command reference.
	ShowHelp bool
	// ShowList asks the shell to display the filtered flashcard list.
	ShowList bool
	// Exit asks the shell to terminate.
	Exit bool
}

// NewCommandResult returns a plain feedback-only result.
func NewCommandResult(feedback string) CommandResult {
	return CommandResult{Feedback: feedback}
}

// CommandError is a semantic failure of a well-formed command.
// Its message is shown to the user verbatim.
type CommandError struct {
	Message string
	Err     error
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a CommandError with the given user message.
func NewCommandError(message string, err error) *CommandError {
	return &CommandError{Message: message, Err: err}
}

// newCommandErrorf formats the user message.
func newCommandErrorf(err error, format string, args ...any) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...), Err: err}
}

// fromModelError converts the domain errors a model can return into user
// facing command errors. Unknown errors are returned unchanged.
func fromModelError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicateFlashcard):
		return NewCommandError(MessageDuplicateFlashcard, err)
	case errors.Is(err, domain.ErrFlashcardNotFound):
		return NewCommandError(MessageInvalidFlashcardIndex, err)
	default:
		return err
	}
}

// flashcardAt resolves a displayed index against the filtered list.
func flashcardAt(m model.Model, index domain.Index) (*domain.Flashcard, error) {
	list := m.FilteredFlashcardList()
	if index.ZeroBased() >= len(list) {
		return nil, NewCommandError(MessageInvalidFlashcardIndex, nil)
	}
	return list[index.ZeroBased()], nil
}
