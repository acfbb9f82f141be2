package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// Session command messages.
const (
	MessageClearSuccess        = "QuickCache has been cleared!"
	MessageHistoryEmpty        = "You have not entered any commands yet."
	MessageHistoryHeader       = "Entered commands (most recent first):"
	MessageHelpHeader          = "Available commands:"
	MessageExitAcknowledgement = "Exiting QuickCache as requested ..."
)

// ClearCommand deletes every flashcard.
type ClearCommand struct{}

// Execute implements Command.Execute
func (ClearCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	m.SetQuickCache(ctx, &domain.QuickCache{})
	return NewCommandResult(MessageClearSuccess), nil
}

// History gives read access to the commands entered so far.
type History interface {
	// Entries returns the entered commands, oldest first.
	Entries() []string
}

// HistoryCommand lists the entered commands.
type HistoryCommand struct {
	History History
}

// NewHistoryCommand creates the command.
func NewHistoryCommand(history History) *HistoryCommand {
	return &HistoryCommand{History: history}
}

// Execute implements Command.Execute
func (c *HistoryCommand) Execute(_ context.Context, _ model.Model) (CommandResult, error) {
	var entries []string
	if c.History != nil {
		entries = c.History.Entries()
	}
	if len(entries) == 0 {
		return NewCommandResult(MessageHistoryEmpty), nil
	}

	var b strings.Builder
	b.WriteString(MessageHistoryHeader)
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "\n%d. %s", len(entries)-i, entries[i])
	}
	return NewCommandResult(b.String()), nil
}

// HelpCommand shows the command reference.
type HelpCommand struct{}

// Execute implements Command.Execute
func (HelpCommand) Execute(_ context.Context, _ model.Model) (CommandResult, error) {
	return CommandResult{
		Feedback: MessageHelpHeader + "\n\n" + strings.Join(Usages, "\n\n"),
		ShowHelp: true,
	}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

// Execute implements Command.Execute
func (ExitCommand) Execute(_ context.Context, _ model.Model) (CommandResult, error) {
	return CommandResult{Feedback: MessageExitAcknowledgement, Exit: true}, nil
}
