package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// Import and export messages.
const (
	MessageExportSuccess = "Exported %d flashcards to %s"
	MessageImportSuccess = "Imported %d flashcards from %s (%d duplicates skipped, %d invalid rows skipped)"
	MessageExportFailed  = "Could not export flashcards: %s"
	MessageImportFailed  = "Could not import flashcards: %s"
)

// ErrNoExchange is returned when import or export runs without an Exchange.
var ErrNoExchange = errors.New("import and export are not available")

// Exchange reads and writes flashcard files outside the main data file.
type Exchange interface {
	// Export writes cards to fileName and returns the path written.
	Export(ctx context.Context, fileName string, cards []*domain.Flashcard) (string, error)

	// Import reads flashcards from fileName. Rows that fail validation are
	// returned as rowErrs and do not fail the import as a whole.
	Import(ctx context.Context, fileName string) (cards []*domain.Flashcard, rowErrs []error, err error)
}

// ExportCommand writes the displayed flashcards to a file.
type ExportCommand struct {
	FileName string
	Exchange Exchange
}

// NewExportCommand creates the command.
func NewExportCommand(fileName string, exchange Exchange) *ExportCommand {
	return &ExportCommand{FileName: fileName, Exchange: exchange}
}

// Execute implements Command.Execute
func (c *ExportCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	if c.Exchange == nil {
		return CommandResult{}, newCommandErrorf(ErrNoExchange, MessageExportFailed, ErrNoExchange)
	}
	cards := m.FilteredFlashcardList()
	path, err := c.Exchange.Export(ctx, c.FileName, cards)
	if err != nil {
		return CommandResult{}, newCommandErrorf(err, MessageExportFailed, err)
	}
	return NewCommandResult(fmt.Sprintf(MessageExportSuccess, len(cards), path)), nil
}

// ImportCommand adds the flashcards of a file, skipping duplicates.
type ImportCommand struct {
	FileName string
	Exchange Exchange
}

// NewImportCommand creates the command.
func NewImportCommand(fileName string, exchange Exchange) *ImportCommand {
	return &ImportCommand{FileName: fileName, Exchange: exchange}
}

// Execute implements Command.Execute
func (c *ImportCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	if c.Exchange == nil {
		return CommandResult{}, newCommandErrorf(ErrNoExchange, MessageImportFailed, ErrNoExchange)
	}
	cards, rowErrs, err := c.Exchange.Import(ctx, c.FileName)
	if err != nil {
		return CommandResult{}, newCommandErrorf(err, MessageImportFailed, err)
	}

	added, duplicates := 0, 0
	for _, f := range cards {
		if m.HasFlashcard(f) {
			duplicates++
			continue
		}
		if err := m.AddFlashcard(ctx, f); err != nil {
			return CommandResult{}, fromModelError(err)
		}
		added++
	}

	return NewCommandResult(fmt.Sprintf(MessageImportSuccess, added, c.FileName, duplicates, len(rowErrs))), nil
}
