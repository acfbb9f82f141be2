package cli

import (
	"strconv"
	"strings"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/pterm/pterm"
)

// MessageNoFlashcards is shown instead of an empty table.
const MessageNoFlashcards = "No flashcards to display"

func questionKind(f *domain.Flashcard) string {
	if f.Question.IsMultipleChoice() {
		return "MCQ"
	}
	return "Open"
}

func formatTags(tags []domain.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// renderFlashcards lays out cards as a table numbered from one, the
// numbering index-based commands use. Answers are not shown.
func renderFlashcards(cards []*domain.Flashcard) (string, error) {
	if len(cards) == 0 {
		return MessageNoFlashcards, nil
	}

	data := pterm.TableData{{"#", "Question", "Type", "Tags", "Difficulty"}}
	for i, f := range cards {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			f.Question.Text,
			questionKind(f),
			formatTags(f.Tags),
			string(f.Difficulty),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
