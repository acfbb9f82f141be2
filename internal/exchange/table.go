package exchange

import (
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/platform/jsonfile"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet columns, in order. The first row is a header.
const (
	columnQuestion = iota
	columnAnswer
	columnChoices
	columnTags
	columnDifficulty
)

const choiceSeparator = "|"

func readJSON(path string) ([]*domain.Flashcard, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open JSON file: %w", err)
	}
	cards, rowErrs, err := jsonfile.DecodeFlashcards(data)
	if err != nil {
		return nil, nil, err
	}
	// Exported files carry the IDs of live cards.
	for _, f := range cards {
		f.ID = uuid.New()
	}
	return cards, rowErrs, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	return rows, nil
}

// readXLSXRows reads the first sheet of the workbook.
func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func (e *Exchange) readTable(path string, read func(string) ([][]string, error)) ([]*domain.Flashcard, []error, error) {
	rows, err := read(path)
	if err != nil {
		return nil, nil, err
	}

	var (
		cards   []*domain.Flashcard
		rowErrs []error
	)
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue
		}
		f, err := e.parseRow(row)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		cards = append(cards, f)
	}
	return cards, rowErrs, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cell returns the column with markup removed and entities decoded.
func (e *Exchange) cell(row []string, column int) string {
	if column >= len(row) {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(e.sanitizer.Sanitize(row[column])))
}

func (e *Exchange) parseRow(row []string) (*domain.Flashcard, error) {
	var choices []domain.Choice
	for _, raw := range strings.Split(e.cell(row, columnChoices), choiceSeparator) {
		if raw = strings.TrimSpace(raw); raw == "" {
			continue
		}
		c, err := domain.NewChoice(raw)
		if err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}

	var (
		question domain.Question
		err      error
	)
	if len(choices) > 0 {
		question, err = domain.NewMultipleChoiceQuestion(e.cell(row, columnQuestion), choices)
	} else {
		question, err = domain.NewOpenEndedQuestion(e.cell(row, columnQuestion))
	}
	if err != nil {
		return nil, err
	}

	answer, err := domain.NewAnswer(e.cell(row, columnAnswer))
	if err != nil {
		return nil, err
	}

	var tags []domain.Tag
	for _, raw := range strings.Fields(e.cell(row, columnTags)) {
		t, err := domain.NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	difficulty := domain.DifficultyUnspecified
	if raw := e.cell(row, columnDifficulty); raw != "" {
		if difficulty, err = domain.ParseDifficulty(raw); err != nil {
			return nil, err
		}
	}

	return domain.NewFlashcard(question, answer, tags, difficulty)
}
