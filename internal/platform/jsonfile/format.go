package jsonfile

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/quickcache/internal/domain"
)

type jsonQuickCache struct {
	Flashcards []jsonFlashcard `json:"flashcards"`
}

type jsonFlashcard struct {
	ID         string            `json:"id,omitempty"`
	Question   string            `json:"question"`
	Answer     string            `json:"answer"`
	Choices    []domain.Choice   `json:"choices,omitempty"`
	Tags       []domain.Tag      `json:"tags,omitempty"`
	Difficulty domain.Difficulty `json:"difficulty,omitempty"`
	Statistics domain.Statistics `json:"statistics"`
}

func newJSONFlashcard(f *domain.Flashcard) jsonFlashcard {
	j := jsonFlashcard{
		Question:   f.Question.Text,
		Answer:     string(f.Answer),
		Choices:    f.Question.Choices,
		Tags:       f.Tags,
		Difficulty: f.Difficulty,
		Statistics: f.Statistics,
	}
	if f.ID != uuid.Nil {
		j.ID = f.ID.String()
	}
	return j
}

// toDomain validates the card. A missing ID gets a fresh one and a missing
// difficulty becomes UNSPECIFIED.
func (j jsonFlashcard) toDomain() (*domain.Flashcard, error) {
	id := uuid.New()
	if j.ID != "" {
		parsed, err := uuid.Parse(j.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", j.ID, err)
		}
		id = parsed
	}

	difficulty := j.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyUnspecified
	}

	choices := j.Choices
	if len(choices) == 0 {
		choices = nil
	}

	f := &domain.Flashcard{
		ID:         id,
		Question:   domain.Question{Text: j.Question, Choices: choices},
		Answer:     domain.Answer(j.Answer),
		Tags:       domain.NormalizeTags(j.Tags),
		Difficulty: difficulty,
		Statistics: j.Statistics,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// EncodeFlashcards renders cards as an indented {"flashcards": [...]} document.
func EncodeFlashcards(cards []*domain.Flashcard) ([]byte, error) {
	doc := jsonQuickCache{Flashcards: make([]jsonFlashcard, 0, len(cards))}
	for _, f := range cards {
		doc.Flashcards = append(doc.Flashcards, newJSONFlashcard(f))
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode flashcards: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeFlashcards parses a document written by EncodeFlashcards.
// Cards that fail validation are reported in rowErrs, numbered from one;
// err is set only when the document itself is malformed.
func DecodeFlashcards(data []byte) (cards []*domain.Flashcard, rowErrs []error, err error) {
	var doc jsonQuickCache
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("malformed flashcard document: %w", err)
	}

	cards = make([]*domain.Flashcard, 0, len(doc.Flashcards))
	for i, j := range doc.Flashcards {
		f, err := j.toDomain()
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("flashcard %d: %w", i+1, err))
			continue
		}
		cards = append(cards, f)
	}
	return cards, rowErrs, nil
}
