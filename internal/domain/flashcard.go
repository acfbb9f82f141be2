package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Flashcard is a question/answer study record, optionally multiple-choice.
//
// ID identifies the card inside storage backends only. Two flashcards are
// the same card when their question text and answer match (IsSameFlashcard);
// Equal compares every user-visible field.
type Flashcard struct {
	ID         uuid.UUID
	Question   Question
	Answer     Answer
	Tags       []Tag
	Difficulty Difficulty
	Statistics Statistics
}

// NewFlashcard creates a new Flashcard with a fresh ID and empty statistics.
// Tags are de-duplicated and sorted. An empty difficulty becomes UNSPECIFIED.
// Returns an error if validation fails.
func NewFlashcard(question Question, answer Answer, tags []Tag, difficulty Difficulty) (*Flashcard, error) {
	if difficulty == "" {
		difficulty = DifficultyUnspecified
	}

	f := &Flashcard{
		ID:         uuid.New(),
		Question:   question,
		Answer:     answer,
		Tags:       NormalizeTags(tags),
		Difficulty: difficulty,
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// NormalizeTags returns the sorted set of tags.
func NormalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

// Validate checks if the Flashcard has valid data.
// Returns the first field constraint that fails.
func (f *Flashcard) Validate() error {
	if err := f.Question.Validate(); err != nil {
		return err
	}

	if !isValidText(string(f.Answer)) {
		return ErrInvalidAnswer
	}

	if f.Question.IsMultipleChoice() && !f.Question.HasChoice(f.Answer) {
		return ErrAnswerNotInChoices
	}

	for _, t := range f.Tags {
		if !tagPattern.MatchString(string(t)) {
			return ErrInvalidTag
		}
	}

	if !f.Difficulty.Valid() {
		return ErrInvalidDifficulty
	}

	return f.Statistics.Validate()
}

// IsSameFlashcard reports whether other has the same question text and answer.
// This is the weaker notion of equality used to reject duplicates.
func (f *Flashcard) IsSameFlashcard(other *Flashcard) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.Question.Text == other.Question.Text && f.Answer == other.Answer
}

// Equal compares every field except ID.
func (f *Flashcard) Equal(other *Flashcard) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.Question.Equal(other.Question) &&
		f.Answer == other.Answer &&
		slices.Equal(f.Tags, other.Tags) &&
		f.Difficulty == other.Difficulty &&
		f.Statistics == other.Statistics
}

// HasTags reports whether the flashcard carries every one of tags.
func (f *Flashcard) HasTags(tags ...Tag) bool {
	for _, t := range tags {
		if !slices.Contains(f.Tags, t) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares nothing with f.
func (f *Flashcard) Clone() *Flashcard {
	c := *f
	c.Question.Choices = slices.Clone(f.Question.Choices)
	c.Tags = slices.Clone(f.Tags)
	return &c
}

// String renders every user-visible field on one line.
func (f *Flashcard) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s; Answer: %s", f.Question.Text, f.Answer)
	if f.Question.IsMultipleChoice() {
		choices := make([]string, len(f.Question.Choices))
		for i, c := range f.Question.Choices {
			choices[i] = string(c)
		}
		fmt.Fprintf(&b, "; Choices: %s", strings.Join(choices, ", "))
	}
	if len(f.Tags) > 0 {
		b.WriteString("; Tags: ")
		for _, t := range f.Tags {
			b.WriteString(t.String())
		}
	}
	fmt.Fprintf(&b, "; Difficulty: %s", f.Difficulty)
	return b.String()
}
