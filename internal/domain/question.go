package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Question is the prompt side of a flashcard. A question with choices is a
// multiple-choice question; without choices it is open-ended.
type Question struct {
	Text    string   `json:"text"`
	Choices []Choice `json:"choices,omitempty"`
}

// NewOpenEndedQuestion validates text and returns an open-ended question.
func NewOpenEndedQuestion(text string) (Question, error) {
	if !isValidText(text) {
		return Question{}, ErrInvalidQuestion
	}
	return Question{Text: text}, nil
}

// NewMultipleChoiceQuestion validates text and choices and returns a
// multiple-choice question. The choices keep their given order.
func NewMultipleChoiceQuestion(text string, choices []Choice) (Question, error) {
	q := Question{Text: text, Choices: slices.Clone(choices)}
	if len(choices) == 0 {
		if !isValidText(text) {
			return Question{}, ErrInvalidQuestion
		}
		return Question{}, ErrNoChoices
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// IsMultipleChoice reports whether the question offers choices.
func (q Question) IsMultipleChoice() bool {
	return len(q.Choices) > 0
}

// Validate checks the question text and every choice.
func (q Question) Validate() error {
	if !isValidText(q.Text) {
		return ErrInvalidQuestion
	}
	for _, c := range q.Choices {
		if !isValidText(string(c)) {
			return ErrInvalidChoice
		}
	}
	return nil
}

// HasChoice reports whether a is exactly one of the choices.
func (q Question) HasChoice(a Answer) bool {
	return slices.Contains(q.Choices, Choice(a))
}

// Choice returns the choice for a one-based option number.
func (q Question) Choice(option int) (Choice, bool) {
	if option < 1 || option > len(q.Choices) {
		return "", false
	}
	return q.Choices[option-1], true
}

// Equal compares text and choices.
func (q Question) Equal(other Question) bool {
	return q.Text == other.Text && slices.Equal(q.Choices, other.Choices)
}

// String renders the question with numbered choices.
func (q Question) String() string {
	if !q.IsMultipleChoice() {
		return q.Text
	}
	var b strings.Builder
	b.WriteString(q.Text)
	for i, c := range q.Choices {
		fmt.Fprintf(&b, "\n%d) %s", i+1, c)
	}
	return b.String()
}
