package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isValidText reports whether s is non-empty and does not start with whitespace.
func isValidText(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return !unicode.IsSpace(r)
}

// Answer is the expected response to a flashcard question.
type Answer string

// NewAnswer validates s as answer text.
func NewAnswer(s string) (Answer, error) {
	if !isValidText(s) {
		return "", ErrInvalidAnswer
	}
	return Answer(s), nil
}

// Matches reports whether attempt is the same answer, ignoring case and
// surrounding whitespace.
func (a Answer) Matches(attempt string) bool {
	return strings.EqualFold(strings.TrimSpace(string(a)), strings.TrimSpace(attempt))
}

// Choice is one option of a multiple-choice question.
type Choice string

// NewChoice validates s as choice text.
func NewChoice(s string) (Choice, error) {
	if !isValidText(s) {
		return "", ErrInvalidChoice
	}
	return Choice(s), nil
}

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag labels a flashcard for grouping and filtering.
type Tag string

// NewTag validates s as a tag name.
func NewTag(s string) (Tag, error) {
	if !tagPattern.MatchString(s) {
		return "", ErrInvalidTag
	}
	return Tag(s), nil
}

// String renders the tag the way lists display it.
func (t Tag) String() string {
	return "[" + string(t) + "]"
}

// Difficulty is the user's own rating of a flashcard.
type Difficulty string

// Possible difficulty values
const (
	DifficultyLow         Difficulty = "LOW"
	DifficultyMedium      Difficulty = "MEDIUM"
	DifficultyHigh        Difficulty = "HIGH"
	DifficultyUnspecified Difficulty = "UNSPECIFIED"
)

// ParseDifficulty accepts LOW, MEDIUM or HIGH in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToUpper(strings.TrimSpace(s))); d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return d, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// Valid reports whether d is one of the known values, UNSPECIFIED included.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh, DifficultyUnspecified:
		return true
	}
	return false
}
