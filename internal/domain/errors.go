// Package domain defines the core business entities and errors.
package domain

import "errors"

// Field constraint errors. Their messages are shown to the user verbatim when
// a command carries an invalid value.
var (
	// ErrInvalidQuestion is returned when question text is blank or starts with whitespace.
	ErrInvalidQuestion = errors.New("Questions can take any values, and it should not be blank")

	// ErrInvalidAnswer is returned when answer text is blank or starts with whitespace.
	ErrInvalidAnswer = errors.New("Answers can take any values, and it should not be blank")

	// ErrInvalidChoice is returned when a multiple-choice option is blank or starts with whitespace.
	ErrInvalidChoice = errors.New("Choices can take any values, and it should not be blank")

	// ErrInvalidTag is returned when a tag name is not alphanumeric.
	ErrInvalidTag = errors.New("Tags names should be alphanumeric")

	// ErrInvalidDifficulty is returned for an unknown difficulty name.
	ErrInvalidDifficulty = errors.New("Difficulty should only be LOW, MEDIUM or HIGH")

	// ErrAnswerNotInChoices is returned when a multiple-choice answer matches none of the choices.
	ErrAnswerNotInChoices = errors.New("The answer must be one of the choices")

	// ErrNoChoices is returned when a multiple-choice question has no choices.
	ErrNoChoices = errors.New("A multiple choice question needs at least one choice")

	// ErrInvalidIndex is returned for indexes that are not positive integers.
	ErrInvalidIndex = errors.New("Index is not a non-zero unsigned integer.")

	// ErrInvalidStatistics is returned when statistics counters are negative
	// or record more correct answers than tests.
	ErrInvalidStatistics = errors.New("Statistics counters are inconsistent")
)

// QuickCache errors.
var (
	// ErrDuplicateFlashcard is returned when an operation would store two
	// flashcards with the same question and answer.
	ErrDuplicateFlashcard = errors.New("This flashcard already exists in QuickCache")

	// ErrFlashcardNotFound is returned when the target of an update or removal is absent.
	ErrFlashcardNotFound = errors.New("flashcard not found")
)
