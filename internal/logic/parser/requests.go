package parser

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/quickcache/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// flashcardRequest holds the trimmed text of the flashcard fields of add,
// addmcq and edit. Nil fields were not given. Fields are declared in the order
// their errors are reported.
type flashcardRequest struct {
	Question   *string  `validate:"omitnil,min=1"`
	Answer     *string  `validate:"omitnil,min=1"`
	Choices    []string `validate:"omitempty,dive,min=1"`
	Tags       []string `validate:"omitempty,dive,alphanum"`
	Difficulty *string  `validate:"omitnil,oneof=low medium high"`
}

// exportRequest is the file name given to export, lower-cased.
type exportRequest struct {
	FileName string `validate:"min=6,endswith=.json,excludesall=/\\"`
}

// fieldErrors maps request fields to the constraint each one breaks.
var fieldErrors = map[string]error{
	"Question":   domain.ErrInvalidQuestion,
	"Answer":     domain.ErrInvalidAnswer,
	"Choices":    domain.ErrInvalidChoice,
	"Tags":       domain.ErrInvalidTag,
	"Difficulty": domain.ErrInvalidDifficulty,
}

func newFlashcardRequest(m ArgumentMultimap) flashcardRequest {
	var r flashcardRequest
	if v, ok := m.Value(PrefixQuestion); ok {
		r.Question = trimmed(v)
	}
	if v, ok := m.Value(PrefixAnswer); ok {
		r.Answer = trimmed(v)
	}
	for _, v := range m.AllValues(PrefixChoice) {
		r.Choices = append(r.Choices, strings.TrimSpace(v))
	}
	for _, v := range m.AllValues(PrefixTag) {
		r.Tags = append(r.Tags, strings.TrimSpace(v))
	}
	if v, ok := m.Value(PrefixDifficulty); ok {
		r.Difficulty = trimmed(strings.ToLower(v))
	}
	return r
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

// validateRequest checks r against its struct tags. The first failing field
// becomes a ParseError with that field's constraint message.
func validateRequest(r any) error {
	err := validate.Struct(r)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	field, _, _ := strings.Cut(fieldErrs[0].StructField(), "[")
	if cause, ok := fieldErrors[field]; ok {
		return fromFieldError(cause)
	}
	return NewParseError(fieldErrs[0].Error(), err)
}
