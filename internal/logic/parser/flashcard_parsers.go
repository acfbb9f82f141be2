package parser

import (
	"strings"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/logic/commands"
)

// flashcardFields are the validated values shared by add, addmcq and edit.
type flashcardFields struct {
	question   string
	answer     domain.Answer
	choices    []domain.Choice
	tags       []domain.Tag
	difficulty domain.Difficulty
}

// parseFlashcardFields validates the fields present in m in the order
// question, answer, choices, tags, difficulty and reports the first failure.
func parseFlashcardFields(m ArgumentMultimap) (flashcardFields, error) {
	var (
		f   flashcardFields
		err error
	)
	if len(m.AllValues(PrefixQuestion)) > 1 {
		return f, NewParseError(commands.MessageTooManyQuestions, nil)
	}
	if err := validateRequest(newFlashcardRequest(m)); err != nil {
		return f, err
	}
	if v, ok := m.Value(PrefixQuestion); ok {
		if f.question, err = ParseQuestionText(v); err != nil {
			return f, err
		}
	}
	if v, ok := m.Value(PrefixAnswer); ok {
		if f.answer, err = ParseAnswer(v); err != nil {
			return f, err
		}
	}
	if m.Has(PrefixChoice) {
		if f.choices, err = ParseChoices(m.AllValues(PrefixChoice)); err != nil {
			return f, err
		}
	}
	if m.Has(PrefixTag) {
		if f.tags, err = ParseTags(m.AllValues(PrefixTag)); err != nil {
			return f, err
		}
	}
	if f.difficulty, err = parseOptionalDifficulty(m); err != nil {
		return f, err
	}
	return f, nil
}

// AddOpenEndedQuestionCommandParser parses the arguments of add.
type AddOpenEndedQuestionCommandParser struct{}

// Parse implements the add syntax: q/QUESTION a/ANSWER [t/TAG]... [d/DIFFICULTY]
func (AddOpenEndedQuestionCommandParser) Parse(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixQuestion, PrefixAnswer, PrefixTag, PrefixDifficulty)
	if !m.HasAll(PrefixQuestion, PrefixAnswer) || m.Preamble() != "" {
		return nil, invalidFormat(commands.UsageAdd)
	}

	fields, err := parseFlashcardFields(m)
	if err != nil {
		return nil, err
	}

	question, err := domain.NewOpenEndedQuestion(fields.question)
	if err != nil {
		return nil, fromFieldError(err)
	}
	f, err := domain.NewFlashcard(question, fields.answer, fields.tags, fields.difficulty)
	if err != nil {
		return nil, fromFieldError(err)
	}
	return commands.NewAddOpenEndedQuestionCommand(f), nil
}

// AddMultipleChoiceQuestionCommandParser parses the arguments of addmcq.
type AddMultipleChoiceQuestionCommandParser struct{}

// Parse implements the addmcq syntax:
// q/QUESTION a/ANSWER c/CHOICE... [t/TAG]... [d/DIFFICULTY]
func (AddMultipleChoiceQuestionCommandParser) Parse(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixQuestion, PrefixAnswer, PrefixChoice, PrefixTag, PrefixDifficulty)
	if !m.HasAll(PrefixQuestion, PrefixAnswer, PrefixChoice) || m.Preamble() != "" {
		return nil, invalidFormat(commands.UsageAddMCQ)
	}

	fields, err := parseFlashcardFields(m)
	if err != nil {
		return nil, err
	}

	question, err := domain.NewMultipleChoiceQuestion(fields.question, fields.choices)
	if err != nil {
		return nil, fromFieldError(err)
	}
	f, err := domain.NewFlashcard(question, fields.answer, fields.tags, fields.difficulty)
	if err != nil {
		return nil, fromFieldError(err)
	}
	return commands.NewAddMultipleChoiceQuestionCommand(f), nil
}

// EditCommandParser parses the arguments of edit.
type EditCommandParser struct{}

// Parse implements the edit syntax:
// INDEX [q/QUESTION] [a/ANSWER] [c/CHOICE]... [t/TAG]... [d/DIFFICULTY]
func (EditCommandParser) Parse(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixQuestion, PrefixAnswer, PrefixChoice, PrefixTag, PrefixDifficulty)

	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.UsageEdit)
	}

	var d commands.EditFlashcardDescriptor
	if len(m.AllValues(PrefixQuestion)) > 1 {
		return nil, NewParseError(commands.MessageTooManyQuestions, nil)
	}
	tags := m.AllValues(PrefixTag)
	clearTags := len(tags) == 1 && strings.TrimSpace(tags[0]) == ""
	req := newFlashcardRequest(m)
	if clearTags {
		req.Tags = nil
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if v, ok := m.Value(PrefixQuestion); ok {
		q, err := ParseQuestionText(v)
		if err != nil {
			return nil, err
		}
		d.Question = &q
	}
	if v, ok := m.Value(PrefixAnswer); ok {
		a, err := ParseAnswer(v)
		if err != nil {
			return nil, err
		}
		d.Answer = &a
	}
	if m.Has(PrefixChoice) {
		if d.Choices, err = ParseChoices(m.AllValues(PrefixChoice)); err != nil {
			return nil, err
		}
	}
	if len(tags) > 0 {
		d.TagsEdited = true
		if !clearTags {
			if d.Tags, err = ParseTags(tags); err != nil {
				return nil, err
			}
		}
	}
	if v, ok := m.Value(PrefixDifficulty); ok {
		diff, err := ParseDifficulty(v)
		if err != nil {
			return nil, err
		}
		d.Difficulty = &diff
	}

	if !d.IsAnyFieldEdited() {
		return nil, NewParseError(commands.MessageEditNotEdited, nil)
	}
	return commands.NewEditCommand(index, d), nil
}
