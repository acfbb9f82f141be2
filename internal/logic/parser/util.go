package parser

import (
	"strconv"
	"strings"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/logic/commands"
)

// Messages reported by the field parsers.
const (
	messageInvalidCommandFormat = commands.MessageInvalidCommandFormat
	MessageInvalidOption        = "Option is not a non-zero unsigned integer."
	MessageInvalidExportFile    = "File name should end with .json and contain no directories"
)

// parseNonZeroUnsigned accepts ASCII digits only, so signs are rejected.
func parseNonZeroUnsigned(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// ParseIndex parses a one-based index. Surrounding whitespace is ignored.
func ParseIndex(s string) (domain.Index, error) {
	n, err := parseNonZeroUnsigned(s)
	if err != nil {
		return domain.Index{}, NewParseError(domain.ErrInvalidIndex.Error(), domain.ErrInvalidIndex)
	}
	index, err := domain.IndexFromOneBased(n)
	if err != nil {
		return domain.Index{}, fromFieldError(err)
	}
	return index, nil
}

// ParseOption parses a one-based choice number.
func ParseOption(s string) (int, error) {
	n, err := parseNonZeroUnsigned(s)
	if err != nil {
		return 0, NewParseError(MessageInvalidOption, err)
	}
	return n, nil
}

// ParseQuestionText validates question text.
func ParseQuestionText(s string) (string, error) {
	q, err := domain.NewOpenEndedQuestion(strings.TrimSpace(s))
	if err != nil {
		return "", fromFieldError(err)
	}
	return q.Text, nil
}

// ParseAnswer validates answer text.
func ParseAnswer(s string) (domain.Answer, error) {
	a, err := domain.NewAnswer(strings.TrimSpace(s))
	if err != nil {
		return "", fromFieldError(err)
	}
	return a, nil
}

// ParseChoices validates every choice, keeping their order.
func ParseChoices(values []string) ([]domain.Choice, error) {
	choices := make([]domain.Choice, 0, len(values))
	for _, v := range values {
		c, err := domain.NewChoice(strings.TrimSpace(v))
		if err != nil {
			return nil, fromFieldError(err)
		}
		choices = append(choices, c)
	}
	return choices, nil
}

// ParseTags validates every tag and returns the sorted set.
func ParseTags(values []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(values))
	for _, v := range values {
		t, err := domain.NewTag(strings.TrimSpace(v))
		if err != nil {
			return nil, fromFieldError(err)
		}
		tags = append(tags, t)
	}
	return domain.NormalizeTags(tags), nil
}

// ParseDifficulty validates a difficulty name, ignoring case.
func ParseDifficulty(s string) (domain.Difficulty, error) {
	d, err := domain.ParseDifficulty(s)
	if err != nil {
		return "", fromFieldError(err)
	}
	return d, nil
}

// parseOptionalDifficulty returns UNSPECIFIED when d/ is absent.
func parseOptionalDifficulty(m ArgumentMultimap) (domain.Difficulty, error) {
	v, ok := m.Value(PrefixDifficulty)
	if !ok {
		return domain.DifficultyUnspecified, nil
	}
	return ParseDifficulty(v)
}

// ParseExportFileName accepts a bare file name ending in .json.
func ParseExportFileName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if err := validateRequest(exportRequest{FileName: strings.ToLower(name)}); err != nil {
		return "", NewParseError(MessageInvalidExportFile, err)
	}
	return name, nil
}
