package commands

import (
	"context"
	"fmt"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/model"
)

// Open and test command messages.
const (
	MessageOpenSuccess        = "Opened flashcard %s:\n%s"
	MessageTestCorrect        = "Answer is correct!"
	MessageTestIncorrect      = "Answer is incorrect! The correct answer is: %s"
	MessageTestNeedsOption    = "Multiple choice questions must be tested with o/OPTION"
	MessageTestNeedsAnswer    = "Open ended questions must be tested with a/ANSWER"
	MessageTestInvalidOption  = "The option provided is invalid"
	MessageClearStatsSuccess  = "Cleared statistics of flashcard: %s"
	MessageStatsFormat        = "Statistics of %s:\nTimes tested: %d\nTimes tested correctly: %d\nTimes tested wrongly: %d\nCorrect rate: %.1f%%"
	statsTargetDisplayed      = "all displayed flashcards"
	statsTargetTaggedTemplate = "flashcards with tags %s"
)

// OpenCommand shows the question of a flashcard without its answer.
type OpenCommand struct {
	Index domain.Index
}

// NewOpenCommand creates the command.
func NewOpenCommand(index domain.Index) *OpenCommand {
	return &OpenCommand{Index: index}
}

// Execute implements Command.Execute
func (c *OpenCommand) Execute(_ context.Context, m model.Model) (CommandResult, error) {
	target, err := flashcardAt(m, c.Index)
	if err != nil {
		return CommandResult{}, err
	}
	return NewCommandResult(fmt.Sprintf(MessageOpenSuccess, c.Index, target.Question)), nil
}

// TestCommand checks an answer against a flashcard and records the attempt.
// Exactly one of Answer (open-ended) or Option (multiple-choice, one-based)
// is set.
type TestCommand struct {
	Index  domain.Index
	Answer string
	Option int
}

// NewTestWithAnswerCommand creates a test of an open-ended flashcard.
func NewTestWithAnswerCommand(index domain.Index, answer string) *TestCommand {
	return &TestCommand{Index: index, Answer: answer}
}

// NewTestWithOptionCommand creates a test of a multiple-choice flashcard.
func NewTestWithOptionCommand(index domain.Index, option int) *TestCommand {
	return &TestCommand{Index: index, Option: option}
}

// Execute implements Command.Execute
func (c *TestCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	target, err := flashcardAt(m, c.Index)
	if err != nil {
		return CommandResult{}, err
	}

	var correct bool
	if target.Question.IsMultipleChoice() {
		if c.Option == 0 {
			return CommandResult{}, NewCommandError(MessageTestNeedsOption, nil)
		}
		choice, ok := target.Question.Choice(c.Option)
		if !ok {
			return CommandResult{}, NewCommandError(MessageTestInvalidOption, nil)
		}
		correct = domain.Answer(choice) == target.Answer
	} else {
		if c.Option != 0 {
			return CommandResult{}, NewCommandError(MessageTestNeedsAnswer, nil)
		}
		correct = target.Answer.Matches(c.Answer)
	}

	edited := target.Clone()
	edited.Statistics = target.Statistics.Record(correct)
	if err := m.SetFlashcard(ctx, target, edited); err != nil {
		return CommandResult{}, fromModelError(err)
	}

	feedback := MessageTestCorrect
	if !correct {
		feedback = fmt.Sprintf(MessageTestIncorrect, target.Answer)
	}
	return NewCommandResult(feedback), nil
}

// StatsCommand shows statistics of one flashcard, of the tagged flashcards,
// or of the whole displayed list when neither Index nor Tags is set.
type StatsCommand struct {
	Index *domain.Index
	Tags  []domain.Tag
}

// NewStatsCommand creates the command for one flashcard.
func NewStatsCommand(index domain.Index) *StatsCommand {
	return &StatsCommand{Index: &index}
}

// NewStatsByTagsCommand creates the command for every flashcard carrying tags.
func NewStatsByTagsCommand(tags []domain.Tag) *StatsCommand {
	return &StatsCommand{Tags: domain.NormalizeTags(tags)}
}

// Execute implements Command.Execute
func (c *StatsCommand) Execute(_ context.Context, m model.Model) (CommandResult, error) {
	var (
		stats  domain.Statistics
		target string
	)

	switch {
	case c.Index != nil:
		f, err := flashcardAt(m, *c.Index)
		if err != nil {
			return CommandResult{}, err
		}
		stats, target = f.Statistics, fmt.Sprintf("%q", f.Question.Text)
	case len(c.Tags) > 0:
		for _, f := range m.QuickCache().Flashcards() {
			if f.HasTags(c.Tags...) {
				stats = stats.Add(f.Statistics)
			}
		}
		target = fmt.Sprintf(statsTargetTaggedTemplate, formatTags(c.Tags))
	default:
		for _, f := range m.FilteredFlashcardList() {
			stats = stats.Add(f.Statistics)
		}
		target = statsTargetDisplayed
	}

	return NewCommandResult(fmt.Sprintf(MessageStatsFormat, target,
		stats.TimesTested, stats.TimesTestedCorrect, stats.TimesTestedWrong(), stats.CorrectPercentage())), nil
}

// ClearStatsCommand resets the statistics of a flashcard.
type ClearStatsCommand struct {
	Index domain.Index
}

// NewClearStatsCommand creates the command.
func NewClearStatsCommand(index domain.Index) *ClearStatsCommand {
	return &ClearStatsCommand{Index: index}
}

// Execute implements Command.Execute
func (c *ClearStatsCommand) Execute(ctx context.Context, m model.Model) (CommandResult, error) {
	target, err := flashcardAt(m, c.Index)
	if err != nil {
		return CommandResult{}, err
	}
	edited := target.Clone()
	edited.Statistics = domain.Statistics{}
	if err := m.SetFlashcard(ctx, target, edited); err != nil {
		return CommandResult{}, fromModelError(err)
	}
	return NewCommandResult(fmt.Sprintf(MessageClearStatsSuccess, edited)), nil
}
