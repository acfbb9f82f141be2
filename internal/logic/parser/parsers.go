package parser

import (
	"strings"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/logic/commands"
)

// DeleteCommandParser parses "INDEX" or "t/TAG...".
type DeleteCommandParser struct{}

// Parse implements the delete syntax.
func (DeleteCommandParser) Parse(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixTag)
	switch {
	case m.Preamble() != "" && !m.Has(PrefixTag):
		index, err := ParseIndex(m.Preamble())
		if err != nil {
			return nil, invalidFormat(commands.UsageDelete)
		}
		return commands.NewDeleteCommand(index), nil
	case m.Preamble() == "" && m.Has(PrefixTag):
		tags, err := ParseTags(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		return commands.NewDeleteByTagsCommand(tags), nil
	default:
		return nil, invalidFormat(commands.UsageDelete)
	}
}

// FindCommandParser parses "[q/KEYWORD]... [t/TAG]... [d/DIFFICULTY]".
type FindCommandParser struct{}

// Parse implements the find syntax. Each q/ value may hold several
// whitespace separated keywords.
func (FindCommandParser) Parse(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixQuestion, PrefixTag, PrefixDifficulty)
	if m.Preamble() != "" {
		return nil, invalidFormat(commands.UsageFind)
	}

	var filter domain.FlashcardFilter
	for _, v := range m.AllValues(PrefixQuestion) {
		filter.Keywords = append(filter.Keywords, strings.Fields(v)...)
	}
	if m.Has(PrefixTag) {
		tags, err := ParseTags(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		filter.Tags = tags
	}
	if v, ok := m.Value(PrefixDifficulty); ok {
		d, err := ParseDifficulty(v)
		if err != nil {
			return nil, err
		}
		filter.Difficulty = d
	}

	if filter.IsEmpty() {
		return nil, invalidFormat(commands.UsageFind)
	}
	return commands.NewFindCommand(filter), nil
}

// indexCommandParser parses commands whose only argument is an index.
type indexCommandParser struct {
	usage string
	build func(domain.Index) commands.Command
}

func (p indexCommandParser) Parse(args string) (commands.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(p.usage)
	}
	return p.build(index), nil
}

// OpenCommandParser parses "INDEX".
var OpenCommandParser = indexCommandParser{
	usage: commands.UsageOpen,
	build: func(i domain.Index) commands.Command { return commands.NewOpenCommand(i) },
}

// ClearStatsCommandParser parses "INDEX".
var ClearStatsCommandParser = indexCommandParser{
	usage: commands.UsageClearStats,
	build: func(i domain.Index) commands.Command { return commands.NewClearStatsCommand(i) },
}

// TestCommandParser parses "INDEX a/ANSWER" or "INDEX o/OPTION".
type TestCommandParser struct{}

// Parse implements the test syntax.
func (TestCommandParser) Parse(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixAnswer, PrefixOption)

	index, err := ParseIndex(m.Preamble())
	if err != nil || m.Has(PrefixAnswer) == m.Has(PrefixOption) {
		return nil, invalidFormat(commands.UsageTest)
	}

	if v, ok := m.Value(PrefixOption); ok {
		option, err := ParseOption(v)
		if err != nil {
			return nil, err
		}
		return commands.NewTestWithOptionCommand(index, option), nil
	}

	v, _ := m.Value(PrefixAnswer)
	answer, err := ParseAnswer(v)
	if err != nil {
		return nil, err
	}
	return commands.NewTestWithAnswerCommand(index, string(answer)), nil
}

// StatsCommandParser parses "", "INDEX" or "t/TAG...".
type StatsCommandParser struct{}

// Parse implements the stats syntax.
func (StatsCommandParser) Parse(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixTag)
	switch {
	case m.Preamble() == "" && !m.Has(PrefixTag):
		return &commands.StatsCommand{}, nil
	case m.Preamble() != "" && !m.Has(PrefixTag):
		index, err := ParseIndex(m.Preamble())
		if err != nil {
			return nil, invalidFormat(commands.UsageStats)
		}
		return commands.NewStatsCommand(index), nil
	case m.Preamble() == "":
		tags, err := ParseTags(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		return commands.NewStatsByTagsCommand(tags), nil
	default:
		return nil, invalidFormat(commands.UsageStats)
	}
}

// ExportCommandParser parses "FILE_NAME.json".
type ExportCommandParser struct {
	Exchange commands.Exchange
}

// Parse implements the export syntax.
func (p ExportCommandParser) Parse(args string) (commands.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(commands.UsageExport)
	}
	name, err := ParseExportFileName(args)
	if err != nil {
		return nil, err
	}
	return commands.NewExportCommand(name, p.Exchange), nil
}

// ImportCommandParser parses "FILE_NAME".
type ImportCommandParser struct {
	Exchange commands.Exchange
}

// Parse implements the import syntax.
func (p ImportCommandParser) Parse(args string) (commands.Command, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return nil, invalidFormat(commands.UsageImport)
	}
	return commands.NewImportCommand(name, p.Exchange), nil
}
