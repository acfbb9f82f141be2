// Package parser turns user input into commands.
//
// Input has the form "WORD ARGUMENTS". Arguments are introduced by prefixes
// such as q/ and a/ (see Tokenize); each command word has its own parser.
// Malformed input is reported as a *ParseError whose message is meant for
// the user.
package parser

import (
	"regexp"

	"github.com/phrazzld/quickcache/internal/logic/commands"
)

// Parser parses the arguments of one command word.
type Parser interface {
	Parse(args string) (commands.Command, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(args string) (commands.Command, error)

// Parse implements Parser.
func (f ParserFunc) Parse(args string) (commands.Command, error) {
	return f(args)
}

var basicCommandFormat = regexp.MustCompile(`(?s)^\s*(\S+)(.*)$`)

// QuickCacheParser dispatches input to the parser of its command word.
type QuickCacheParser struct {
	parsers map[string]Parser
}

// NewQuickCacheParser creates a parser. The exchange backs import and export,
// and history backs the history command; either may be nil.
func NewQuickCacheParser(exchange commands.Exchange, history commands.History) *QuickCacheParser {
	fixed := func(cmd commands.Command) Parser {
		return ParserFunc(func(string) (commands.Command, error) { return cmd, nil })
	}

	return &QuickCacheParser{
		parsers: map[string]Parser{
			commands.WordAdd:        AddOpenEndedQuestionCommandParser{},
			commands.WordAddMCQ:     AddMultipleChoiceQuestionCommandParser{},
			commands.WordEdit:       EditCommandParser{},
			commands.WordDelete:     DeleteCommandParser{},
			commands.WordFind:       FindCommandParser{},
			commands.WordList:       fixed(commands.ListCommand{}),
			commands.WordOpen:       OpenCommandParser,
			commands.WordTest:       TestCommandParser{},
			commands.WordStats:      StatsCommandParser{},
			commands.WordClearStats: ClearStatsCommandParser,
			commands.WordClear:      fixed(commands.ClearCommand{}),
			commands.WordExport:     ExportCommandParser{Exchange: exchange},
			commands.WordImport:     ImportCommandParser{Exchange: exchange},
			commands.WordHistory:    fixed(commands.NewHistoryCommand(history)),
			commands.WordHelp:       fixed(commands.HelpCommand{}),
			commands.WordExit:       fixed(commands.ExitCommand{}),
		},
	}
}

// ParseCommand parses one line of user input.
func (p *QuickCacheParser) ParseCommand(input string) (commands.Command, error) {
	match := basicCommandFormat.FindStringSubmatch(input)
	if match == nil {
		return nil, invalidFormat(commands.UsageHelp)
	}

	parser, ok := p.parsers[match[1]]
	if !ok {
		return nil, NewParseError(commands.MessageUnknownCommand, nil)
	}
	return parser.Parse(match[2])
}
