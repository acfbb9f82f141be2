// Package cli is the interactive shell. It reads one command per line, runs
// it through logic.Logic and renders the outcome with pterm.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/quickcache/internal/logic"
	"github.com/phrazzld/quickcache/internal/logic/commands"
	"github.com/phrazzld/quickcache/internal/logic/parser"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/pterm/pterm"
)

// Shell messages.
const (
	MessageNoPreviousCommand = "There is no previous command to repeat"
	MessageInternalError     = "Something went wrong, see the log for details"
	MessageLineTooLong       = "Input is longer than %d bytes and was ignored"
)

const (
	prompt     = "quickcache> "
	repeatLast = "!!"

	// MaxLineLength bounds one line of input.
	MaxLineLength = 1 << 20
)

// Shell runs commands typed by the user.
type Shell struct {
	logic   logic.Logic
	reader  *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
}

// NewShell creates a Shell reading from in and writing to out.
func NewShell(l logic.Logic, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.Default()
	}
	return &Shell{
		logic:   l,
		reader:  bufio.NewReader(in),
		out:     out,
		logger:  log.With(slog.String("component", "shell")),
	}
}

// Run reads and executes commands until the exit command, the end of the
// input or the cancellation of ctx. Command failures are shown and the
// session goes on.
func (s *Shell) Run(ctx context.Context) error {
	s.printWelcome()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, prompt)
		line, readErr := s.reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		eof := readErr != nil
		if eof && line == "" {
			fmt.Fprintln(s.out)
			return nil
		}

		exit := s.handleLine(ctx, strings.TrimRight(line, "\r\n"))
		if exit || eof {
			return nil
		}
	}
}

// handleLine runs one line of input and reports whether the session ends.
func (s *Shell) handleLine(ctx context.Context, line string) bool {
	if len(line) > MaxLineLength {
		s.printError(parser.NewParseError(fmt.Sprintf(MessageLineTooLong, MaxLineLength), nil))
		return false
	}
	if strings.TrimSpace(line) == "" {
		return false
	}

	exit, err := s.Execute(ctx, line)
	if err != nil && !IsUserError(err) {
		logger.FromContextOrDefault(ctx, s.logger).Error("command failed",
			slog.String("input", line),
			slog.String("error", err.Error()))
	}
	return exit
}

// Execute runs one line and renders its outcome. "!!" repeats the previous
// command. It reports whether the session should end; errors are returned
// after they have been shown.
func (s *Shell) Execute(ctx context.Context, line string) (bool, error) {
	if strings.TrimSpace(line) == repeatLast {
		last, ok := s.logic.History().Last()
		if !ok {
			err := parser.NewParseError(MessageNoPreviousCommand, nil)
			s.printError(err)
			return false, err
		}
		fmt.Fprintln(s.out, last)
		line = last
	}

	result, err := s.logic.Execute(ctx, line)
	if err != nil {
		s.printError(err)
		return false, err
	}

	s.render(result)
	return result.Exit, nil
}

// IsUserError reports whether err is a parse or command error, the kinds
// whose message is meant for the user.
func IsUserError(err error) bool {
	var parseErr *parser.ParseError
	var cmdErr *commands.CommandError
	return errors.As(err, &parseErr) || errors.As(err, &cmdErr)
}

func (s *Shell) printWelcome() {
	fmt.Fprintln(s.out, pterm.DefaultHeader.Sprint("QuickCache"))
	fmt.Fprintln(s.out, pterm.Info.Sprintf("%d flashcards loaded from %s. Type %q for the command list.",
		s.logic.QuickCache().Len(), s.logic.QuickCacheFilePath(), commands.WordHelp))
}

func (s *Shell) printError(err error) {
	msg := err.Error()
	if !IsUserError(err) {
		msg = MessageInternalError
	}
	fmt.Fprintln(s.out, pterm.Error.Sprint(msg))
}

func (s *Shell) render(result commands.CommandResult) {
	if result.ShowHelp {
		fmt.Fprintln(s.out, pterm.DefaultSection.Sprint("Help"))
	}
	fmt.Fprintln(s.out, result.Feedback)

	if result.ShowList {
		table, err := renderFlashcards(s.logic.FilteredFlashcardList())
		if err != nil {
			s.logger.Error("failed to render flashcards", slog.String("error", err.Error()))
			return
		}
		fmt.Fprintln(s.out, table)
	}
}
