package parser

import "fmt"

// ParseError reports input that does not form a valid command.
// Its message is shown to the user verbatim.
type ParseError struct {
	Message string
	Err     error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError with the given user message.
func NewParseError(message string, err error) *ParseError {
	return &ParseError{Message: message, Err: err}
}

// fromFieldError turns a field validation error into a ParseError carrying
// the field's constraint message.
func fromFieldError(err error) *ParseError {
	return &ParseError{Message: err.Error(), Err: err}
}

// invalidFormat is the error for input that does not match usage.
func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: fmt.Sprintf(messageInvalidCommandFormat, usage)}
}
