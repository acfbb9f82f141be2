package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when no data has been saved yet: the data file
	// does not exist, or the database holds no QuickCache.
	ErrNotFound = errors.New("data not found")

	// ErrDataConversion is returned when stored data exists but cannot be
	// converted into valid domain values (malformed JSON, a flashcard that
	// fails validation, duplicate flashcards).
	ErrDataConversion = errors.New("data conversion failed")

	// ErrDuplicate is returned when a database rejects a row that repeats
	// an existing flashcard.
	ErrDuplicate = errors.New("duplicate flashcard")

	// ErrInvalidEntity is returned when a database constraint rejects a row.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")
)

// IsNotFoundError checks if the error is a "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDataConversionError checks if the error means stored data is corrupt.
func IsDataConversionError(err error) bool {
	return errors.Is(err, ErrDataConversion)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The stored entity ("quickcache", "userprefs")
	Operation string // The operation that failed ("read", "save")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// Entity names used in StoreError.
const (
	EntityQuickCache = "quickcache"
	EntityUserPrefs  = "userprefs"
)
