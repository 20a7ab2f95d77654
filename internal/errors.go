package internal

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when a prompt is submitted while a
// previous submission has not yet settled.
var ErrSubmissionInFlight = errors.New("a prompt submission is already in flight")

// CompletionError represents a failed completion call, including responses
// with no usable content
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion error: %v", e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// StoreError represents a failed chat store call
type StoreError struct {
	Op     string // "list", "get", "create", "update", "delete"
	ChatID string // empty for list and create
	Err    error
}

func (e *StoreError) Error() string {
	if e.ChatID == "" {
		return fmt.Sprintf("chat store error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("chat store error: %s %s: %v", e.Op, e.ChatID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
