package pdfdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPDF is returned when the provided data cannot be parsed as
	// a PDF document.
	ErrInvalidPDF = errors.New("invalid or corrupted PDF document")

	// ErrEmptyDocument is returned when the provided data is empty.
	ErrEmptyDocument = errors.New("document is empty")
)

// DocumentError wraps errors with context about which document operation failed.
type DocumentError struct {
	// Op is the operation that failed (e.g., "Open", "Read").
	Op string

	// Path is the source file path, if the document came from a file.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("pdfdoc: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("pdfdoc: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *DocumentError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
