package resume

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by reads of a single candidate or file that does not exist.
// Deletes and shortlist additions never return it.
var ErrNotFound = errors.New("not found")

// ValidationError indicates a caller-supplied input is missing or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ExtractionError indicates the uploaded document could not be turned into text.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// StorageError wraps failures of the candidate store or the file store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
