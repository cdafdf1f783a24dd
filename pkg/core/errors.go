package core

import "fmt"

// ValidationError reports an invalid note field value. It is always
// raised before any disk mutation and never wraps a lower-level cause.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// DuplicateTitleError reports that a note with the given title already
// exists in the vault. Raised before any disk mutation.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("a note with title '%s' already exists", e.Title)
}

// NotFoundError reports that a referenced note is absent from the
// index. Ref carries the id or title that was looked up, for display.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note '%s' not found", e.Ref)
}

// StorageError reports an unexpected filesystem or malformed-data
// condition on the vault's own storage. It always wraps the underlying
// cause for diagnostics.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the failing operation for context.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// OutputDirError reports that export's output directory could not be
// created. It is distinct from StorageError because the path is
// supplied by the caller, not part of the vault's own storage.
type OutputDirError struct {
	Path string
	Err  error
}

func (e *OutputDirError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Path, e.Err)
}

func (e *OutputDirError) Unwrap() error {
	return e.Err
}
