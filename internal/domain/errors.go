package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingFile         = errors.New("file is required")
	ErrTooManyFiles        = errors.New("too many files")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrStorageFailed       = errors.New("temporary file storage failed")
	ErrEmailNotConfigured  = errors.New("email transport is not configured")
	ErrAdminEmailMissing   = errors.New("admin email is not set")
)

// ValidationError carries every constraint an order violated.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Add records one violation.
func (e *ValidationError) Add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Messages) > 0
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
