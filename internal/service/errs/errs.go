package errs

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Error is a failure reported to the caller verbatim.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// InvalidInput reports a missing or malformed field, a failed range check or an id mismatch.
func InvalidInput(format string, args ...any) error {
	return &Error{kind: ErrInvalidInput, message: fmt.Sprintf(format, args...)}
}

// NotFound reports that no record has the requested id.
func NotFound(format string, args ...any) error {
	return &Error{kind: ErrNotFound, message: fmt.Sprintf(format, args...)}
}
