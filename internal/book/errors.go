package book

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Sentinel kinds. Both concrete error types below match them with errors.Is,
// so callers can branch on the kind without a type assertion.
var (
	ErrValidation = errors.New(config.ErrKindValidation)
	ErrNotFound   = errors.New(config.ErrKindNotFound)
)

// ValidationError reports malformed Name, Phone or Birthday input.
type ValidationError struct {
	// Field is one of config.FieldName, config.FieldPhone, config.FieldBirthday.
	Field string
	// Value is the rejected raw input.
	Value string
	// Reason is a human-readable explanation.
	Reason string
}

// Error returns the human-readable reason.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a reference to a contact or phone that does not exist.
type NotFoundError struct {
	// Kind is config.EntityContact or config.EntityPhone.
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(config.FormatNotFound, e.Kind, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
