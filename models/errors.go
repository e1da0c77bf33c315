package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError rejects a change of a record. Field is empty for record-wide errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

func NewValidationErrorf(field, format string, args ...interface{}) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func AsValidationError(err error) (ValidationError, bool) {
	var vErr ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return ValidationError{}, false
}

var ErrNotFound = errors.New("record not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
