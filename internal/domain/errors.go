package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested record was not found. A lookup
	// miss is a normal outcome for policy-number lookups, not a failure.
	ErrNotFound = errors.New("not found")
)

// FieldError is a validation failure tied to a single input field. It is
// raised before the input reaches any store.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a field-level validation failure.
func IsValidation(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}
