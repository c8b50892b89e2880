package buildgen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for generated construction code.
var (
	// ErrMissingField is returned (wrapped) by generated Build methods when
	// a required field was never set on the builder.
	ErrMissingField = errors.New("buildgen: missing required field")
)

// MissingFieldError reports the first required field, in declaration order,
// that was absent when a generated Build method ran. It is a normal result
// value: callers are expected to handle it, typically by setting the field
// and building again.
type MissingFieldError struct {
	label string // declaration name, e.g. "Agent"
	field string // field name as declared, e.g. "public_key"
}

// Error returns the error string.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("buildgen: %s: missing required field %q", e.label, e.field)
}

// Is reports whether the target error matches MissingFieldError.
// This allows errors.Is(err, ErrMissingField) to return true.
func (e *MissingFieldError) Is(err error) bool {
	return err == ErrMissingField
}

// Label returns the declaration name the builder belongs to.
func (e *MissingFieldError) Label() string {
	return e.label
}

// FieldName returns the name of the missing field.
func (e *MissingFieldError) FieldName() string {
	return e.field
}

// NewMissingFieldError returns a new MissingFieldError for the given
// declaration and field. It is called by generated code.
func NewMissingFieldError(label, field string) *MissingFieldError {
	return &MissingFieldError{label: label, field: field}
}

// IsMissingField returns true if the error is a MissingFieldError.
func IsMissingField(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingFieldError
	return errors.As(err, &e) || errors.Is(err, ErrMissingField)
}
