// Package gen provides code generation for buildgen declarations.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a declaration definition error.
	ErrInvalidSchema = errors.New("buildgen: invalid declaration")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("buildgen: missing configuration")
	// ErrUnsupportedShape indicates a declaration shape the generator cannot process.
	ErrUnsupportedShape = errors.New("buildgen: unsupported declaration shape")
	// ErrMalformedDirective indicates a directive with missing or mistyped arguments.
	ErrMalformedDirective = errors.New("buildgen: malformed directive")
	// ErrUnrecognizedGeneric indicates a parameterized field type outside the recognized forms.
	ErrUnrecognizedGeneric = errors.New("buildgen: unrecognized generic type")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("buildgen: code generation failed")
)

// SchemaError represents a declaration definition error.
type SchemaError struct {
	Type    string // declaration name
	Field   string // field name, if applicable
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("buildgen: declaration error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("buildgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("buildgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// ShapeError represents a declaration whose shape the generator rejects,
// e.g. a variant-set declaration handed to the builder generator.
type ShapeError struct {
	Type    string // declaration name
	Shape   string // rejected shape, e.g. "variant set"
	Message string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString("buildgen: shape error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Shape != "" {
		b.WriteString(" (shape: ")
		b.WriteString(e.Shape)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}

// NewShapeError creates a new ShapeError.
func NewShapeError(typeName, shape, message string) *ShapeError {
	return &ShapeError{
		Type:    typeName,
		Shape:   shape,
		Message: message,
	}
}

// DirectiveError represents a recognized directive with missing or
// mistyped arguments.
type DirectiveError struct {
	Directive string // directive name, e.g. "builder_name"
	Type      string // declaration name
	Field     string // field name, if the directive is field-level
	Message   string
}

// Error implements the error interface.
func (e *DirectiveError) Error() string {
	var b strings.Builder
	b.WriteString("buildgen: directive error")
	if e.Directive != "" {
		fmt.Fprintf(&b, " for %q", e.Directive)
	}
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for DirectiveError.
func (e *DirectiveError) Is(target error) bool {
	return target == ErrMalformedDirective
}

// NewDirectiveError creates a new DirectiveError.
func NewDirectiveError(directive, typeName, fieldName, message string) *DirectiveError {
	return &DirectiveError{
		Directive: directive,
		Type:      typeName,
		Field:     fieldName,
		Message:   message,
	}
}

// GenericShapeError represents a parameterized field type outside the
// recognized forms. The only recognized parameterized shape is a sequence
// with a single concrete element type.
type GenericShapeError struct {
	Type    string // declaration name
	Field   string // field name
	Message string
}

// Error implements the error interface.
func (e *GenericShapeError) Error() string {
	var b strings.Builder
	b.WriteString("buildgen: generic shape error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for GenericShapeError.
func (e *GenericShapeError) Is(target error) bool {
	return target == ErrUnrecognizedGeneric
}

// NewGenericShapeError creates a new GenericShapeError.
func NewGenericShapeError(typeName, fieldName, message string) *GenericShapeError {
	return &GenericShapeError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "accessor", "builder", "validator", "convert", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("buildgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsShapeError reports whether the error is a ShapeError.
func IsShapeError(err error) bool {
	var shapeErr *ShapeError
	return errors.As(err, &shapeErr)
}

// IsDirectiveError reports whether the error is a DirectiveError.
func IsDirectiveError(err error) bool {
	var dirErr *DirectiveError
	return errors.As(err, &dirErr)
}

// IsGenericShapeError reports whether the error is a GenericShapeError.
func IsGenericShapeError(err error) bool {
	var genErr *GenericShapeError
	return errors.As(err, &genErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
