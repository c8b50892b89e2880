package gen

import (
	"github.com/dave/jennifer/jen"
)

// Converter emits wire-format conversion code for declarations annotated
// with the wire_type, convert and variant directives. The builder
// generator itself ignores those directives; a Converter set on the Config
// picks them up and contributes one extra file per annotated declaration.
type Converter interface {
	// GenConvert returns the conversion file for the given declaration,
	// or nil if the declaration carries no conversion directives.
	GenConvert(t *Type) (*jen.File, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(t *Type) (*jen.File, error)

// GenConvert implements the Converter interface.
func (fn ConverterFunc) GenConvert(t *Type) (*jen.File, error) {
	return fn(t)
}

// HasWireType indicates if the declaration names a wire-format
// counterpart type.
func (t Type) HasWireType() bool {
	return t.Directives.WireType != ""
}
