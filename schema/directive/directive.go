// Package directive declares the statically-enumerated annotations
// understood by the buildgen generators.
//
// Declaration-level directives for the builder generator:
//
//	directive.BuilderName("OrgBuilder") // override the companion type name
//	directive.Validator()               // emit the validating Build method
//
// Field-level directives for the builder generator:
//
//	directive.Getter()                  // emit a read accessor
//	directive.Optional()                // unset resolves to the zero value on Build
//
// The remaining directives (WireType, Convert and Variant) belong to the
// wire-format conversion generator's vocabulary. The builder generator
// ignores them, as it ignores any directive it does not recognize.
package directive

import (
	"github.com/syssam/buildgen/schema"
)

// Directive names, as they appear in serialized declaration annotations.
const (
	NameBuilderName = "builder_name"
	NameValidator   = "validator"
	NameGetter      = "getter"
	NameOptional    = "optional"
	NameWireType    = "wire_type"
	NameConvert     = "convert"
	NameVariant     = "variant"
)

// BuilderNameAnnotation overrides the name of the generated companion
// builder type. The name is used verbatim.
type BuilderNameAnnotation struct {
	TypeName string `json:"name,omitempty"`
}

// Name implements the schema.Annotation interface.
func (*BuilderNameAnnotation) Name() string {
	return NameBuilderName
}

// BuilderName returns an annotation naming the companion builder type.
func BuilderName(name string) *BuilderNameAnnotation {
	return &BuilderNameAnnotation{TypeName: name}
}

// ValidatorAnnotation requests the validating Build constructor for a
// declaration. Without it, only the accessors and the companion type with
// its setters are emitted.
type ValidatorAnnotation struct{}

// Name implements the schema.Annotation interface.
func (ValidatorAnnotation) Name() string {
	return NameValidator
}

// Validator returns an annotation requesting the validating constructor.
func Validator() ValidatorAnnotation {
	return ValidatorAnnotation{}
}

// GetterAnnotation requests a read accessor for a field.
type GetterAnnotation struct{}

// Name implements the schema.Annotation interface.
func (GetterAnnotation) Name() string {
	return NameGetter
}

// Getter returns an annotation requesting a read accessor.
func Getter() GetterAnnotation {
	return GetterAnnotation{}
}

// OptionalAnnotation marks a field whose absence resolves to the type's
// zero value at Build time instead of failing construction.
type OptionalAnnotation struct{}

// Name implements the schema.Annotation interface.
func (OptionalAnnotation) Name() string {
	return NameOptional
}

// Optional returns an annotation marking a field optional at Build time.
func Optional() OptionalAnnotation {
	return OptionalAnnotation{}
}

// Strategy names a per-field conversion behavior understood by the
// wire-format conversion generator.
type Strategy string

// The fixed conversion strategy vocabulary.
const (
	// StrategyText copies the wire value as text.
	StrategyText Strategy = "text"
	// StrategyClone clones the value as-is.
	StrategyClone Strategy = "clone"
	// StrategyConvert delegates to the nested type's own conversion.
	StrategyConvert Strategy = "convert"
	// StrategyMap converts each element of a sequence.
	StrategyMap Strategy = "map"
)

// WireTypeAnnotation names the external wire-format counterpart type of a
// declaration. Consumed by the conversion generator only.
type WireTypeAnnotation struct {
	Type string `json:"type,omitempty"`
}

// Name implements the schema.Annotation interface.
func (*WireTypeAnnotation) Name() string {
	return NameWireType
}

// WireType returns an annotation naming the wire-format counterpart type.
func WireType(typ string) *WireTypeAnnotation {
	return &WireTypeAnnotation{Type: typ}
}

// ConvertAnnotation selects the conversion strategy for a field. Consumed
// by the conversion generator only.
type ConvertAnnotation struct {
	Strategy Strategy `json:"strategy,omitempty"`
}

// Name implements the schema.Annotation interface.
func (*ConvertAnnotation) Name() string {
	return NameConvert
}

// Convert returns an annotation selecting a conversion strategy.
func Convert(s Strategy) *ConvertAnnotation {
	return &ConvertAnnotation{Strategy: s}
}

// VariantAnnotation maps a declaration variant to its wire-format variant.
// Consumed by the conversion generator only.
type VariantAnnotation struct {
	Value string `json:"value,omitempty"`
}

// Name implements the schema.Annotation interface.
func (*VariantAnnotation) Name() string {
	return NameVariant
}

// Variant returns an annotation mapping a variant to its wire-format value.
func Variant(value string) *VariantAnnotation {
	return &VariantAnnotation{Value: value}
}

var (
	_ schema.Annotation = (*BuilderNameAnnotation)(nil)
	_ schema.Annotation = ValidatorAnnotation{}
	_ schema.Annotation = GetterAnnotation{}
	_ schema.Annotation = OptionalAnnotation{}
	_ schema.Annotation = (*WireTypeAnnotation)(nil)
	_ schema.Annotation = (*ConvertAnnotation)(nil)
	_ schema.Annotation = (*VariantAnnotation)(nil)
)
