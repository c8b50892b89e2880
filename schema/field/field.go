// Package field provides fluent builders for describing the fields of a
// buildgen declaration.
//
// Field names follow snake_case; the generator derives the Go names from
// them:
//
//	field.Text("public_key")      // accessor PublicKey, setter WithPublicKey
//	field.Bool("wears_crocks")    // accessor WearsCrocks
//	field.Texts("known_enemies")  // sequence of text
//
// Directives are attached with the fluent sugar methods, or with Annotations
// for the full vocabulary:
//
//	field.Text("role").
//	    Getter().     // emit a read accessor
//	    Optional()    // an unset value resolves to the zero value on Build
package field

import (
	"fmt"
	"reflect"

	"github.com/syssam/buildgen/schema"
	"github.com/syssam/buildgen/schema/directive"
)

// A Descriptor for field configuration. It is the serializable form the
// compiler consumes; the fluent builders below only fill it in.
type Descriptor struct {
	Name        string              // name of the field, unique in its declaration
	Info        *TypeInfo           // declared type descriptor
	Comment     string              // doc comment for the generated field
	Annotations []schema.Annotation // directives and other annotations
	Err         error               // deferred construction error, surfaced on load
}

// Text returns a new text field with the given name.
func Text(name string) *TextBuilder {
	return &TextBuilder{desc(name, &TypeInfo{Kind: KindText, Ident: "string"})}
}

// Texts returns a new field holding a sequence of text values.
func Texts(name string) *SequenceBuilder {
	return &SequenceBuilder{desc(name, &TypeInfo{
		Kind:   KindSequence,
		Params: []*TypeInfo{{Kind: KindText, Ident: "string"}},
	})}
}

// Sequence returns a new sequence field whose element type is derived from
// the given value, e.g. Sequence("scores", int64(0)).
func Sequence(name string, elem any) *SequenceBuilder {
	info, err := typeOf(elem)
	d := desc(name, &TypeInfo{Kind: KindSequence, Params: []*TypeInfo{info}})
	if err != nil {
		d.Err = fmt.Errorf("sequence %q: %w", name, err)
	}
	return &SequenceBuilder{d}
}

// SequenceOf returns a new sequence field with an explicit element
// descriptor. It is the escape hatch for element types that cannot be
// expressed as a sample value.
func SequenceOf(name string, elem *TypeInfo) *SequenceBuilder {
	return &SequenceBuilder{desc(name, &TypeInfo{Kind: KindSequence, Params: []*TypeInfo{elem}})}
}

// Bool returns a new opaque bool field.
func Bool(name string) *OpaqueBuilder {
	return opaque(name, "bool", "")
}

// Int returns a new opaque int field.
func Int(name string) *OpaqueBuilder {
	return opaque(name, "int", "")
}

// Int32 returns a new opaque int32 field.
func Int32(name string) *OpaqueBuilder {
	return opaque(name, "int32", "")
}

// Int64 returns a new opaque int64 field.
func Int64(name string) *OpaqueBuilder {
	return opaque(name, "int64", "")
}

// Uint returns a new opaque uint field.
func Uint(name string) *OpaqueBuilder {
	return opaque(name, "uint", "")
}

// Uint64 returns a new opaque uint64 field.
func Uint64(name string) *OpaqueBuilder {
	return opaque(name, "uint64", "")
}

// Float64 returns a new opaque float64 field.
func Float64(name string) *OpaqueBuilder {
	return opaque(name, "float64", "")
}

// Time returns a new opaque time.Time field.
func Time(name string) *OpaqueBuilder {
	return opaque(name, "time.Time", "time")
}

// Bytes returns a new opaque []byte field.
func Bytes(name string) *OpaqueBuilder {
	return opaque(name, "[]byte", "")
}

// UUID returns a new opaque github.com/google/uuid UUID field.
func UUID(name string) *OpaqueBuilder {
	return opaque(name, "uuid.UUID", "github.com/google/uuid")
}

// Opaque returns a new opaque field whose type is derived from the given
// value, e.g. Opaque("credentials", Credentials{}).
func Opaque(name string, v any) *OpaqueBuilder {
	info, err := typeOf(v)
	d := desc(name, info)
	if err != nil {
		d.Err = fmt.Errorf("opaque %q: %w", name, err)
	}
	return &OpaqueBuilder{d}
}

// TextBuilder is the builder for text fields.
type TextBuilder struct {
	d *Descriptor
}

// Getter marks the field to have a generated read accessor.
func (b *TextBuilder) Getter() *TextBuilder {
	b.d.Annotations = append(b.d.Annotations, directive.Getter())
	return b
}

// Optional marks an unset field to resolve to the type's zero value on
// Build instead of failing construction.
func (b *TextBuilder) Optional() *TextBuilder {
	b.d.Annotations = append(b.d.Annotations, directive.Optional())
	return b
}

// Comment sets the doc comment of the generated field.
func (b *TextBuilder) Comment(c string) *TextBuilder {
	b.d.Comment = c
	return b
}

// Annotations appends annotations to the field.
func (b *TextBuilder) Annotations(annotations ...schema.Annotation) *TextBuilder {
	b.d.Annotations = append(b.d.Annotations, annotations...)
	return b
}

// Descriptor implements the buildgen.Field interface.
func (b *TextBuilder) Descriptor() *Descriptor {
	return b.d
}

// SequenceBuilder is the builder for sequence fields.
type SequenceBuilder struct {
	d *Descriptor
}

// Getter marks the field to have a generated read accessor. The accessor
// returns a view over the backing elements.
func (b *SequenceBuilder) Getter() *SequenceBuilder {
	b.d.Annotations = append(b.d.Annotations, directive.Getter())
	return b
}

// Optional marks an unset field to resolve to a nil sequence on Build
// instead of failing construction.
func (b *SequenceBuilder) Optional() *SequenceBuilder {
	b.d.Annotations = append(b.d.Annotations, directive.Optional())
	return b
}

// Comment sets the doc comment of the generated field.
func (b *SequenceBuilder) Comment(c string) *SequenceBuilder {
	b.d.Comment = c
	return b
}

// Annotations appends annotations to the field.
func (b *SequenceBuilder) Annotations(annotations ...schema.Annotation) *SequenceBuilder {
	b.d.Annotations = append(b.d.Annotations, annotations...)
	return b
}

// Descriptor implements the buildgen.Field interface.
func (b *SequenceBuilder) Descriptor() *Descriptor {
	return b.d
}

// OpaqueBuilder is the builder for fields of any other declared type.
type OpaqueBuilder struct {
	d *Descriptor
}

// Getter marks the field to have a generated read accessor.
func (b *OpaqueBuilder) Getter() *OpaqueBuilder {
	b.d.Annotations = append(b.d.Annotations, directive.Getter())
	return b
}

// Optional marks an unset field to resolve to the type's zero value on
// Build instead of failing construction.
func (b *OpaqueBuilder) Optional() *OpaqueBuilder {
	b.d.Annotations = append(b.d.Annotations, directive.Optional())
	return b
}

// Comment sets the doc comment of the generated field.
func (b *OpaqueBuilder) Comment(c string) *OpaqueBuilder {
	b.d.Comment = c
	return b
}

// Annotations appends annotations to the field.
func (b *OpaqueBuilder) Annotations(annotations ...schema.Annotation) *OpaqueBuilder {
	b.d.Annotations = append(b.d.Annotations, annotations...)
	return b
}

// Descriptor implements the buildgen.Field interface.
func (b *OpaqueBuilder) Descriptor() *Descriptor {
	return b.d
}

func desc(name string, info *TypeInfo) *Descriptor {
	d := &Descriptor{Name: name, Info: info}
	if name == "" {
		d.Err = fmt.Errorf("field name cannot be empty")
	}
	return d
}

func opaque(name, ident, pkgPath string) *OpaqueBuilder {
	return &OpaqueBuilder{desc(name, &TypeInfo{Kind: KindOpaque, Ident: ident, PkgPath: pkgPath})}
}

// typeOf derives a type descriptor from a sample value.
func typeOf(v any) (*TypeInfo, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return &TypeInfo{}, fmt.Errorf("cannot derive type from untyped nil")
	}
	switch t.Kind() {
	case reflect.String:
		if t.PkgPath() == "" {
			return &TypeInfo{Kind: KindText, Ident: "string"}, nil
		}
	case reflect.Slice:
		if t.Elem().Kind() != reflect.Uint8 {
			elem, err := typeOf(reflect.Zero(t.Elem()).Interface())
			if err != nil {
				return &TypeInfo{}, err
			}
			return &TypeInfo{Kind: KindSequence, Params: []*TypeInfo{elem}}, nil
		}
	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Invalid:
		return &TypeInfo{}, fmt.Errorf("unsupported type %s", t)
	}
	info := &TypeInfo{Kind: KindOpaque, Ident: t.String(), PkgPath: indirect(t).PkgPath()}
	return info, nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
