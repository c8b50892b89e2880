package gen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/syssam/buildgen/compiler/load"
	"github.com/syssam/buildgen/schema"
	"github.com/syssam/buildgen/schema/field"
)

// The following types and their exported methods are used by the emitters
// to generate the assets.
type (
	// Type represents one declaration the generator processes: its fields,
	// directives and the information derived from them.
	Type struct {
		*Config
		schema *load.Schema
		// Name holds the declaration name.
		Name string
		// Fields holds the declaration fields, in declaration order.
		Fields []*Field
		fields map[string]*Field
		// Variants holds the variant values of a variant-set declaration.
		// The builder generator rejects declarations that carry any.
		Variants []string
		// Annotations that were defined for the declaration.
		// The mapping is from the Annotation.Name() to a JSON decoded object.
		Annotations map[string]any
		// Directives is the parsed declaration-level directive set.
		Directives TypeDirectives
	}

	// Field holds the information of a declaration field used by the emitters.
	Field struct {
		def *load.Field
		typ *Type
		// Name is the declared (snake_case) name of the field.
		Name string
		// Type holds the type information of the field.
		Type *field.TypeInfo
		// Exposed indicates the field has a generated read accessor.
		Exposed bool
		// Defaultable indicates an unset field resolves to the zero value
		// at Build time instead of failing construction.
		Defaultable bool
		// Position info of the field in the declaration.
		Position *load.Position
		// Comment is the doc comment of the generated field.
		Comment string
		// Annotations that were defined for the field.
		// The mapping is from the Annotation.Name() to a JSON decoded object.
		Annotations map[string]any
		// Directives is the parsed field-level directive set.
		Directives FieldDirectives
	}

	// Graph holds the loaded declarations and the generation config.
	Graph struct {
		*Config
		// Nodes are the declaration types, in load order.
		Nodes []*Type
	}
)

// NewType creates a new type and its fields from the given loaded
// declaration. All per-declaration validation happens here: name
// integrity, field shapes and directive arguments.
func NewType(c *Config, schema *load.Schema) (*Type, error) {
	if err := ValidSchemaName(schema.Name); err != nil {
		return nil, NewSchemaError(schema.Name, "", "invalid declaration name", err)
	}
	typ := &Type{
		Config:      c,
		schema:      schema,
		Name:        schema.Name,
		Variants:    schema.Variants,
		Annotations: schema.Annotations,
		Fields:      make([]*Field, 0, len(schema.Fields)),
		fields:      make(map[string]*Field, len(schema.Fields)),
	}
	td, err := parseTypeDirectives(typ.Name, schema.Annotations)
	if err != nil {
		return nil, err
	}
	typ.Directives = td
	for _, f := range schema.Fields {
		fd, err := parseFieldDirectives(typ.Name, f.Name, f.Annotations)
		if err != nil {
			return nil, err
		}
		tf := &Field{
			def:         f,
			typ:         typ,
			Name:        f.Name,
			Type:        f.Info,
			Exposed:     fd.Getter,
			Defaultable: fd.Optional,
			Position:    f.Position,
			Comment:     f.Comment,
			Annotations: f.Annotations,
			Directives:  fd,
		}
		if err := typ.checkField(tf, f); err != nil {
			return nil, err
		}
		typ.Fields = append(typ.Fields, tf)
		typ.fields[f.Name] = tf
	}
	return typ, nil
}

// NewGraph creates a new graph for the code generation from the given
// declarations. It fails if any declaration is invalid, reporting all
// failures in one joined error.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	g := &Graph{Config: c, Nodes: make([]*Type, 0, len(schemas))}
	var errs []error
	for _, schema := range schemas {
		typ, err := NewType(c, schema)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		g.Nodes = append(g.Nodes, typ)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// checkField checks a declaration field.
func (t *Type) checkField(tf *Field, f *load.Field) error {
	switch {
	case f.Name == "":
		return NewSchemaError(t.Name, f.Name, "field name cannot be empty", nil)
	case !token.IsIdentifier(builderField(f.Name)):
		return NewSchemaError(t.Name, f.Name, "field name is not usable as a Go identifier", nil)
	case f.Info == nil || !f.Info.Kind.Valid():
		return NewSchemaError(t.Name, f.Name, "invalid field type", nil)
	case t.fields[f.Name] != nil:
		return NewSchemaError(t.Name, f.Name, "field redeclared", nil)
	}
	return t.checkShape(f.Name, f.Info)
}

// checkShape checks that a type descriptor is one of the recognized
// parameterized forms. The only recognized parameterized shape is a
// sequence with a single, concrete element type.
func (t *Type) checkShape(fieldName string, info *field.TypeInfo) error {
	switch info.Kind {
	case field.KindSequence:
		if len(info.Params) != 1 {
			return NewGenericShapeError(t.Name, fieldName,
				fmt.Sprintf("sequence must have exactly one type parameter, got %d", len(info.Params)))
		}
		elem := info.Params[0]
		if elem == nil || !elem.Kind.Valid() {
			return NewGenericShapeError(t.Name, fieldName, "sequence element type is not concrete")
		}
		return t.checkShape(fieldName, elem)
	default:
		if len(info.Params) != 0 {
			return NewGenericShapeError(t.Name, fieldName,
				fmt.Sprintf("%s type cannot be parameterized", info.Kind))
		}
		if info.Kind == field.KindOpaque && info.Ident == "" {
			return NewGenericShapeError(t.Name, fieldName, "opaque type has no identifier")
		}
	}
	return nil
}

// Comment returns the doc comment attached to the declaration through the
// Comment annotation, if any.
func (t Type) Comment() string {
	raw, ok := t.Annotations["Comment"]
	if !ok {
		return ""
	}
	switch c := raw.(type) {
	case *schema.CommentAnnotation:
		return c.Text
	case map[string]any:
		if s, ok := c["text"].(string); ok {
			return s
		}
	}
	return ""
}

// IsVariantSet indicates if the declaration describes a closed variant set
// instead of a record of fields.
func (t Type) IsVariantSet() bool {
	return len(t.Variants) > 0
}

// BuilderName returns the name of the generated companion builder type.
func (t Type) BuilderName() string {
	if t.Directives.BuilderName != "" {
		return t.Directives.BuilderName
	}
	return t.Name + "Builder"
}

// HasValidator indicates if the declaration requested the validating
// Build constructor.
func (t Type) HasValidator() bool {
	return t.Directives.Validator
}

// HasAccessors indicates if any field has a generated read accessor.
func (t Type) HasAccessors() bool {
	for _, f := range t.Fields {
		if f.Exposed {
			return true
		}
	}
	return false
}

// Label returns the label name of the declaration (snake_case).
func (t Type) Label() string {
	return snake(t.Name)
}

// FileName returns the name of the generated file for this declaration.
func (t Type) FileName() string {
	return t.Label() + ".go"
}

// Receiver returns the receiver name of the record type.
func (t Type) Receiver() string {
	return receiver(t.Name)
}

// BuilderReceiver returns the receiver name of the builder type.
func (t Type) BuilderReceiver() string {
	return receiver(t.BuilderName())
}

// Pos returns the position information of this declaration, if it was
// loaded from a file.
func (t Type) Pos() string {
	if t.schema == nil {
		return ""
	}
	return t.schema.Pos
}

// StructField returns the struct-field name holding the field value in the
// generated record and builder types.
func (f Field) StructField() string {
	return builderField(f.Name)
}

// Accessor returns the exported name of the generated read accessor.
func (f Field) Accessor() string {
	return pascal(f.Name)
}

// Setter returns the exported name of the generated builder setter.
func (f Field) Setter() string {
	return "With" + pascal(f.Name)
}

// IsText indicates if the field holds textual data.
func (f Field) IsText() bool {
	return f.Type != nil && f.Type.Kind == field.KindText
}

// IsSequence indicates if the field holds an ordered collection.
func (f Field) IsSequence() bool {
	return f.Type != nil && f.Type.Kind == field.KindSequence
}

// ValidSchemaName determines if a declaration name conflicts with any
// pre-defined names or contains unsafe characters.
func ValidSchemaName(name string) error {
	if name == "" {
		return errors.New("declaration name cannot be empty")
	}
	// Generated file names derive from the declaration name. Reject path
	// traversal characters to prevent directory escape.
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("declaration name %q contains path separator characters", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("declaration name %q contains parent directory reference", name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("declaration name %q cannot start with a dot", name)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("declaration name %q is not a valid Go identifier", name)
	}
	if token.Lookup(name).IsKeyword() {
		return fmt.Errorf("declaration name conflicts with Go keyword %q", name)
	}
	if types.Universe.Lookup(name) != nil {
		return fmt.Errorf("declaration name conflicts with Go predeclared identifier %q", name)
	}
	return nil
}
