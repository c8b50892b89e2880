// Package buildgen provides the declaration surface for the buildgen code
// generator: an offline, source-to-source tool that reads declarations of
// fixed-shape record types and emits companion Go code for them: read
// accessors, a fluent builder type, and an optional validating constructor.
//
// A declaration embeds [Schema] and implements the methods it wants to
// customize:
//
//	type Agent struct{ buildgen.Schema }
//
//	func (Agent) Fields() []buildgen.Field {
//	    return []buildgen.Field{
//	        field.Text("public_key").Getter(),
//	        field.Bool("wears_crocks").Getter(),
//	        field.Texts("known_enemies").Getter(),
//	        field.Text("role").Getter().Optional(),
//	    }
//	}
//
//	func (Agent) Annotations() []schema.Annotation {
//	    return []schema.Annotation{directive.Validator()}
//	}
//
// Declarations are compiled into a serializable form by compiler/load and
// turned into Go source by compiler/gen. Each declaration is processed
// independently; the generator holds no state across declarations.
package buildgen

import (
	"github.com/syssam/buildgen/schema"
	"github.com/syssam/buildgen/schema/field"
)

// Interface is implemented by all record declarations. It is usually
// satisfied by embedding the Schema base type.
type Interface interface {
	// Fields returns the ordered field list of the declaration. Order is
	// significant: it fixes the builder field order and the resolution
	// order of the validating constructor.
	Fields() []Field

	// Annotations returns the declaration-level annotations. Directives
	// recognized by the generator are declared in schema/directive.
	Annotations() []schema.Annotation
}

// Varianter is implemented by declarations that describe a closed set of
// variants instead of a record of fields. Variant declarations exist for the
// wire-format conversion generator; the builder generator rejects them.
type Varianter interface {
	Variants() []string
}

// Field is the interface for declaration fields, satisfied by the builders
// in schema/field.
type Field interface {
	Descriptor() *field.Descriptor
}

// Schema is the default implementation of Interface. Embed it in a
// declaration and override the methods you need.
type Schema struct{}

// Fields of the declaration. Defaults to no fields.
func (Schema) Fields() []Field { return nil }

// Annotations of the declaration. Defaults to none.
func (Schema) Annotations() []schema.Annotation { return nil }

// Variant is the base type for variant-set declarations. It implements
// Varianter with an empty variant list.
type Variant struct {
	Schema
}

// Variants of the declaration. Defaults to none.
func (Variant) Variants() []string { return nil }
