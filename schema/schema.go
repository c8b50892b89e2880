// Package schema provides the building blocks shared by buildgen
// declarations: the annotation contract and the generic annotations that are
// not specific to one generator.
//
// The directives recognized by the builder generator live in the
// schema/directive subpackage; field descriptors live in schema/field.
package schema

// Annotation is attached to declarations and fields to carry metadata for
// code generators. Each annotation is keyed by its Name; the generators
// statically enumerate the names they understand and ignore the rest.
type Annotation interface {
	// Name defines the name of the annotation to be retrieved by the
	// generators.
	Name() string
}

// Merger wraps the single Merge function that allows two annotations with
// the same name to be combined when a declaration carries both.
type Merger interface {
	Merge(Annotation) Annotation
}

// CommentAnnotation is a builtin annotation for attaching a doc comment to
// a declaration. The generators copy it onto the emitted type.
type CommentAnnotation struct {
	Text string `json:"text,omitempty"`
}

// Name implements the Annotation interface.
func (*CommentAnnotation) Name() string {
	return "Comment"
}

// Comment returns a comment annotation with the given text.
func Comment(text string) *CommentAnnotation {
	return &CommentAnnotation{Text: text}
}
