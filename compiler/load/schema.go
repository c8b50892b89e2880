// Package load marshals buildgen declarations into their serializable form,
// the form the generators consume. Declarations come from two sources: Go
// values implementing buildgen.Interface, and YAML or JSON declaration
// files.
package load

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/syssam/buildgen"
	"github.com/syssam/buildgen/schema"
	"github.com/syssam/buildgen/schema/field"

	"gopkg.in/yaml.v3"
)

// Schema represents a buildgen declaration that was loaded from a user
// package or a declarations file.
type Schema struct {
	Name        string         `json:"name,omitempty"`
	Pos         string         `json:"-"`
	Fields      []*Field       `json:"fields,omitempty"`
	Variants    []string       `json:"variants,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
}

// Position describes the position of a field in its declaration.
type Position struct {
	Index int `json:"index"` // index in the field list
}

// Field represents a declaration field that was loaded from a field
// descriptor. Directives are carried in Annotations, keyed by name, in
// their JSON-decoded form.
type Field struct {
	Name        string          `json:"name,omitempty"`
	Info        *field.TypeInfo `json:"type,omitempty"`
	Comment     string          `json:"comment,omitempty"`
	Position    *Position       `json:"position,omitempty"`
	Annotations map[string]any  `json:"annotations,omitempty"`
}

// NewField creates a loaded field from a field descriptor.
// It returns an error if the descriptor contains an error.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("field %q: %w", fd.Name, fd.Err)
	}
	sf := &Field{
		Name:        fd.Name,
		Info:        fd.Info,
		Comment:     fd.Comment,
		Annotations: make(map[string]any),
	}
	for _, at := range fd.Annotations {
		sf.addAnnotation(at)
	}
	if sf.Info == nil {
		return nil, fmt.Errorf("missing type info for field %q", sf.Name)
	}
	return sf, nil
}

// MarshalSchema encodes a buildgen.Interface value into a JSON buffer
// that can be decoded into the Schema objects declared above.
func MarshalSchema(decl buildgen.Interface) (b []byte, err error) {
	s := &Schema{
		Name:        indirect(reflect.TypeOf(decl)).Name(),
		Annotations: make(map[string]any),
	}
	annotations, err := safeAnnotations(decl)
	if err != nil {
		return nil, fmt.Errorf("declaration %q: %w", s.Name, err)
	}
	for _, at := range annotations {
		s.addAnnotation(at)
	}
	if err := s.loadFields(decl); err != nil {
		return nil, fmt.Errorf("declaration %q: %w", s.Name, err)
	}
	if v, ok := decl.(buildgen.Varianter); ok {
		variants, err := safeVariants(v)
		if err != nil {
			return nil, fmt.Errorf("declaration %q: %w", s.Name, err)
		}
		s.Variants = variants
	}
	return json.Marshal(s)
}

// UnmarshalSchema decodes the given buffer to a loaded schema.
func UnmarshalSchema(buf []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	s.positions()
	return s, nil
}

// MarshalDecls marshals and unmarshals the given declarations in order.
// It is the programmatic entrypoint for Go-defined declarations.
func MarshalDecls(decls ...buildgen.Interface) ([]*Schema, error) {
	schemas := make([]*Schema, 0, len(decls))
	for _, decl := range decls {
		buf, err := MarshalSchema(decl)
		if err != nil {
			return nil, err
		}
		s, err := UnmarshalSchema(buf)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// Read loads declarations from a YAML or JSON file. The document holds a
// single "declarations" list; field order in the file is the declaration
// order the generators honor.
func Read(path string) ([]*Schema, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Decode through YAML (a JSON superset) and re-encode to JSON so a
	// single set of field tags serves both formats.
	var doc any
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("load: parse %s: %w", path, err)
	}
	jbuf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("load: parse %s: %w", path, err)
	}
	var file struct {
		Declarations []*Schema `json:"declarations"`
	}
	if err := json.Unmarshal(jbuf, &file); err != nil {
		return nil, fmt.Errorf("load: parse %s: %w", path, err)
	}
	if len(file.Declarations) == 0 {
		return nil, fmt.Errorf("load: no declarations found in %s", path)
	}
	for _, s := range file.Declarations {
		s.Pos = path
		s.positions()
	}
	return file.Declarations, nil
}

// loadFields loads fields to the schema from a buildgen.Interface.
func (s *Schema) loadFields(decl buildgen.Interface) error {
	fields, err := safeFields(decl)
	if err != nil {
		return err
	}
	for i, f := range fields {
		sf, err := NewField(f.Descriptor())
		if err != nil {
			return err
		}
		sf.Position = &Position{Index: i}
		s.Fields = append(s.Fields, sf)
	}
	return nil
}

// positions fills in missing field positions from the list order.
func (s *Schema) positions() {
	for i, f := range s.Fields {
		if f.Position == nil {
			f.Position = &Position{Index: i}
		}
	}
}

func (s *Schema) addAnnotation(an schema.Annotation) {
	addAnnotation(s.Annotations, an)
}

func (f *Field) addAnnotation(an schema.Annotation) {
	addAnnotation(f.Annotations, an)
}

func addAnnotation(annotations map[string]any, an schema.Annotation) {
	curr, ok := annotations[an.Name()]
	if !ok {
		annotations[an.Name()] = an
		return
	}
	if m, ok := curr.(schema.Merger); ok {
		annotations[an.Name()] = m.Merge(an)
	}
}

// safeFields wraps the Fields method with recover to ensure no panics in marshaling.
func safeFields(fd interface{ Fields() []buildgen.Field }) (fields []buildgen.Field, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Fields panics: %v", fd, v)
			fields = nil
		}
	}()
	return fd.Fields(), nil
}

// safeAnnotations wraps the Annotations method with recover to ensure no panics in marshaling.
func safeAnnotations(an interface{ Annotations() []schema.Annotation }) (annotations []schema.Annotation, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Annotations panics: %v", an, v)
			annotations = nil
		}
	}()
	return an.Annotations(), nil
}

// safeVariants wraps the Variants method with recover to ensure no panics in marshaling.
func safeVariants(vr buildgen.Varianter) (variants []string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Variants panics: %v", vr, v)
			variants = nil
		}
	}()
	return vr.Variants(), nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
