package field

import (
	"encoding/json"
	"fmt"
	"strings"
)

// A Kind classifies the declared type of a field. The generator dispatches
// on the kind to pick accessor signatures and presence-box representations;
// it never inspects the underlying Go type syntactically.
type Kind uint8

// Kinds of declared field types.
const (
	KindInvalid Kind = iota
	// KindText is textual data. Accessors return it as an immutable
	// string view.
	KindText
	// KindSequence is an ordered collection. The descriptor carries the
	// element type as its single type parameter, and accessors return a
	// slice view over the backing elements.
	KindSequence
	// KindOpaque is any other concrete type, carried exactly as declared.
	KindOpaque
	endKinds
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindText:     "text",
	KindSequence: "sequence",
	KindOpaque:   "opaque",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Valid reports if the given kind is a declared (non-zero) kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < endKinds
}

// MarshalJSON encodes the kind by its name, keeping marshaled
// declarations readable and stable across kind reordering.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its name.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for i := range kindNames {
		if kindNames[i] == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("field: unknown kind %q", name)
}

// TypeInfo is the explicit type descriptor of a field. It is a tagged value:
// the Kind selects between text, sequence and opaque shapes, and Params
// carries the type parameters of parameterized shapes (a sequence holds
// exactly one, its element type).
type TypeInfo struct {
	Kind    Kind        `json:"kind"`
	Ident   string      `json:"ident,omitempty"`    // Go expression of the type, e.g. "bool", "time.Time"
	PkgPath string      `json:"pkg_path,omitempty"` // import path of the package defining the type, if any
	Params  []*TypeInfo `json:"params,omitempty"`   // type parameters, in declaration order
}

// String returns the Go string representation of the type.
func (t *TypeInfo) String() string {
	switch {
	case t == nil:
		return "invalid"
	case t.Kind == KindText:
		return "string"
	case t.Kind == KindSequence:
		if len(t.Params) == 1 {
			return "[]" + t.Params[0].String()
		}
		return fmt.Sprintf("sequence[%d params]", len(t.Params))
	case t.Ident != "":
		return t.Ident
	}
	return t.Kind.String()
}

// Named reports if the type is defined in a package (as opposed to a
// predeclared Go type).
func (t *TypeInfo) Named() bool {
	return t.PkgPath != ""
}

// TypeName returns the bare type name without its package qualifier,
// e.g. "UUID" for "uuid.UUID".
func (t *TypeInfo) TypeName() string {
	name := strings.TrimPrefix(t.Ident, "*")
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
