package gen

import (
	"encoding/json"
	"fmt"
	"go/token"

	"github.com/syssam/buildgen/schema/directive"
)

// TypeDirectives is the parsed declaration-level directive set.
type TypeDirectives struct {
	// BuilderName overrides the generated companion type name.
	// Empty means the default "<Name>Builder".
	BuilderName string
	// Validator requests the validating Build constructor.
	Validator bool
	// WireType names the wire-format counterpart type. It is carried for
	// the conversion generator and ignored by the builder generator.
	WireType string
}

// FieldDirectives is the parsed field-level directive set.
type FieldDirectives struct {
	// Getter requests a read accessor for the field.
	Getter bool
	// Optional resolves an unset field to its zero value at Build time.
	Optional bool
	// Strategy is the conversion strategy. It is carried for the
	// conversion generator and ignored by the builder generator.
	Strategy directive.Strategy
}

// parseTypeDirectives extracts the recognized declaration-level directives
// from loaded annotations. A recognized directive with missing or mistyped
// arguments fails with a DirectiveError; annotations the generator does not
// recognize are ignored.
func parseTypeDirectives(typeName string, annotations map[string]any) (TypeDirectives, error) {
	var td TypeDirectives
	for name, raw := range annotations {
		switch name {
		case directive.NameValidator:
			td.Validator = true
		case directive.NameBuilderName:
			arg, ok, err := directiveArg(raw, "name")
			if err != nil {
				return td, NewDirectiveError(name, typeName, "", err.Error())
			}
			if !ok {
				return td, NewDirectiveError(name, typeName, "", "missing required argument \"name\"")
			}
			if !token.IsIdentifier(arg) {
				return td, NewDirectiveError(name, typeName, "", fmt.Sprintf("%q is not a valid Go identifier", arg))
			}
			td.BuilderName = arg
		case directive.NameWireType:
			arg, ok, err := directiveArg(raw, "type")
			if err != nil {
				return td, NewDirectiveError(name, typeName, "", err.Error())
			}
			if !ok {
				return td, NewDirectiveError(name, typeName, "", "missing required argument \"type\"")
			}
			td.WireType = arg
		}
	}
	return td, nil
}

// parseFieldDirectives extracts the recognized field-level directives from
// loaded annotations, with the same malformed-argument and unrecognized
// handling as parseTypeDirectives.
func parseFieldDirectives(typeName, fieldName string, annotations map[string]any) (FieldDirectives, error) {
	var fd FieldDirectives
	for name, raw := range annotations {
		switch name {
		case directive.NameGetter:
			fd.Getter = true
		case directive.NameOptional:
			fd.Optional = true
		case directive.NameConvert:
			arg, ok, err := directiveArg(raw, "strategy")
			if err != nil {
				return fd, NewDirectiveError(name, typeName, fieldName, err.Error())
			}
			if !ok {
				return fd, NewDirectiveError(name, typeName, fieldName, "missing required argument \"strategy\"")
			}
			switch s := directive.Strategy(arg); s {
			case directive.StrategyText, directive.StrategyClone, directive.StrategyConvert, directive.StrategyMap:
				fd.Strategy = s
			default:
				return fd, NewDirectiveError(name, typeName, fieldName, fmt.Sprintf("unknown strategy %q", arg))
			}
		}
	}
	return fd, nil
}

// directiveArg extracts a string argument from a loaded directive value.
// Loaded annotations usually arrive as map[string]any after the JSON round
// trip; typed annotation values are reduced to that form first.
func directiveArg(raw any, key string) (arg string, ok bool, err error) {
	m, isMap := raw.(map[string]any)
	if !isMap {
		buf, err := json.Marshal(raw)
		if err != nil {
			return "", false, fmt.Errorf("arguments are not an object: %v", err)
		}
		if err := json.Unmarshal(buf, &m); err != nil {
			return "", false, fmt.Errorf("arguments are not an object: %v", err)
		}
	}
	v, ok := m[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("argument %q must be a string, got %T", key, v)
	}
	return s, true, nil
}
