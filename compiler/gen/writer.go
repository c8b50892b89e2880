package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/syssam/buildgen/schema/field"
)

// buildgenPkg is the import path of the runtime package the generated
// validating constructors depend on.
const buildgenPkg = "github.com/syssam/buildgen"

// newFile creates a new Jennifer file for the target package with the
// configured header comment.
func (c *Config) newFile() *jen.File {
	f := jen.NewFilePathName(c.Package, c.PkgName())
	f.HeaderComment(c.header())
	return f
}

// render renders the Jennifer file and runs goimports on the result, which
// removes unused imports and normalizes the output.
func (c *Config) render(f *jen.File, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError("render", filename, "cannot render file", err)
	}
	src, err := imports.Process(filepath.Join(c.Target, filename), buf.Bytes(), nil)
	if err != nil {
		return nil, NewGenerationError("format", filename, "cannot format file", err)
	}
	return src, nil
}

// writeFile renders the Jennifer file and writes it under the target
// directory.
func (c *Config) writeFile(f *jen.File, filename string) error {
	src, err := c.render(f, filename)
	if err != nil {
		return err
	}
	full := filepath.Join(c.Target, filename)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(full, src, 0o644); err != nil {
		return NewGenerationError("write", filename, "cannot write file", err)
	}
	return nil
}

// typeCode returns the Jennifer code for a field type descriptor.
func typeCode(info *field.TypeInfo) jen.Code {
	switch info.Kind {
	case field.KindText:
		return jen.String()
	case field.KindSequence:
		return jen.Index().Add(typeCode(info.Params[0]))
	default:
		return identCode(info.Ident, info.PkgPath)
	}
}

// identCode returns the Jennifer code for an opaque type identifier,
// qualifying named types with their import path.
func identCode(ident, pkgPath string) jen.Code {
	switch {
	case strings.HasPrefix(ident, "*"):
		return jen.Op("*").Add(identCode(ident[1:], pkgPath))
	case strings.HasPrefix(ident, "[]"):
		return jen.Index().Add(identCode(ident[2:], pkgPath))
	case pkgPath != "":
		if i := strings.LastIndex(ident, "."); i >= 0 {
			ident = ident[i+1:]
		}
		return jen.Qual(pkgPath, ident)
	default:
		return jen.Id(ident)
	}
}
