package gen

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/buildgen/compiler/load"
)

// Generator turns loaded declarations into Go source files, one file per
// declaration.
type Generator struct {
	cfg     *Config
	schemas []*load.Schema
}

// NewGenerator creates a generator for the given declarations.
func NewGenerator(c *Config, schemas ...*load.Schema) *Generator {
	return &Generator{cfg: c, schemas: schemas}
}

// Generate generates all declaration files with parallel execution.
// Declarations are processed independently: a failing declaration is
// reported and its siblings still generate. The returned error joins all
// per-declaration failures.
func (g *Generator) Generate(ctx context.Context) error {
	if g.cfg.Target == "" {
		return NewConfigError("Target", nil, "target directory cannot be empty")
	}
	if g.cfg.Package == "" {
		return NewConfigError("Package", nil, "package cannot be empty")
	}
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.cfg.workers())
	for _, s := range g.schemas {
		s := s
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := g.generate(s); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// generate emits the files of a single declaration.
func (g *Generator) generate(s *load.Schema) error {
	t, err := NewType(g.cfg, s)
	if err != nil {
		return err
	}
	f, err := declFile(t)
	if err != nil {
		return err
	}
	if err := g.cfg.writeFile(f, t.FileName()); err != nil {
		return err
	}
	if g.cfg.Converter != nil {
		cf, err := g.cfg.Converter.GenConvert(t)
		if err != nil {
			return NewGenerationError("convert", t.FileName(), "converter failed", err)
		}
		if cf != nil {
			if err := g.cfg.writeFile(cf, t.Label()+"_convert.go"); err != nil {
				return err
			}
		}
	}
	return nil
}

// declFile assembles the generated file of one declaration: the record
// struct, its accessors, the companion builder and, when requested, the
// validating constructor.
func declFile(t *Type) (*jen.File, error) {
	if t.IsVariantSet() {
		return nil, NewShapeError(t.Name, "variant set", "builder generation is undefined for variant sets")
	}
	f := t.Config.newFile()
	genRecord(f, t)
	genAccessors(f, t)
	genString(f, t)
	genBuilder(f, t)
	if t.HasValidator() {
		genValidator(f, t)
	}
	return f, nil
}

// Source returns the generated source of a single declaration without
// writing it. It is the programmatic entrypoint for tests and tooling.
func Source(c *Config, s *load.Schema) ([]byte, error) {
	t, err := NewType(c, s)
	if err != nil {
		return nil, err
	}
	f, err := declFile(t)
	if err != nil {
		return nil, err
	}
	return c.render(f, t.FileName())
}

// Generate generates the given declarations with the given config.
// It is the entrypoint used by the command line tool.
func Generate(ctx context.Context, c *Config, schemas ...*load.Schema) error {
	return NewGenerator(c, schemas...).Generate(ctx)
}
