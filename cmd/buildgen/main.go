// Command buildgen generates builder and accessor companion code from a
// declarations file.
//
// Usage:
//
//	buildgen -decl declarations.yaml -target ./model -pkg github.com/org/project/model
//
// Flags override the optional buildgen.yaml config file in the working
// directory. With -watch, buildgen keeps running and regenerates whenever
// the declarations file changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/syssam/buildgen/compiler/gen"
	"github.com/syssam/buildgen/compiler/load"
)

// defaultConfigFile is consulted when -config is not given.
const defaultConfigFile = "buildgen.yaml"

type cliConfig struct {
	// Declarations is the path of the declarations file (YAML or JSON).
	Declarations string `yaml:"declarations"`
	// Target is the output directory.
	Target string `yaml:"target"`
	// Package is the import path of the generated package.
	Package string `yaml:"package"`
	// Header overrides the generated file header comment.
	Header string `yaml:"header"`
	// Workers caps parallel file generation.
	Workers int `yaml:"workers"`
}

func main() {
	var (
		cfgPath = flag.String("config", "", "path to a buildgen.yaml config file")
		decl    = flag.String("decl", "", "path to the declarations file (YAML or JSON)")
		target  = flag.String("target", "", "output directory for the generated files")
		pkg     = flag.String("pkg", "", "import path of the generated package")
		header  = flag.String("header", "", "file header comment override")
		workers = flag.Int("workers", 0, "max files generated in parallel (0 means GOMAXPROCS)")
		watch   = flag.Bool("watch", false, "keep running and regenerate when the declarations file changes")
	)
	flag.Parse()

	cfg, err := readConfig(*cfgPath)
	if err != nil {
		fatal(err)
	}
	if *decl != "" {
		cfg.Declarations = *decl
	}
	if *target != "" {
		cfg.Target = *target
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}
	if *header != "" {
		cfg.Header = *header
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if cfg.Declarations == "" {
		fatal(fmt.Errorf("no declarations file: pass -decl or set \"declarations\" in %s", defaultConfigFile))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watch {
		if err := watchLoop(ctx, cfg); err != nil {
			fatal(err)
		}
		return
	}
	if err := generate(ctx, cfg); err != nil {
		fatal(err)
	}
}

// readConfig loads the config file. A missing default file is not an
// error; an explicitly named file must exist.
func readConfig(path string) (*cliConfig, error) {
	cfg := &cliConfig{}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	buf, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
		return cfg, nil
	case err != nil:
		return nil, err
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// generate runs one full generation pass.
func generate(ctx context.Context, cfg *cliConfig) error {
	schemas, err := load.Read(cfg.Declarations)
	if err != nil {
		return err
	}
	gc, err := gen.NewConfig(
		gen.WithPackage(cfg.Package),
		gen.WithTarget(cfg.Target),
	)
	if err != nil {
		return err
	}
	if cfg.Header != "" {
		gc.Header = cfg.Header
	}
	if cfg.Workers > 0 {
		gc.Workers = cfg.Workers
	}
	if err := gen.Generate(ctx, gc, schemas...); err != nil {
		return err
	}
	fmt.Printf("buildgen: generated %d declaration(s) into %s\n", len(schemas), cfg.Target)
	return nil
}

// watchLoop regenerates on every change of the declarations file until the
// context is canceled. Generation failures are reported and watching
// continues; only watcher failures stop the loop.
func watchLoop(ctx context.Context, cfg *cliConfig) error {
	if err := generate(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Watch the directory: editors often replace the file on save, which
	// drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(cfg.Declarations)); err != nil {
		return err
	}
	declPath, err := filepath.Abs(cfg.Declarations)
	if err != nil {
		return err
	}
	fmt.Printf("buildgen: watching %s\n", cfg.Declarations)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != declPath {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := generate(ctx, cfg); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
