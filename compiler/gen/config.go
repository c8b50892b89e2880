package gen

import (
	"path"
	"runtime"
)

// DefaultHeader is the header comment added to every generated file unless
// the config overrides it.
const DefaultHeader = "Code generated by buildgen. DO NOT EDIT."

// Config is the configuration for the code generation.
type Config struct {
	// Target is the output directory for the generated files.
	Target string
	// Package is the import path of the generated package,
	// e.g. "github.com/org/project/internal/model".
	Package string
	// Header is the file header comment added at the top of each
	// generated file. Empty means DefaultHeader.
	Header string
	// Workers caps the number of files generated in parallel.
	// Zero means GOMAXPROCS.
	Workers int
	// Converter emits wire-format conversion files for declarations that
	// carry conversion directives. Nil disables conversion output.
	Converter Converter
}

// OutputConfig groups the output-related settings.
type OutputConfig struct {
	Target  string
	Package string
	Header  string
}

// Output returns the grouped output settings.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:  c.Target,
		Package: c.Package,
		Header:  c.Header,
	}
}

// PkgName returns the package name of the generated package.
func (c *Config) PkgName() string {
	return path.Base(c.Package)
}

func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
