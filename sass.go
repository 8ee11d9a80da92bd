// Package sass compiles templates written in the whitespace-sensitive
// indented syntax to CSS.  The heavy lifting lives in the subpackages:
// token splits and nests input lines, parse classifies them and
// assembles the document tree, and render serializes the tree as CSS in
// one of several output styles.  This package ties the pipeline
// together behind a small facade.
package sass

import (
	"os"

	"github.com/sass-format/go-sass/format"
	"github.com/sass-format/go-sass/parse"
	"github.com/sass-format/go-sass/render"
)

// Config collects the compile pipeline's options.
type Config struct {
	parseOpts  []parse.Option
	renderOpts []render.RenderOption
}

type Option func(*Config)

// WithStyle selects the CSS output style.
func WithStyle(s format.Style) Option {
	return func(c *Config) {
		c.renderOpts = append(c.renderOpts, render.Style(s))
	}
}

// WithPropertySyntax restricts templates to one attribute syntax.
func WithPropertySyntax(s format.PropertySyntax) Option {
	return func(c *Config) {
		c.parseOpts = append(c.parseOpts, parse.PropertySyntax(s))
	}
}

// WithLoadPaths sets the directories searched by @import.
func WithLoadPaths(paths ...string) Option {
	return func(c *Config) {
		c.parseOpts = append(c.parseOpts, parse.LoadPaths(paths...))
	}
}

// WithFilename names the template for error messages.
func WithFilename(name string) Option {
	return func(c *Config) {
		c.parseOpts = append(c.parseOpts, parse.Filename(name))
	}
}

// Compile parses src and renders it as CSS.
func Compile(src []byte, opts ...Option) ([]byte, error) {
	c := &Config{}
	for _, f := range opts {
		f(c)
	}
	root, err := parse.Parse(src, c.parseOpts...)
	if err != nil {
		return nil, err
	}
	out, err := render.String(root, c.renderOpts...)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// CompileFile reads path and compiles it, naming it in error messages.
func CompileFile(path string, opts ...Option) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(d, append(opts, WithFilename(path))...)
}
