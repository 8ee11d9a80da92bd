package parse

import (
	"os"

	"github.com/sass-format/go-sass/format"
)

type parseOpts struct {
	syntax    format.PropertySyntax
	loadPaths []string
	filename  string
	readFile  func(string) ([]byte, error)
}

type Option func(*parseOpts)

func newParseOpts(opts []Option) *parseOpts {
	o := &parseOpts{
		loadPaths: []string{"."},
		readFile:  os.ReadFile,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

// PropertySyntax restricts the document to one of the two property
// syntaxes.  The default accepts both.
func PropertySyntax(s format.PropertySyntax) Option {
	return func(o *parseOpts) { o.syntax = s }
}

// LoadPaths sets the ordered directory list searched by imports.
func LoadPaths(paths ...string) Option {
	return func(o *parseOpts) { o.loadPaths = paths }
}

// Filename names the template for error attribution.
func Filename(name string) Option {
	return func(o *parseOpts) { o.filename = name }
}

// ReadFile injects the byte-read primitive used by import resolution.
func ReadFile(fn func(string) ([]byte, error)) Option {
	return func(o *parseOpts) { o.readFile = fn }
}
