package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	sass "github.com/sass-format/go-sass"
	"github.com/sass-format/go-sass/format"
	"github.com/sass-format/go-sass/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored error output'"`

	Style     format.Style
	Syntax    format.PropertySyntax
	LoadPaths []string
	Out       string

	Main *cli.Command
}

func (cfg *MainConfig) styleOpt(_ *cli.Context, v string) (any, error) {
	s, err := format.ParseStyle(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Style = s
	return s, nil
}

func (cfg *MainConfig) syntaxOpt(_ *cli.Context, v string) (any, error) {
	s, err := format.ParsePropertySyntax(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Syntax = s
	return s, nil
}

func (cfg *MainConfig) loadPathOpt(_ *cli.Context, v string) (any, error) {
	cfg.LoadPaths = append(cfg.LoadPaths, v)
	return v, nil
}

func (cfg *MainConfig) outOpt(_ *cli.Context, v string) (any, error) {
	cfg.Out = v
	return v, nil
}

// compileOpts translates the command line into pipeline options for one
// input file ("" means stdin).
func (cfg *MainConfig) compileOpts(file string) []sass.Option {
	opts := []sass.Option{sass.WithStyle(cfg.Style)}
	if cfg.Syntax != format.AnySyntax {
		opts = append(opts, sass.WithPropertySyntax(cfg.Syntax))
	}
	lps := cfg.LoadPaths
	if len(lps) == 0 {
		lps = []string{"."}
	}
	opts = append(opts, sass.WithLoadPaths(lps...))
	if file != "" {
		opts = append(opts, sass.WithFilename(file))
	}
	return opts
}

// parseOpts translates the command line into parser options for one
// input file ("" means stdin).
func (cfg *MainConfig) parseOpts(file string) []parse.Option {
	var opts []parse.Option
	if cfg.Syntax != format.AnySyntax {
		opts = append(opts, parse.PropertySyntax(cfg.Syntax))
	}
	lps := cfg.LoadPaths
	if len(lps) == 0 {
		lps = []string{"."}
	}
	opts = append(opts, parse.LoadPaths(lps...))
	if file != "" {
		opts = append(opts, parse.Filename(file))
	}
	return opts
}

// outWriter resolves -o, falling back to the command's stdout.
func (cfg *MainConfig) outWriter(cc *cli.Context) (*os.File, func() error, error) {
	if cfg.Out == "" {
		if f, ok := cc.Out.(*os.File); ok {
			return f, func() error { return nil }, nil
		}
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create %q: %w", cfg.Out, err)
	}
	return f, f.Close, nil
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Constants map[string]string

	Build *cli.Command
}

func (cfg *BuildConfig) constOpt(_ *cli.Context, v string) (any, error) {
	name, value, ok := splitEq(v)
	if !ok {
		return nil, fmt.Errorf("%w: -c wants name=value, got %q", cli.ErrUsage, v)
	}
	cfg.Constants[name] = value
	return v, nil
}

func splitEq(v string) (string, string, bool) {
	for i := 0; i < len(v); i++ {
		if v[i] == '=' {
			return v[:i], v[i+1:], i > 0
		}
	}
	return "", "", false
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
