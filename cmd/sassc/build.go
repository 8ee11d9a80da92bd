package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sass-format/go-sass/dirbuild"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("%w: build takes at most 1 arg, got %v", cli.ErrUsage, args)
	}
	env, err := dirbuild.LoadEnv()
	if err != nil {
		return err
	}
	// command line overrides win over $SASS_CONSTANTS
	if len(cfg.Constants) > 0 {
		if env == nil {
			env = map[string]string{}
		}
		for name, value := range cfg.Constants {
			env[name] = value
		}
	}
	d, err := dirbuild.OpenDir(dir, env)
	if err != nil {
		return err
	}
	if err := d.Build(); err != nil {
		renderError(cfg.MainConfig, err)
		return cli.ExitCodeErr(1)
	}
	return nil
}
