package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "t",
			Aliases:     []string{"style"},
			Description: "output style: nested/n, expanded/e, compact/c, compressed/x",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.styleOpt), "(style)"),
		},
		{
			Name:        "s",
			Aliases:     []string{"syntax"},
			Description: "restrict attribute syntax: normal, alternate",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.syntaxOpt), "(syntax)"),
		},
		{
			Name:        "I",
			Description: "add a directory to the import load path (repeatable)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.loadPathOpt), "(dir)"),
		},
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.outOpt), "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sassc").
		WithSynopsis("sassc [opts] [files]").
		WithDescription("sassc compiles indented markup templates to CSS.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compile(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			BuildCommand(cfg),
			DumpCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a.sass b.sass").
		WithDescription("compile two templates and diff the resulting CSS").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Constants: map[string]string{}}
	opts := []*cli.Opt{
		{
			Name:        "c",
			Description: "override a constant (repeatable)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.constOpt), "(name=value)"),
		},
	}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [dir]").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build compiles a directory of templates.

Build operates on a build directory, which defaults to the current
directory.  It looks for a file called 'build.{yaml,yml}' of the form:

  srcDir: stylesheets
  destDir: public/css
  style: compressed
  loadPaths:
  - shared
  constants:
    main_color: "#00ff00"

Every non-partial .sass file under srcDir is compiled into destDir,
mirroring the directory layout.  Files whose name starts with an
underscore are partials and are only pulled in via @import.

Constants can be overridden on the command line with '-c name=value'
or via the environment variable $SASS_CONSTANTS, which may contain a
JSON object such as '{"main_color": "#fff"}'.  Command line overrides
take precedence over the environment, and both take precedence over
the 'constants:' field of the build file.`

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the assembled document tree as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
