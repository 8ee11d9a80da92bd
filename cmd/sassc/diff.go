package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	sass "github.com/sass-format/go-sass"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := compileCSS(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := compileCSS(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if !hasChange(diffs) {
		return nil
	}
	if useColor(cfg.MainConfig, cc) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		printPlain(cfg, cc, diffs)
	}
	return cli.ExitCodeErr(1)
}

func compileCSS(cfg *MainConfig, file string) (string, error) {
	css, err := sass.CompileFile(file, cfg.compileOpts("")...)
	if err != nil {
		renderError(cfg, err)
		return "", cli.ExitCodeErr(1)
	}
	return string(css), nil
}

func hasChange(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

func useColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func printPlain(cfg *DiffConfig, cc *cli.Context, diffs []diffmatchpatch.Diff) {
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "{-%s-}", d.Text)
		default:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	fmt.Fprintln(cc.Out)
}
