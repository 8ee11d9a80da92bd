package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	sass "github.com/sass-format/go-sass"
)

func compile(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	w, closeOut, err := cfg.outWriter(cc)
	if err != nil {
		return err
	}
	defer closeOut()
	if len(args) == 0 {
		src, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		return compileOne(cfg, w, src, "")
	}
	for _, file := range args {
		if err := compileFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func compileFile(cfg *MainConfig, w io.Writer, file string) error {
	css, err := sass.CompileFile(file, cfg.compileOpts("")...)
	if err != nil {
		renderError(cfg, err)
		return cli.ExitCodeErr(1)
	}
	_, err = w.Write(css)
	return err
}

func compileOne(cfg *MainConfig, w io.Writer, src []byte, file string) error {
	css, err := sass.Compile(src, cfg.compileOpts(file)...)
	if err != nil {
		renderError(cfg, err)
		return cli.ExitCodeErr(1)
	}
	_, err = w.Write(css)
	return err
}
