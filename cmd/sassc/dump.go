package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sass-format/go-sass/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		src, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		return dumpSource(cfg, cc.Out, src, "")
	}
	for _, file := range args {
		src, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := dumpSource(cfg, cc.Out, src, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpSource(cfg *DumpConfig, w io.Writer, src []byte, file string) error {
	root, err := parse.Parse(src, cfg.parseOpts(file)...)
	if err != nil {
		renderError(cfg.MainConfig, err)
		return cli.ExitCodeErr(1)
	}
	d, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
