package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sass-format/go-sass/ir"
)

// renderError prints a compile failure to stderr, coloring the prefix
// when stderr is a terminal or -color was given.
func renderError(cfg *MainConfig, err error) {
	w := os.Stderr
	prefix := color.New(color.FgRed, color.Bold)
	if !cfg.Color && !isatty.IsTerminal(w.Fd()) {
		prefix.DisableColor()
	}
	var se *ir.SyntaxError
	if errors.As(err, &se) {
		fmt.Fprintf(w, "%s %s\n", prefix.Sprint("Syntax error:"), se.Error())
		return
	}
	fmt.Fprintf(w, "%s %s\n", prefix.Sprint("error:"), err)
}
