package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Import bool
	Eval   bool
	Build  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Import = boolEnv("SASS_DEBUG_IMPORT")
	d.Eval = boolEnv("SASS_DEBUG_EVAL")
	d.Build = boolEnv("SASS_DEBUG_BUILD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Import() bool {
	return d.Import
}
func Eval() bool {
	return d.Eval
}
func Build() bool {
	return d.Build
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
