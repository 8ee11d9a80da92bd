package ir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is the root of every fatal compilation error.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is the single error kind produced by tokenization, tree
// building, classification and assembly.  Line is 1-based.  Filename is
// empty for string templates.  Backtrace lists the import chain from
// innermost to outermost file.
type SyntaxError struct {
	Msg       string
	Line      int
	Filename  string
	Backtrace []string
}

func NewSyntaxError(msg string, line int) *SyntaxError {
	return &SyntaxError{Msg: msg, Line: line}
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s", ErrSyntax.Error(), e.Msg)
	if e.Filename != "" {
		fmt.Fprintf(b, " (line %d of %s)", e.Line, e.Filename)
	} else {
		fmt.Fprintf(b, " (line %d)", e.Line)
	}
	for _, f := range e.Backtrace {
		fmt.Fprintf(b, "\n\timported from %s", f)
	}
	return b.String()
}

// AddBacktrace records that the error crossed an import boundary into the
// named importing file.
func (e *SyntaxError) AddBacktrace(filename string) {
	e.Backtrace = append(e.Backtrace, filename)
}

// Errorf builds a SyntaxError with a formatted message.
func Errorf(line int, msg string, args ...any) *SyntaxError {
	return NewSyntaxError(fmt.Sprintf(msg, args...), line)
}
