package token

import (
	"strings"

	"github.com/sass-format/go-sass/ir"
)

// LineCommentMarker starts a line that the tokenizer drops before any
// further interpretation.
const LineCommentMarker = "//"

// Line is one logical line of an indented template.  Depth counts
// repetitions of the document's indentation unit.  Num is the 1-based
// source line.  Children is populated by Nest, not Tokenize.
type Line struct {
	Text     string
	Depth    int
	Num      int
	Children []Line
}

// Tokenize splits src into logical lines.  Blank lines and lines whose
// first two characters are the line-comment marker consume a line number
// but produce nothing.  The indentation unit is fixed by the leading
// whitespace of the first indented line; every later line must indent by
// an exact repetition of it.
func Tokenize(src []byte) ([]Line, error) {
	var (
		dst  []Line
		unit string
	)
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for i, raw := range strings.Split(text, "\n") {
		num := i + 1
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(raw, LineCommentMarker) {
			continue
		}
		ws := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
		if ws == "" {
			dst = append(dst, Line{Text: trimmed, Num: num})
			continue
		}
		if len(dst) == 0 {
			return nil, ir.NewSyntaxError(
				"Indenting at the beginning of the document is illegal.", num)
		}
		if unit == "" {
			if strings.ContainsRune(ws, ' ') && strings.ContainsRune(ws, '\t') {
				return nil, ir.NewSyntaxError(
					"Indentation can't use both tabs and spaces.", num)
			}
			unit = ws
			dst = append(dst, Line{Text: trimmed, Depth: 1, Num: num})
			continue
		}
		depth, ok := indentDepth(ws, unit)
		if !ok {
			return nil, ir.Errorf(num,
				"Inconsistent indentation: %s used for indentation, but the rest of the document was indented using %s.",
				DescribeIndent(ws), DescribeIndent(unit))
		}
		dst = append(dst, Line{Text: trimmed, Depth: depth, Num: num})
	}
	return dst, nil
}

// indentDepth reports how many times unit repeats to form ws, exactly.
func indentDepth(ws, unit string) (int, bool) {
	if len(ws)%len(unit) != 0 {
		return 0, false
	}
	n := len(ws) / len(unit)
	if ws != strings.Repeat(unit, n) {
		return 0, false
	}
	return n, true
}
