package token

import (
	"errors"
	"testing"

	"github.com/sass-format/go-sass/ir"
)

func TestTokenizeDepths(t *testing.T) {
	lines, err := Tokenize([]byte("a\n  b\n    c\nd\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{
		{Text: "a", Depth: 0, Num: 1},
		{Text: "b", Depth: 1, Num: 2},
		{Text: "c", Depth: 2, Num: 3},
		{Text: "d", Depth: 0, Num: 4},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		g := lines[i]
		if g.Text != w.Text || g.Depth != w.Depth || g.Num != w.Num {
			t.Errorf("line %d: got %+v, want %+v", i, g, w)
		}
	}
}

func TestTokenizeSkipsBlanksAndLineComments(t *testing.T) {
	lines, err := Tokenize([]byte("a\n\n   \n// dropped\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1].Text != "b" || lines[1].Num != 5 {
		t.Errorf("blank lines must consume line numbers: got %+v", lines[1])
	}
}

func TestTokenizeTabUnit(t *testing.T) {
	lines, err := Tokenize([]byte("a\n\tb\n\t\tc\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lines[1].Depth != 1 || lines[2].Depth != 2 {
		t.Errorf("tab depths: got %d, %d", lines[1].Depth, lines[2].Depth)
	}
}

func TestTokenizeCRLF(t *testing.T) {
	lines, err := Tokenize([]byte("a\r\n  b\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1].Text != "b" || lines[1].Depth != 1 {
		t.Errorf("crlf handling: got %+v", lines)
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		msg  string
		line int
	}{
		{
			in:   "  a\n",
			msg:  "Indenting at the beginning of the document is illegal.",
			line: 1,
		},
		{
			in:   "a\n \tb\n",
			msg:  "Indentation can't use both tabs and spaces.",
			line: 2,
		},
		{
			in:   "a\n  b\n   c\n",
			msg:  "Inconsistent indentation: 3 spaces used for indentation, but the rest of the document was indented using 2 spaces.",
			line: 3,
		},
		{
			in:   "a\n  b\n\tc\n",
			msg:  "Inconsistent indentation: 1 tab used for indentation, but the rest of the document was indented using 2 spaces.",
			line: 3,
		},
	} {
		_, err := Tokenize([]byte(tc.in))
		if err == nil {
			t.Errorf("%q: no error", tc.in)
			continue
		}
		if !errors.Is(err, ir.ErrSyntax) {
			t.Errorf("%q: error does not wrap ErrSyntax: %v", tc.in, err)
		}
		var se *ir.SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: not a SyntaxError: %v", tc.in, err)
			continue
		}
		if se.Msg != tc.msg {
			t.Errorf("%q: got %q, want %q", tc.in, se.Msg, tc.msg)
		}
		if se.Line != tc.line {
			t.Errorf("%q: got line %d, want %d", tc.in, se.Line, tc.line)
		}
	}
}

func TestNest(t *testing.T) {
	lines, err := Tokenize([]byte("a\n  b\n    c\n  d\ne\n"))
	if err != nil {
		t.Fatal(err)
	}
	nested, err := Nest(lines)
	if err != nil {
		t.Fatal(err)
	}
	if len(nested) != 2 {
		t.Fatalf("got %d roots, want 2", len(nested))
	}
	a := nested[0]
	if a.Text != "a" || len(a.Children) != 2 {
		t.Fatalf("a: got %+v", a)
	}
	if a.Children[0].Text != "b" || len(a.Children[0].Children) != 1 {
		t.Errorf("b: got %+v", a.Children[0])
	}
	if a.Children[0].Children[0].Text != "c" {
		t.Errorf("c: got %+v", a.Children[0].Children[0])
	}
	if a.Children[1].Text != "d" {
		t.Errorf("d: got %+v", a.Children[1])
	}
	if nested[1].Text != "e" {
		t.Errorf("e: got %+v", nested[1])
	}
}

func TestNestTooDeep(t *testing.T) {
	lines, err := Tokenize([]byte("a\n  b\nc\n    d\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Nest(lines)
	if err == nil {
		t.Fatal("no error")
	}
	var se *ir.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("not a SyntaxError: %v", err)
	}
	want := "The line was indented 2 levels deeper than the previous line."
	if se.Msg != want {
		t.Errorf("got %q, want %q", se.Msg, want)
	}
	if se.Line != 4 {
		t.Errorf("got line %d, want 4", se.Line)
	}
}

func TestDescribeIndent(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"  ", "2 spaces"},
		{" ", "1 space"},
		{"\t", "1 tab"},
		{"\t\t", "2 tabs"},
	} {
		if got := DescribeIndent(tc.in); got != tc.want {
			t.Errorf("DescribeIndent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
