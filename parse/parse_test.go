package parse

import (
	"errors"
	"testing"

	"github.com/sass-format/go-sass/format"
	"github.com/sass-format/go-sass/ir"
)

func mustParse(t *testing.T, src string, opts ...Option) *ir.Node {
	t.Helper()
	root, err := Parse([]byte(src), opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return root
}

func syntaxErr(t *testing.T, src string, opts ...Option) *ir.SyntaxError {
	t.Helper()
	_, err := Parse([]byte(src), opts...)
	if err == nil {
		t.Fatalf("parse %q: no error", src)
	}
	var se *ir.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("parse %q: not a SyntaxError: %v", src, err)
	}
	return se
}

func TestParseRuleWithAttr(t *testing.T) {
	root := mustParse(t, "a\n  :color red\n")
	if len(root.Children) != 1 {
		t.Fatalf("got %d children", len(root.Children))
	}
	rule := root.Children[0]
	if rule.Type != ir.RuleType || rule.SelectorString() != "a" {
		t.Fatalf("rule: %+v", rule)
	}
	if len(rule.Children) != 1 {
		t.Fatalf("got %d attrs", len(rule.Children))
	}
	attr := rule.Children[0]
	if attr.Type != ir.AttrType || attr.Name != "color" || attr.Value != "red" {
		t.Errorf("attr: %+v", attr)
	}
	if attr.Parent != rule {
		t.Error("attr not reparented")
	}
}

func TestParseAlternateSyntax(t *testing.T) {
	root := mustParse(t, "!c = red\na\n  color: red\n  border= 1px solid !c\n")
	rule := root.Children[0]
	if rule.Children[0].Name != "color" || rule.Children[0].Value != "red" {
		t.Errorf("alternate attr: %+v", rule.Children[0])
	}
	if rule.Children[1].Name != "border" || rule.Children[1].Value != "1px solid red" {
		t.Errorf("alternate script attr: %+v", rule.Children[1])
	}
}

func TestParseSyntaxRestriction(t *testing.T) {
	se := syntaxErr(t, "a\n  color: red\n", PropertySyntax(format.NormalSyntax))
	want := "Illegal attribute syntax: can't use alternate syntax when property syntax is set to normal."
	if se.Msg != want {
		t.Errorf("got %q, want %q", se.Msg, want)
	}
	se = syntaxErr(t, "a\n  :color red\n", PropertySyntax(format.AlternateSyntax))
	want = "Illegal attribute syntax: can't use normal syntax when property syntax is set to alternate."
	if se.Msg != want {
		t.Errorf("got %q, want %q", se.Msg, want)
	}
}

func TestParseContinuation(t *testing.T) {
	root := mustParse(t, "a,\nb\n  :c d\n")
	if len(root.Children) != 1 {
		t.Fatalf("got %d children", len(root.Children))
	}
	rule := root.Children[0]
	if rule.SelectorString() != "a, b" {
		t.Errorf("selector: %q", rule.SelectorString())
	}
	if len(rule.Children) != 1 || rule.Children[0].Name != "c" {
		t.Errorf("children: %+v", rule.Children)
	}
	if rule.Continued {
		t.Error("assembled rule still marked continued")
	}
}

func TestParseContinuationChain(t *testing.T) {
	root := mustParse(t, "a,\nb,\nc\n  :x y\n")
	if got := root.Children[0].SelectorString(); got != "a, b, c" {
		t.Errorf("selector: %q", got)
	}
}

func TestParseTrailingComma(t *testing.T) {
	for _, src := range []string{
		"a,\n",
		"a,\nb,\n",
		"a,\n!x = 5\n",
		"a,\n@import foo.css\n",
	} {
		se := syntaxErr(t, src)
		if se.Msg != "Rules can't end in commas." {
			t.Errorf("%q: got %q", src, se.Msg)
		}
	}
}

func TestParseContinuedWithChildren(t *testing.T) {
	se := syntaxErr(t, "a,\n  :c d\nb\n")
	if se.Msg != "Rules can't end in commas." {
		t.Errorf("got %q", se.Msg)
	}
}

func TestParseConstants(t *testing.T) {
	e := New()
	root, err := e.Parse([]byte("!x = 5px\na\n  :width = !x\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("constant line leaked a node: %d children", len(root.Children))
	}
	attr := root.Children[0].Children[0]
	if attr.Value != "5px" {
		t.Errorf("got %q, want %q", attr.Value, "5px")
	}
	if v, ok := e.Constants().Get("x"); !ok || v != "5px" {
		t.Errorf("table: %q, %v", v, ok)
	}
}

func TestParseConditionalAssignment(t *testing.T) {
	e := New()
	_, err := e.Parse([]byte("!x = 5\n!x ||= 10\n!y ||= 7\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := e.Constants().Get("x"); v != "5" {
		t.Errorf("x = %q, want 5", v)
	}
	if v, _ := e.Constants().Get("y"); v != "7" {
		t.Errorf("y = %q, want 7", v)
	}
}

func TestParseConstantArithmetic(t *testing.T) {
	root := mustParse(t, "!margin = 4\na\n  :margin-left = (!margin + 2) * 2\n")
	attr := root.Children[0].Children[0]
	if attr.Value != "12" {
		t.Errorf("got %q, want 12", attr.Value)
	}
}

func TestParseConstantErrors(t *testing.T) {
	for _, tc := range []struct {
		src string
		msg string
	}{
		{
			src: "!x = 5\n  a\n",
			msg: "Illegal nesting: Nothing may be nested beneath constants.",
		},
		{
			src: "a\n  !x = 5\n",
			msg: "Constants may only be declared at the root of a document.",
		},
		{
			src: "a\n  :c = !nope\n",
			msg: "Undefined constant: !nope",
		},
	} {
		se := syntaxErr(t, tc.src)
		if se.Msg != tc.msg {
			t.Errorf("%q: got %q, want %q", tc.src, se.Msg, tc.msg)
		}
	}
}

func TestParseMixin(t *testing.T) {
	root := mustParse(t, "=large\n  :font-size 20px\na\n  +large\n  :color red\n")
	if len(root.Children) != 1 {
		t.Fatalf("got %d children", len(root.Children))
	}
	rule := root.Children[0]
	if len(rule.Children) != 2 {
		t.Fatalf("got %d attrs", len(rule.Children))
	}
	if rule.Children[0].Name != "font-size" || rule.Children[0].Value != "20px" {
		t.Errorf("spliced attr: %+v", rule.Children[0])
	}
}

func TestParseMixinPerSiteConstants(t *testing.T) {
	src := "!c = red\n=col\n  :color = !c\na\n  +col\n!c = blue\nb\n  +col\n"
	root := mustParse(t, src)
	if len(root.Children) != 2 {
		t.Fatalf("got %d children", len(root.Children))
	}
	if v := root.Children[0].Children[0].Value; v != "red" {
		t.Errorf("first inclusion: %q, want red", v)
	}
	if v := root.Children[1].Children[0].Value; v != "blue" {
		t.Errorf("second inclusion: %q, want blue", v)
	}
}

func TestParseMixinWithRules(t *testing.T) {
	root := mustParse(t, "=deco\n  b\n    :x y\na\n  +deco\n")
	rule := root.Children[0]
	if len(rule.Children) != 1 || rule.Children[0].SelectorString() != "b" {
		t.Fatalf("nested rule not spliced: %+v", rule.Children)
	}
}

func TestParseMixinErrors(t *testing.T) {
	for _, tc := range []struct {
		src string
		msg string
	}{
		{
			src: "a\n  +nope\n",
			msg: "Undefined mixin 'nope'.",
		},
		{
			src: "a\n  =large\n",
			msg: "Mixins may only be defined at the root of a document.",
		},
	} {
		se := syntaxErr(t, tc.src)
		if se.Msg != tc.msg {
			t.Errorf("%q: got %q, want %q", tc.src, se.Msg, tc.msg)
		}
	}
}

func TestParseSiblingSelectorNotInclude(t *testing.T) {
	root := mustParse(t, "a\n  + b\n    :x y\n")
	child := root.Children[0].Children[0]
	if child.Type != ir.RuleType || child.SelectorString() != "+ b" {
		t.Errorf("got %+v", child)
	}
}

func TestParseComments(t *testing.T) {
	root := mustParse(t, "a\n  :color red\n  // gone\n/* kept\n  and this\n")
	if len(root.Children) != 2 {
		t.Fatalf("got %d children", len(root.Children))
	}
	rule := root.Children[0]
	if len(rule.Children) != 1 {
		t.Errorf("silent comment survived: %+v", rule.Children)
	}
	comment := root.Children[1]
	if comment.Type != ir.CommentType || !comment.Loud {
		t.Fatalf("comment: %+v", comment)
	}
	if comment.Value != "kept" || len(comment.Lines) != 1 || comment.Lines[0] != "and this" {
		t.Errorf("comment body: %q %v", comment.Value, comment.Lines)
	}
}

func TestParseSilentCommentChildrenDiscarded(t *testing.T) {
	root := mustParse(t, "a\n  // gone\n    with children\n  :x y\n")
	rule := root.Children[0]
	if len(rule.Children) != 1 || rule.Children[0].Name != "x" {
		t.Errorf("got %+v", rule.Children)
	}
}

func TestParseEscape(t *testing.T) {
	root := mustParse(t, "\\!x = 5\n")
	rule := root.Children[0]
	if rule.Type != ir.RuleType || rule.SelectorString() != "!x = 5" {
		t.Errorf("got %+v", rule)
	}
}

func TestParseDirective(t *testing.T) {
	root := mustParse(t, "@media print\n  a\n    :color red\n")
	dir := root.Children[0]
	if dir.Type != ir.DirectiveType || dir.Value != "@media print" {
		t.Fatalf("directive: %+v", dir)
	}
	if len(dir.Children) != 1 || dir.Children[0].SelectorString() != "a" {
		t.Errorf("directive children: %+v", dir.Children)
	}
}

func TestParseDirectiveNonRoot(t *testing.T) {
	se := syntaxErr(t, "a\n  @media print\n")
	if se.Msg != "Directives may only be used at the root of a document." {
		t.Errorf("got %q", se.Msg)
	}
}

func TestParseErrorLocation(t *testing.T) {
	se := syntaxErr(t, "a\n  !x = 5\n", Filename("main.sass"))
	if se.Line != 2 {
		t.Errorf("line: %d", se.Line)
	}
	if se.Filename != "main.sass" {
		t.Errorf("filename: %q", se.Filename)
	}
}
