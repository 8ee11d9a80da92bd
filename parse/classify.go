package parse

import (
	"regexp"
	"strings"

	"github.com/sass-format/go-sass/eval"
	"github.com/sass-format/go-sass/format"
	"github.com/sass-format/go-sass/ir"
	"github.com/sass-format/go-sass/token"
)

// Special characters dispatching line classification.
const (
	attributeChar    = ':'
	constantChar     = '!'
	commentChar      = '/'
	sassCommentChar  = '/'
	cssCommentChar   = '*'
	directiveChar    = '@'
	escapeChar       = '\\'
	mixinDefChar     = '='
	mixinIncludeChar = '+'
	scriptChar       = '='
)

var (
	attributeRx    = regexp.MustCompile(`^:([^\s=:]+)\s*(=?)\s*(.*)$`)
	attrAltCheckRx = regexp.MustCompile(`^[^\s:"]+\s*[=:](\s|$)`)
	attrAltRx      = regexp.MustCompile(`^([^\s=:"]+)\s*(=|:)(?:\s+|$)(.*)$`)
	constantRx     = regexp.MustCompile(`^!([a-zA-Z_][a-zA-Z0-9_-]*)\s*((?:\|\|)?=)\s*(.+)$`)
	cssLiteralRx   = regexp.MustCompile(`^(url\(|")`)
)

// lineResult is the sum of classification outcomes: a node, a list of
// nodes (import expansion), a raw body to splice (mixin inclusion), a
// root-only marker, or nothing at all (silent comment).
type lineResult interface {
	lineResult()
}

type nodeResult struct {
	node *ir.Node
}

type listResult struct {
	nodes []*ir.Node
}

type includeResult struct {
	lines []token.Line
}

type markerResult int

const (
	markerConstant markerResult = iota
	markerMixin
)

type discardResult struct{}

func (nodeResult) lineResult()    {}
func (listResult) lineResult()    {}
func (includeResult) lineResult() {}
func (markerResult) lineResult()  {}
func (discardResult) lineResult() {}

// classify inspects one logical line and produces its typed result.
// Dispatch is on the first character of the trimmed text, with a shape
// match for the alternate attribute syntax as fallback.
func (e *Engine) classify(line *token.Line) (lineResult, error) {
	text := line.Text
	switch text[0] {
	case attributeChar:
		return e.parseAttribute(line, false)
	case constantChar:
		return e.parseConstant(line)
	case commentChar:
		return e.parseComment(line)
	case directiveChar:
		return e.parseDirective(line)
	case escapeChar:
		return nodeResult{ir.Rule(text[1:], line.Num)}, nil
	case mixinDefChar:
		return e.parseMixinDefinition(line)
	case mixinIncludeChar:
		if len(text) == 1 || text[1] == ' ' || text[1] == '\t' {
			return nodeResult{ir.Rule(text, line.Num)}, nil
		}
		return e.parseMixinInclude(line)
	default:
		if attrAltCheckRx.MatchString(text) {
			return e.parseAttribute(line, true)
		}
		return nodeResult{ir.Rule(text, line.Num)}, nil
	}
}

func (e *Engine) parseAttribute(line *token.Line, alternate bool) (lineResult, error) {
	switch {
	case alternate && e.opts.syntax == format.NormalSyntax:
		return nil, ir.NewSyntaxError(
			"Illegal attribute syntax: can't use alternate syntax when property syntax is set to normal.",
			line.Num)
	case !alternate && e.opts.syntax == format.AlternateSyntax:
		return nil, ir.NewSyntaxError(
			"Illegal attribute syntax: can't use normal syntax when property syntax is set to alternate.",
			line.Num)
	}
	rx := attributeRx
	if alternate {
		rx = attrAltRx
	}
	m := rx.FindStringSubmatch(line.Text)
	if m == nil || m[1] == "" {
		return nil, ir.Errorf(line.Num, "Invalid attribute: %q.", line.Text)
	}
	name, eq, value := m[1], m[2], m[3]
	if strings.HasPrefix(strings.TrimSpace(eq), string(scriptChar)) {
		v, err := e.evaluate(value, line.Num)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nodeResult{ir.Attr(name, value, line.Num)}, nil
}

func (e *Engine) parseConstant(line *token.Line) (lineResult, error) {
	m := constantRx.FindStringSubmatch(line.Text)
	if m == nil {
		return nil, ir.Errorf(line.Num, "Invalid constant: %q.", line.Text)
	}
	name, op, value := m[1], m[2], m[3]
	v, err := e.evaluate(value, line.Num)
	if err != nil {
		return nil, err
	}
	if op == "||=" {
		e.consts.SetDefault(name, v)
	} else {
		e.consts.Set(name, v)
	}
	return markerConstant, nil
}

func (e *Engine) parseComment(line *token.Line) (lineResult, error) {
	text := line.Text
	switch {
	case len(text) > 1 && text[1] == sassCommentChar:
		return discardResult{}, nil
	case len(text) > 1 && text[1] == cssCommentChar:
		body := strings.TrimSpace(strings.TrimPrefix(text[2:], " "))
		return nodeResult{ir.Comment(body, true, line.Num)}, nil
	default:
		return nodeResult{ir.Rule(text, line.Num)}, nil
	}
}

func (e *Engine) parseDirective(line *token.Line) (lineResult, error) {
	rest := line.Text[1:]
	name := rest
	value := ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		name, value = rest[:i], strings.TrimSpace(rest[i:])
	}
	if name == "import" && value != "" && !cssLiteralRx.MatchString(value) {
		return e.importFiles(value, line)
	}
	return nodeResult{ir.Directive(line.Text, line.Num)}, nil
}

func (e *Engine) parseMixinDefinition(line *token.Line) (lineResult, error) {
	name := strings.TrimSpace(line.Text[1:])
	if name == "" {
		return nil, ir.Errorf(line.Num, "Invalid mixin definition: %q.", line.Text)
	}
	e.mixins.Define(name, line.Children)
	return markerMixin, nil
}

func (e *Engine) parseMixinInclude(line *token.Line) (lineResult, error) {
	name := line.Text[1:]
	body, ok := e.mixins.Lookup(name)
	if !ok {
		return nil, ir.Errorf(line.Num, "Undefined mixin '%s'.", name)
	}
	return includeResult{lines: body}, nil
}

// evaluate runs the external expression evaluator and rewraps its
// failures as syntax errors at the given line.
func (e *Engine) evaluate(src string, line int) (string, error) {
	v, err := eval.Evaluate(src, e.consts, line)
	if err != nil {
		msg := strings.TrimPrefix(err.Error(), eval.ErrEval.Error()+": ")
		return "", ir.NewSyntaxError(msg, line)
	}
	return v, nil
}
