package parse

import (
	"errors"

	"github.com/sass-format/go-sass/eval"
	"github.com/sass-format/go-sass/ir"
	"github.com/sass-format/go-sass/token"
)

// Engine is one compilation unit: a template plus its options, constant
// table, mixin table and filename.  Imports construct nested engines and
// thread the tables through explicitly.
type Engine struct {
	opts     *parseOpts
	consts   *eval.Constants
	mixins   *Mixins
	filename string
}

func New(opts ...Option) *Engine {
	o := newParseOpts(opts)
	return &Engine{
		opts:     o,
		consts:   eval.NewConstants(),
		mixins:   NewMixins(),
		filename: o.filename,
	}
}

// Parse runs the full pipeline over d with the given options and returns
// the root of the assembled tree.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	return New(opts...).Parse(d)
}

// Constants exposes the engine's constant table after parsing.
func (e *Engine) Constants() *eval.Constants {
	return e.consts
}

// Mixins exposes the engine's mixin table after parsing.
func (e *Engine) Mixins() *Mixins {
	return e.mixins
}

func (e *Engine) Parse(d []byte) (*ir.Node, error) {
	lines, err := token.Tokenize(d)
	if err != nil {
		return nil, e.located(err)
	}
	nested, err := token.Nest(lines)
	if err != nil {
		return nil, e.located(err)
	}
	root := ir.Root()
	root.Filename = e.filename
	if err := e.appendChildren(root, nested, true); err != nil {
		return nil, e.located(err)
	}
	return root, nil
}

// located stamps the engine's filename on a syntax error that does not
// yet carry one.
func (e *Engine) located(err error) error {
	var se *ir.SyntaxError
	if errors.As(err, &se) && se.Filename == "" {
		se.Filename = e.filename
	}
	return err
}

// appendChildren assembles one sibling run into parent.  The continued
// rule accumulator is scoped to this level: a trailing-comma rule is held
// back until the following rule closes its selector list.
func (e *Engine) appendChildren(parent *ir.Node, lines []token.Line, root bool) error {
	var cont *ir.Node
	for i := range lines {
		if err := e.appendLine(parent, &lines[i], root, &cont); err != nil {
			return err
		}
	}
	if cont != nil {
		return ir.NewSyntaxError("Rules can't end in commas.", cont.Line)
	}
	return nil
}

func (e *Engine) appendLine(parent *ir.Node, line *token.Line, root bool, cont **ir.Node) error {
	res, err := e.classify(line)
	if err != nil {
		return err
	}
	switch r := res.(type) {
	case discardResult:
		// silent comment: the line and its children vanish
		return nil
	case markerResult:
		if *cont != nil {
			return ir.NewSyntaxError("Rules can't end in commas.", (*cont).Line)
		}
		if r == markerConstant && len(line.Children) > 0 {
			return ir.NewSyntaxError(
				"Illegal nesting: Nothing may be nested beneath constants.", line.Num)
		}
		if !root {
			if r == markerConstant {
				return ir.NewSyntaxError(
					"Constants may only be declared at the root of a document.", line.Num)
			}
			return ir.NewSyntaxError(
				"Mixins may only be defined at the root of a document.", line.Num)
		}
		return nil
	case includeResult:
		if *cont != nil {
			return ir.NewSyntaxError("Rules can't end in commas.", (*cont).Line)
		}
		if len(line.Children) > 0 {
			return ir.NewSyntaxError(
				"Illegal nesting: Nothing may be nested beneath mixin includes.", line.Num)
		}
		// splice the body through the same pipeline; constants resolve
		// against the table as it stands at this inclusion site
		for i := range r.lines {
			if err := e.appendLine(parent, &r.lines[i], root, cont); err != nil {
				return err
			}
		}
		return nil
	case listResult:
		if *cont != nil {
			return ir.NewSyntaxError("Rules can't end in commas.", (*cont).Line)
		}
		if len(line.Children) > 0 {
			return ir.NewSyntaxError(
				"Illegal nesting: Nothing may be nested beneath import directives.", line.Num)
		}
		for _, n := range r.nodes {
			if err := e.appendNode(parent, n, line, root, cont); err != nil {
				return err
			}
		}
		return nil
	case nodeResult:
		node := r.node
		switch {
		case node.Type == ir.CommentType:
			// comments are opaque: children attach verbatim
			node.Lines = flattenLines(line.Children)
		case len(line.Children) > 0:
			if node.Type == ir.RuleType && node.Continued {
				return ir.NewSyntaxError("Rules can't end in commas.", line.Num)
			}
			if err := e.appendChildren(node, line.Children, false); err != nil {
				return err
			}
		}
		return e.appendNode(parent, node, line, root, cont)
	default:
		return ir.Errorf(line.Num, "internal: unhandled classification %T", res)
	}
}

// appendNode attaches one assembled node, driving the continuation state
// machine and the root-only check.  Root-only validation uses the call
// site's rootness even for nodes produced by expansion.
func (e *Engine) appendNode(parent *ir.Node, node *ir.Node, line *token.Line, root bool, cont **ir.Node) error {
	if node.Filename == "" {
		node.Filename = e.filename
	}
	if node.Type == ir.RuleType && node.Continued {
		if len(node.Children) > 0 {
			return ir.NewSyntaxError("Rules can't end in commas.", node.Line)
		}
		if *cont != nil {
			(*cont).AddSelectors(node)
		} else {
			*cont = node
		}
		return nil
	}
	if *cont != nil {
		acc := *cont
		if node.Type != ir.RuleType {
			return ir.NewSyntaxError("Rules can't end in commas.", acc.Line)
		}
		acc.AddSelectors(node)
		acc.Children = node.Children
		for _, c := range acc.Children {
			c.Parent = acc
		}
		acc.Continued = false
		node = acc
		*cont = nil
	}
	if node.Type == ir.DirectiveType && !root {
		return ir.NewSyntaxError(
			"Directives may only be used at the root of a document.", line.Num)
	}
	parent.Append(node)
	return nil
}

func flattenLines(lines []token.Line) []string {
	var out []string
	for i := range lines {
		out = append(out, lines[i].Text)
		out = append(out, flattenLines(lines[i].Children)...)
	}
	return out
}
