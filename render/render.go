// Package render serializes an assembled document tree to CSS text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sass-format/go-sass/format"
	"github.com/sass-format/go-sass/ir"
)

// Render writes root's children as CSS in the configured style.
func Render(w io.Writer, root *ir.Node, opts ...RenderOption) error {
	o := &renderOpts{}
	for _, f := range opts {
		f(o)
	}
	r := &renderer{style: o.style}
	var chunks []string
	for _, child := range root.Children {
		chunk, err := r.node(child, nil, 0)
		if err != nil {
			return err
		}
		if chunk == "" {
			continue
		}
		chunks = append(chunks, chunk)
	}
	if len(chunks) == 0 {
		return nil
	}
	out := strings.Join(chunks, r.chunkSep())
	if r.style != format.Compressed {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

// String renders to a string.
func String(root *ir.Node, opts ...RenderOption) (string, error) {
	b := &strings.Builder{}
	if err := Render(b, root, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

type renderer struct {
	style format.Style
}

func (r *renderer) chunkSep() string {
	switch r.style {
	case format.Expanded:
		return "\n\n"
	case format.Compressed:
		return ""
	default:
		return "\n"
	}
}

func (r *renderer) node(n *ir.Node, parents []string, depth int) (string, error) {
	switch n.Type {
	case ir.RuleType:
		return r.rule(n, parents, depth)
	case ir.CommentType:
		return r.comment(n, depth), nil
	case ir.DirectiveType:
		return r.directive(n, depth)
	case ir.AttrType:
		return "", fmt.Errorf("attribute %q may not appear outside a rule (line %d)", n.Name, n.Line)
	default:
		return "", fmt.Errorf("unexpected %s node (line %d)", n.Type, n.Line)
	}
}

func (r *renderer) rule(n *ir.Node, parents []string, depth int) (string, error) {
	groups := combineSelectors(parents, n.SelectorGroups())
	attrs, rest, err := splitChildren(n)
	if err != nil {
		return "", err
	}
	var chunks []string
	if len(attrs) > 0 {
		sel := strings.Join(groups, r.selSep())
		chunks = append(chunks, r.block(sel, attrs, depth))
	}
	childDepth := depth
	if len(attrs) > 0 {
		childDepth++
	}
	for _, c := range rest {
		chunk, err := r.node(c, groups, childDepth)
		if err != nil {
			return "", err
		}
		if chunk == "" {
			continue
		}
		chunks = append(chunks, chunk)
	}
	return strings.Join(chunks, r.chunkSep()), nil
}

func (r *renderer) directive(n *ir.Node, depth int) (string, error) {
	if len(n.Children) == 0 {
		return n.Value + ";", nil
	}
	var inner []string
	for _, c := range n.Children {
		chunk, err := r.node(c, nil, depth+1)
		if err != nil {
			return "", err
		}
		if chunk == "" {
			continue
		}
		inner = append(inner, chunk)
	}
	body := strings.Join(inner, r.chunkSep())
	switch r.style {
	case format.Compressed:
		return n.Value + "{" + body + "}", nil
	case format.Compact:
		return n.Value + " {\n" + body + "\n}", nil
	default:
		return n.Value + " {\n" + body + r.blockClose(depth), nil
	}
}

func (r *renderer) comment(n *ir.Node, depth int) string {
	if r.style == format.Compressed {
		return ""
	}
	ind := r.indent(depth)
	lines := append([]string{n.Value}, n.Lines...)
	if len(lines) == 1 {
		return ind + "/* " + lines[0] + " */"
	}
	b := &strings.Builder{}
	b.WriteString(ind + "/* " + lines[0])
	for _, ln := range lines[1:] {
		b.WriteString("\n" + ind + " * " + ln)
	}
	b.WriteString(" */")
	return b.String()
}

// attr is one flattened name/value pair, namespace prefixes applied.
type attr struct {
	name  string
	value string
}

// splitChildren separates a rule's attribute children (flattened through
// attribute namespace nesting) from its nested rules and comments.
func splitChildren(n *ir.Node) ([]attr, []*ir.Node, error) {
	var (
		attrs []attr
		rest  []*ir.Node
	)
	for _, c := range n.Children {
		if c.Type != ir.AttrType {
			rest = append(rest, c)
			continue
		}
		flat, err := flattenAttr("", c)
		if err != nil {
			return nil, nil, err
		}
		attrs = append(attrs, flat...)
	}
	return attrs, rest, nil
}

func flattenAttr(prefix string, n *ir.Node) ([]attr, error) {
	name := prefix + n.Name
	var out []attr
	if n.Value != "" {
		out = append(out, attr{name: name, value: n.Value})
	}
	if len(n.Children) == 0 {
		if n.Value == "" {
			return nil, fmt.Errorf("invalid attribute: %q has no value (line %d)", name, n.Line)
		}
		return out, nil
	}
	for _, c := range n.Children {
		if c.Type != ir.AttrType {
			return nil, fmt.Errorf("illegal nesting: only attributes may be nested beneath attributes (line %d)", c.Line)
		}
		flat, err := flattenAttr(name+"-", c)
		if err != nil {
			return nil, err
		}
		out = append(out, flat...)
	}
	return out, nil
}

func (r *renderer) block(sel string, attrs []attr, depth int) string {
	switch r.style {
	case format.Compressed:
		parts := make([]string, len(attrs))
		for i, a := range attrs {
			parts[i] = a.name + ":" + a.value
		}
		return sel + "{" + strings.Join(parts, ";") + "}"
	case format.Compact:
		parts := make([]string, len(attrs))
		for i, a := range attrs {
			parts[i] = a.name + ": " + a.value + ";"
		}
		return sel + " { " + strings.Join(parts, " ") + " }"
	case format.Expanded:
		b := &strings.Builder{}
		b.WriteString(sel + " {\n")
		for _, a := range attrs {
			b.WriteString("  " + a.name + ": " + a.value + ";\n")
		}
		b.WriteString("}")
		return b.String()
	default: // nested
		ind := r.indent(depth)
		lines := make([]string, len(attrs))
		for i, a := range attrs {
			lines[i] = ind + "  " + a.name + ": " + a.value + ";"
		}
		return ind + sel + " {\n" + strings.Join(lines, "\n") + " }"
	}
}

func (r *renderer) blockClose(depth int) string {
	if r.style == format.Nested {
		return " }"
	}
	return "\n}"
}

func (r *renderer) selSep() string {
	if r.style == format.Compressed {
		return ","
	}
	return ", "
}

func (r *renderer) indent(depth int) string {
	if r.style != format.Nested {
		return ""
	}
	return strings.Repeat("  ", depth)
}

func combineSelectors(parents, groups []string) []string {
	if len(parents) == 0 {
		return groups
	}
	out := make([]string, 0, len(parents)*len(groups))
	for _, p := range parents {
		for _, g := range groups {
			out = append(out, p+" "+g)
		}
	}
	return out
}
