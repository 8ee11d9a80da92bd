package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/sass-format/go-sass/ir"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	line := int(params.Position.Line) + 1
	target := findNodeAtLine(doc.root, line)
	if target == nil {
		return nil, nil
	}
	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtLine returns the deepest node declared on the given line.
func findNodeAtLine(root *ir.Node, line int) *ir.Node {
	var best *ir.Node
	var visit func(*ir.Node)
	visit = func(n *ir.Node) {
		if n == nil {
			return
		}
		if n.Type != ir.RootType && n.Line == line {
			best = n
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(root)
	return best
}

func buildHoverText(n *ir.Node) string {
	var parts []string
	switch n.Type {
	case ir.RuleType:
		parts = append(parts, "**Rule**")
		if sel := n.SelectorString(); sel != "" {
			parts = append(parts, fmt.Sprintf("**Selector:** `%s`", sel))
		}
	case ir.AttrType:
		parts = append(parts, "**Attribute**")
		parts = append(parts, fmt.Sprintf("**Name:** `%s`", n.Name))
		if n.Value != "" {
			parts = append(parts, fmt.Sprintf("**Value:** `%s`", n.Value))
		}
	case ir.CommentType:
		parts = append(parts, "**Comment**")
	case ir.DirectiveType:
		parts = append(parts, "**Directive**")
		if n.Value != "" {
			parts = append(parts, fmt.Sprintf("`%s`", n.Value))
		}
	default:
		return ""
	}
	return strings.Join(parts, "\n\n")
}
