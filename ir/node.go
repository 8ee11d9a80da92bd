package ir

import "strings"

// Node is one node of an assembled document tree.  The Type field selects
// which of the variant fields are meaningful.
type Node struct {
	Type     Type   `json:"type"`
	Parent   *Node  `json:"-"`
	Line     int    `json:"line,omitempty"`
	Filename string `json:"filename,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// RuleType.  Selectors holds one entry per source line that
	// contributed to the rule; Continued marks a selector list that is
	// still open (trailing comma) and never survives assembly.
	Selectors []string `json:"selectors,omitempty"`
	Continued bool     `json:"-"`

	// AttrType uses Name and Value; CommentType and DirectiveType use
	// Value for their raw text.
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`

	// CommentType: child lines kept verbatim, plus whether the comment
	// is emitted to CSS.
	Lines []string `json:"lines,omitempty"`
	Loud  bool     `json:"loud,omitempty"`
}

func Root() *Node {
	return &Node{Type: RootType}
}

func Rule(selector string, line int) *Node {
	return &Node{
		Type:      RuleType,
		Line:      line,
		Selectors: []string{selector},
		Continued: strings.HasSuffix(selector, ","),
	}
}

func Attr(name, value string, line int) *Node {
	return &Node{
		Type:  AttrType,
		Line:  line,
		Name:  name,
		Value: value,
	}
}

func Comment(text string, loud bool, line int) *Node {
	return &Node{
		Type:  CommentType,
		Line:  line,
		Value: text,
		Loud:  loud,
	}
}

func Directive(text string, line int) *Node {
	return &Node{
		Type:  DirectiveType,
		Line:  line,
		Value: text,
	}
}

func (n *Node) Append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AddSelectors merges another rule's selector entries into n, keeping the
// source text of each contributing line.
func (n *Node) AddSelectors(other *Node) {
	n.Selectors = append(n.Selectors, other.Selectors...)
}

// SelectorString is the comma-joined selector list of a rule with
// continuation commas normalized away.
func (n *Node) SelectorString() string {
	parts := make([]string, 0, len(n.Selectors))
	for _, s := range n.Selectors {
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ","))
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// SelectorGroups splits the selector list on commas, one entry per
// rendered selector.
func (n *Node) SelectorGroups() []string {
	var groups []string
	for _, s := range n.Selectors {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			groups = append(groups, part)
		}
	}
	return groups
}
