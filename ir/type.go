package ir

import "fmt"

type Type int

const (
	RootType Type = iota
	RuleType
	AttrType
	CommentType
	DirectiveType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		RootType:      "Root",
		RuleType:      "Rule",
		AttrType:      "Attr",
		CommentType:   "Comment",
		DirectiveType: "Directive",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Root":      RootType,
		"Rule":      RuleType,
		"Attr":      AttrType,
		"Comment":   CommentType,
		"Directive": DirectiveType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		RootType,
		RuleType,
		AttrType,
		CommentType,
		DirectiveType,
	}
}
