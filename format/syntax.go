package format

import (
	"errors"
	"fmt"
)

// PropertySyntax restricts which of the two property syntaxes a document
// may use.  AnySyntax accepts both.
type PropertySyntax int

const (
	AnySyntax PropertySyntax = iota
	NormalSyntax
	AlternateSyntax
)

var ErrBadSyntax = errors.New("bad property syntax")

func ParsePropertySyntax(v string) (PropertySyntax, error) {
	s, ok := map[string]PropertySyntax{
		"":          AnySyntax,
		"any":       AnySyntax,
		"normal":    NormalSyntax,
		"alternate": AlternateSyntax,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadSyntax, v)
}

func (s PropertySyntax) String() string {
	switch s {
	case AnySyntax:
		return "any"
	case NormalSyntax:
		return "normal"
	case AlternateSyntax:
		return "alternate"
	default:
		return fmt.Sprintf("<err: %d is not a property syntax>", s)
	}
}
