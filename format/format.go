package format

import (
	"errors"
	"fmt"
)

// Style selects how rendered CSS is laid out.
type Style int

const (
	Nested Style = iota
	Expanded
	Compact
	Compressed
)

var ErrBadStyle = errors.New("bad style")

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"n":          Nested,
		"nested":     Nested,
		"e":          Expanded,
		"expanded":   Expanded,
		"c":          Compact,
		"compact":    Compact,
		"x":          Compressed,
		"compressed": Compressed,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case Nested:
		return []byte("nested"), nil
	case Expanded:
		return []byte("expanded"), nil
	case Compact:
		return []byte("compact"), nil
	case Compressed:
		return []byte("compressed"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// AllStyles returns all supported styles in preference order.
func AllStyles() []Style {
	return []Style{Nested, Expanded, Compact, Compressed}
}
