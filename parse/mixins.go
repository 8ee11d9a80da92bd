package parse

import (
	"maps"
	"slices"

	"github.com/sass-format/go-sass/token"
)

// Mixins maps mixin names to their raw, unresolved body lines as captured
// at definition time.  Bodies are reinterpreted at every inclusion site,
// so constant substitution inside a body reflects the table state where
// the mixin is included, not where it was defined.
type Mixins struct {
	m map[string][]token.Line
}

func NewMixins() *Mixins {
	return &Mixins{m: map[string][]token.Line{}}
}

func (m *Mixins) Define(name string, body []token.Line) {
	m.m[name] = body
}

func (m *Mixins) Lookup(name string) ([]token.Line, bool) {
	body, ok := m.m[name]
	return body, ok
}

func (m *Mixins) Len() int {
	return len(m.m)
}

func (m *Mixins) Names() []string {
	return slices.Sorted(maps.Keys(m.m))
}

// Clone copies the table.  Bodies are shared, not deep-copied; they are
// read-only once captured.
func (m *Mixins) Clone() *Mixins {
	return &Mixins{m: maps.Clone(m.m)}
}

// Adopt replaces m's contents with those of other.
func (m *Mixins) Adopt(other *Mixins) {
	m.m = maps.Clone(other.m)
}
