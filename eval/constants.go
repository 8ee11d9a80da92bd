package eval

import (
	"maps"
	"slices"
)

// Constants maps constant names to their resolved value strings.  Each
// compilation owns its table; imports clone it into the nested unit and
// adopt the result back.
type Constants struct {
	m map[string]string
}

func NewConstants() *Constants {
	return &Constants{m: map[string]string{}}
}

// Set unconditionally binds name to value.
func (c *Constants) Set(name, value string) {
	c.m[name] = value
}

// SetDefault binds name to value only if name is not yet defined.  This
// is the conditional (`||=`) assignment variant.
func (c *Constants) SetDefault(name, value string) {
	if _, ok := c.m[name]; ok {
		return
	}
	c.m[name] = value
}

func (c *Constants) Get(name string) (string, bool) {
	v, ok := c.m[name]
	return v, ok
}

func (c *Constants) Len() int {
	return len(c.m)
}

func (c *Constants) Names() []string {
	return slices.Sorted(maps.Keys(c.m))
}

func (c *Constants) Clone() *Constants {
	return &Constants{m: maps.Clone(c.m)}
}

// Adopt replaces c's contents with those of other, transferring the
// definitions a nested compilation made back to its importer.
func (c *Constants) Adopt(other *Constants) {
	c.m = maps.Clone(other.m)
}
