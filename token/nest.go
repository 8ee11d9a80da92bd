package token

import (
	"github.com/sass-format/go-sass/ir"
)

// Nest regroups a flat line sequence into a nested one using depth alone.
// A line one level deeper than its predecessor starts that predecessor's
// child run; more than one level deeper is fatal.
func Nest(lines []Line) ([]Line, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	nodes, _, err := nest(lines, 0)
	return nodes, err
}

func nest(lines []Line, i int) ([]Line, int, error) {
	base := lines[i].Depth
	var nodes []Line
	for i < len(lines) && lines[i].Depth >= base {
		ln := lines[i]
		if ln.Depth > base {
			if ln.Depth > base+1 {
				return nil, 0, ir.Errorf(ln.Num,
					"The line was indented %d levels deeper than the previous line.",
					ln.Depth-lines[i-1].Depth)
			}
			children, ni, err := nest(lines, i)
			if err != nil {
				return nil, 0, err
			}
			nodes[len(nodes)-1].Children = children
			i = ni
			continue
		}
		nodes = append(nodes, ln)
		i++
	}
	return nodes, i, nil
}
