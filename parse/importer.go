package parse

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sass-format/go-sass/debug"
	"github.com/sass-format/go-sass/ir"
	"github.com/sass-format/go-sass/token"
)

var importSplitRx = regexp.MustCompile(`,\s*`)

// importFiles expands one @import directive.  Targets are processed
// strictly left to right: each nested engine is seeded with the importer's
// tables as they stand, and the importer adopts the nested tables on
// return, so later targets see definitions from earlier ones.
func (e *Engine) importFiles(value string, line *token.Line) (lineResult, error) {
	var nodes []*ir.Node
	for _, name := range importSplitRx.Split(value, -1) {
		if name == "" {
			continue
		}
		path, data, err := e.findFileToImport(name)
		if err != nil {
			return nil, ir.NewSyntaxError(err.Error(), line.Num)
		}
		if data == nil {
			// passthrough: never opened, emitted as a literal CSS import
			if debug.Import() {
				debug.Logf("import passthrough %q -> %q\n", name, path)
			}
			nodes = append(nodes, ir.Directive(fmt.Sprintf("@import url(%s)", path), line.Num))
			continue
		}
		if debug.Import() {
			debug.Logf("import %q -> %s\n", name, path)
		}
		sub := &Engine{
			opts:     e.opts,
			consts:   e.consts.Clone(),
			mixins:   e.mixins.Clone(),
			filename: path,
		}
		root, err := sub.Parse(data)
		if err != nil {
			var se *ir.SyntaxError
			if errors.As(err, &se) {
				se.AddBacktrace(e.importerName())
			}
			return nil, err
		}
		for _, child := range root.Children {
			if child.Filename == "" {
				child.Filename = path
			}
			nodes = append(nodes, child)
		}
		e.consts.Adopt(sub.consts)
		e.mixins.Adopt(sub.mixins)
	}
	return listResult{nodes: nodes}, nil
}

func (e *Engine) importerName() string {
	if e.filename != "" {
		return e.filename
	}
	return "(template)"
}

// findFileToImport normalizes name and searches the load paths.  A
// `.css`-suffixed name is returned unopened.  A `.sass` suffix is
// stripped before the search; within each load path the partial form
// (leading underscore) is preferred over the bare form.  The first
// readable match wins.  An unresolved bare name falls back to a `.css`
// passthrough; an unresolved explicit `.sass` name is fatal.  A nil data
// return means passthrough.
func (e *Engine) findFileToImport(name string) (string, []byte, error) {
	original := name
	wasSass := false
	switch {
	case strings.HasSuffix(name, ".sass"):
		name = strings.TrimSuffix(name, ".sass")
		wasSass = true
	case strings.HasSuffix(name, ".css"):
		return name, nil, nil
	}
	dir, base := filepath.Split(name)
	for _, lp := range e.opts.loadPaths {
		for _, candidate := range []string{
			filepath.Join(lp, dir, "_"+base+".sass"),
			filepath.Join(lp, dir, base+".sass"),
		} {
			d, err := e.opts.readFile(candidate)
			if err != nil {
				continue
			}
			return candidate, d, nil
		}
	}
	if wasSass {
		return "", nil, fmt.Errorf("File to import not found or unreadable: %s.", original)
	}
	return name + ".css", nil, nil
}
