// Package dirbuild interprets a sass build directory.
package dirbuild

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	sass "github.com/sass-format/go-sass"
	"github.com/sass-format/go-sass/debug"
	"github.com/sass-format/go-sass/format"
)

type Dir struct {
	Root      string            `json:"-" yaml:"-"`
	SrcDir    string            `json:"srcDir,omitempty" yaml:"srcDir"`
	DestDir   string            `json:"destDir,omitempty" yaml:"destDir"`
	Style     string            `json:"style,omitempty" yaml:"style"`
	Syntax    string            `json:"syntax,omitempty" yaml:"syntax"`
	LoadPaths []string          `json:"loadPaths,omitempty" yaml:"loadPaths"`
	Constants map[string]string `json:"constants,omitempty" yaml:"constants"`

	style  format.Style
	syntax format.PropertySyntax
}

// OpenDir reads build.{yaml,yml} under path and resolves the build
// configuration.  Constants from env override the build file's.
func OpenDir(path string, env map[string]string) (*Dir, error) {
	var (
		cfgPath string
		d       []byte
		found   bool
	)
	for _, name := range []string{"build.yaml", "build.yml"} {
		candidate := filepath.Join(path, name)
		var err error
		d, err = os.ReadFile(candidate)
		if err == nil {
			cfgPath = candidate
			found = true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidate, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("could not find build.{yaml,yml} in %q", path)
	}
	dir := &Dir{Root: path}
	if err := yaml.Unmarshal(d, dir); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", cfgPath, err)
	}
	return initDir(dir, env)
}

func initDir(dir *Dir, env map[string]string) (*Dir, error) {
	if dir.SrcDir == "" {
		dir.SrcDir = "."
	}
	if dir.DestDir == "" {
		dir.DestDir = dir.SrcDir
	}
	var err error
	dir.style = format.Nested
	if dir.Style != "" {
		dir.style, err = format.ParseStyle(dir.Style)
		if err != nil {
			return nil, err
		}
	}
	dir.syntax = format.AnySyntax
	if dir.Syntax != "" {
		dir.syntax, err = format.ParsePropertySyntax(dir.Syntax)
		if err != nil {
			return nil, err
		}
	}
	if len(env) > 0 {
		dir.Constants, err = mergeConstants(dir.Constants, env)
		if err != nil {
			return nil, err
		}
	}
	if debug.Build() {
		debug.Logf("build %s -> %s style=%s constants=%v\n",
			dir.SrcDir, dir.DestDir, dir.style, dir.Constants)
	}
	return dir, nil
}

// mergeConstants overlays p on dst as a JSON merge patch.
func mergeConstants(dst, p map[string]string) (map[string]string, error) {
	if dst == nil {
		dst = map[string]string{}
	}
	doc, err := json.Marshal(dst)
	if err != nil {
		return nil, err
	}
	patch, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("error merging constants: %w", err)
	}
	res := map[string]string{}
	if err := json.Unmarshal(merged, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Build compiles every non-partial .sass template under SrcDir into
// DestDir, mirroring the directory layout with a .css extension.
func (dir *Dir) Build() error {
	src := filepath.Join(dir.Root, dir.SrcDir)
	dest := filepath.Join(dir.Root, dir.DestDir)
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".sass") {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), "_") {
			// partials are only ever pulled in by @import
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dest, strings.TrimSuffix(rel, ".sass")+".css")
		return dir.buildFile(path, out)
	})
}

func (dir *Dir) buildFile(in, out string) error {
	if debug.Build() {
		debug.Logf("compile %s -> %s\n", in, out)
	}
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	src = append(dir.constantPrelude(), src...)
	css, err := sass.Compile(src, dir.compileOpts(in)...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, css, 0o644)
}

// constantPrelude renders the configured constants as declarations
// prepended to every template.
func (dir *Dir) constantPrelude() []byte {
	if len(dir.Constants) == 0 {
		return nil
	}
	names := make([]string, 0, len(dir.Constants))
	for name := range dir.Constants {
		names = append(names, name)
	}
	// deterministic order so rebuilds are stable
	slices.Sort(names)
	b := &strings.Builder{}
	for _, name := range names {
		fmt.Fprintf(b, "!%s = %s\n", name, dir.Constants[name])
	}
	return []byte(b.String())
}

func (dir *Dir) compileOpts(in string) []sass.Option {
	opts := []sass.Option{
		sass.WithStyle(dir.style),
		sass.WithFilename(in),
	}
	if dir.syntax != format.AnySyntax {
		opts = append(opts, sass.WithPropertySyntax(dir.syntax))
	}
	lps := []string{filepath.Dir(in)}
	for _, lp := range dir.LoadPaths {
		if !filepath.IsAbs(lp) {
			lp = filepath.Join(dir.Root, lp)
		}
		lps = append(lps, lp)
	}
	opts = append(opts, sass.WithLoadPaths(lps...))
	return opts
}
