package dirbuild

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenDirDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "build.yaml"), "style: compact\n")
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.SrcDir != "." || d.DestDir != "." {
		t.Errorf("defaults: src=%q dest=%q", d.SrcDir, d.DestDir)
	}
}

func TestOpenDirMissingConfig(t *testing.T) {
	root := t.TempDir()
	if _, err := OpenDir(root, nil); err == nil {
		t.Fatal("no error for missing build file")
	}
}

func TestOpenDirBadStyle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "build.yaml"), "style: fancy\n")
	if _, err := OpenDir(root, nil); err == nil {
		t.Fatal("no error for bad style")
	}
}

func TestBuild(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "build.yaml"),
		"srcDir: src\ndestDir: out\nstyle: compact\nconstants:\n  main: \"#fff\"\n")
	writeFile(t, filepath.Join(root, "src", "site.sass"),
		"a\n  :color = !main\n")
	writeFile(t, filepath.Join(root, "src", "_part.sass"),
		"b\n  :x y\n")
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Build(); err != nil {
		t.Fatal(err)
	}
	css, err := os.ReadFile(filepath.Join(root, "out", "site.css"))
	if err != nil {
		t.Fatal(err)
	}
	want := "a { color: #fff; }\n"
	if string(css) != want {
		t.Errorf("got %q, want %q", css, want)
	}
	if _, err := os.Stat(filepath.Join(root, "out", "_part.css")); err == nil {
		t.Error("partial was compiled")
	}
}

func TestBuildConstantOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "build.yaml"),
		"srcDir: src\ndestDir: out\nstyle: compact\nconstants:\n  main: \"#fff\"\n")
	writeFile(t, filepath.Join(root, "src", "site.sass"),
		"a\n  :color = !main\n")
	d, err := OpenDir(root, map[string]string{"main": "#000"})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Build(); err != nil {
		t.Fatal(err)
	}
	css, err := os.ReadFile(filepath.Join(root, "out", "site.css"))
	if err != nil {
		t.Fatal(err)
	}
	want := "a { color: #000; }\n"
	if string(css) != want {
		t.Errorf("got %q, want %q", css, want)
	}
}

func TestBuildImportsFromSiblingDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "build.yaml"),
		"srcDir: src\ndestDir: out\nstyle: compact\nloadPaths:\n- shared\n")
	writeFile(t, filepath.Join(root, "shared", "_colors.sass"),
		"!fg = red\n")
	writeFile(t, filepath.Join(root, "src", "site.sass"),
		"@import colors\na\n  :color = !fg\n")
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Build(); err != nil {
		t.Fatal(err)
	}
	css, err := os.ReadFile(filepath.Join(root, "out", "site.css"))
	if err != nil {
		t.Fatal(err)
	}
	want := "a { color: red; }\n"
	if string(css) != want {
		t.Errorf("got %q, want %q", css, want)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(ConstantsEnv, `{"x": "1", "y": "2"}`)
	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if env["x"] != "1" || env["y"] != "2" {
		t.Errorf("got %v", env)
	}
}

func TestLoadEnvEmpty(t *testing.T) {
	t.Setenv(ConstantsEnv, "")
	env, err := LoadEnv()
	if err != nil || env != nil {
		t.Errorf("got %v, %v", env, err)
	}
}

func TestLoadEnvBad(t *testing.T) {
	t.Setenv(ConstantsEnv, "{")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("no error")
	}
}
