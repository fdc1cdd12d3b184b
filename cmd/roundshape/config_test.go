package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestParseConfig(t *testing.T) {
	const rc = `# shapes go here
savedirectory = ~/shapes
glyph = o
scale = 5
imagesize = 1024

not a setting
scale = -3
imagesize = big
`
	got := parseConfig(strings.NewReader(rc), "/home/u")
	want := &Config{
		SaveDirectory: "/home/u/shapes",
		Glyph:         "o",
		Scale:         5,
		ImageSize:     1024,
	}
	diff(t, want, got)
}

func TestParseConfigRelative(t *testing.T) {
	got := parseConfig(strings.NewReader("SaveDir=out"), "/home/u")
	want, err := filepath.Abs("out")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got.SaveDirectory)
}

func TestLoadConfig(t *testing.T) {
	diff(t, defaultConfig(), loadConfig(filepath.Join(t.TempDir(), "missing")))

	name := filepath.Join(t.TempDir(), "rc")
	if err := os.WriteFile(name, []byte("glyph = a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Glyph = "a"
	diff(t, want, loadConfig(name))
}

func TestSavePath(t *testing.T) {
	c := defaultConfig()
	got, err := c.SavePath("a.png")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "a.png", got)

	dir := filepath.Join(t.TempDir(), "sub", "dir")
	c.SaveDirectory = dir
	got, err = c.SavePath("a.png")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, filepath.Join(dir, "a.png"), got)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("save directory not created: %v", err)
	}
}
