package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShouldSkip(t *testing.T) {
	dir := t.TempDir()
	match := filepath.Join(dir, "match.txt")
	if err := os.WriteFile(match, []byte("0123456789"), 0644); err != nil {
		t.Fatal(err)
	}
	subdir := filepath.Join(dir, "adir")
	if err := os.Mkdir(subdir, 0755); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name      string
		path      string
		size      int64
		sizeKnown bool
		want      bool
	}{
		{"exact size match", match, 10, true, true},
		{"size mismatch", match, 11, true, false},
		{"missing file", filepath.Join(dir, "nope.txt"), 10, true, false},
		{"path is a directory", subdir, 0, true, false},
		{"size unknown", match, 10, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := shouldSkip(c.path, c.size, c.sizeKnown); got != c.want {
				t.Errorf("shouldSkip(%q, %d, %v) = %v, want %v", c.path, c.size, c.sizeKnown, got, c.want)
			}
		})
	}
}

func TestChildPath(t *testing.T) {
	cases := []struct {
		dir, name, want string
	}{
		{"", "docs", "docs"},
		{"docs", "a.txt", "docs/a.txt"},
		{"docs/sub", "b.txt", "docs/sub/b.txt"},
	}
	for _, c := range cases {
		if got := childPath(c.dir, c.name); got != c.want {
			t.Errorf("childPath(%q, %q) = %q, want %q", c.dir, c.name, got, c.want)
		}
	}
}

func TestParentPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"docs", ""},
		{"docs/sub", "docs"},
		{"docs/sub/deep", "docs/sub"},
	}
	for _, c := range cases {
		if got := parentPath(c.in); got != c.want {
			t.Errorf("parentPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSafeEntryName(t *testing.T) {
	for name, want := range map[string]bool{
		"a.txt":     true,
		"with.dots": true,
		"":          false,
		".":         false,
		"..":        false,
		"a/b":       false,
		"a\\b":      false,
	} {
		if got := safeEntryName(name); got != want {
			t.Errorf("safeEntryName(%q) = %v, want %v", name, got, want)
		}
	}
}
