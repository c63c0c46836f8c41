package project

import (
	"bytes"
	"strings"
	"testing"
)

func TestFilesByDirGroupsAndFilters(t *testing.T) {
	root := sampleProject(t)

	byDir := FilesByDir(root, DefaultSettings(), nil)
	if _, ok := byDir["."]; !ok {
		t.Fatalf("root files missing: %v", byDir)
	}
	if _, ok := byDir["internal/store"]; !ok {
		t.Fatalf("internal/store group missing: %v", byDir)
	}
	if _, ok := byDir["vendor/dep"]; ok {
		t.Fatalf("ignored dir leaked: %v", byDir)
	}

	mdOnly := FilesByDir(root, DefaultSettings(), []string{".md"})
	for dir, files := range mdOnly {
		for _, f := range files {
			if !strings.HasSuffix(f, ".md") {
				t.Fatalf("filter leaked %s in %s", f, dir)
			}
		}
	}
	if len(mdOnly["docs"]) != 1 {
		t.Fatalf("docs group = %v", mdOnly["docs"])
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.n); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestWriteListing(t *testing.T) {
	root := sampleProject(t)
	var buf bytes.Buffer
	WriteListing(&buf, root, "widget", DefaultSettings(), nil)

	out := buf.String()
	for _, want := range []string{
		"Project : widget",
		"(project root)/",
		"internal/store/store.go",
		".go",
		"TOTAL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestWriteListingEmpty(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer
	WriteListing(&buf, root, "empty", DefaultSettings(), []string{".zig"})
	if !strings.Contains(buf.String(), "No files found") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
