package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func sampleProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/acme/widget\n\ngo 1.22\n")
	writeFile(t, root, "README.md", "# widget\n")
	writeFile(t, root, "Makefile", "build:\n\tgo build ./...\n")
	writeFile(t, root, "internal/store/store.go", "package store\n")
	writeFile(t, root, "internal/store/store_test.go", "package store\n")
	writeFile(t, root, "internal/api/api.go", "package api\n")
	writeFile(t, root, "cmd/widget/main.go", "package main\n")
	writeFile(t, root, "docs/design.md", "# design\n")
	writeFile(t, root, "vendor/dep/dep.go", "package dep\n")
	writeFile(t, root, ".git/config", "[core]\n")
	return root
}

func TestDetectNameFromGoMod(t *testing.T) {
	root := sampleProject(t)
	if got := DetectName(root); got != "widget" {
		t.Fatalf("DetectName = %q, want widget", got)
	}
}

func TestDetectNameFallsBackToDirName(t *testing.T) {
	root := filepath.Join(t.TempDir(), "myproj")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := DetectName(root); got != "myproj" {
		t.Fatalf("DetectName = %q, want myproj", got)
	}
}

func TestSourceDirsSkipsIgnoredAndNonMatching(t *testing.T) {
	root := sampleProject(t)
	got := SourceDirs(root, DefaultSettings())
	want := []string{"cmd", "internal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SourceDirs = %v, want %v", got, want)
	}
}

func TestSourceDirsHonorsConfigured(t *testing.T) {
	root := sampleProject(t)
	s := DefaultSettings()
	s.SourceDirs = []string{"internal", "no-such-dir"}
	got := SourceDirs(root, s)
	if !reflect.DeepEqual(got, []string{"internal"}) {
		t.Fatalf("SourceDirs = %v", got)
	}
}

func TestModules(t *testing.T) {
	root := sampleProject(t)
	mods := Modules(root, DefaultSettings())

	store, ok := mods["store"]
	if !ok {
		t.Fatalf("store module missing; got %v", mods)
	}
	want := []string{"internal/store/store.go", "internal/store/store_test.go"}
	if !reflect.DeepEqual(store, want) {
		t.Fatalf("store files = %v, want %v", store, want)
	}
	if _, ok := mods["api"]; !ok {
		t.Fatalf("api module missing; got %v", mods)
	}
	if _, ok := mods["widget"]; !ok {
		t.Fatalf("widget module missing; got %v", mods)
	}
	for name := range mods {
		if name == "dep" || name == "vendor" {
			t.Fatalf("ignored dir leaked into modules: %v", mods)
		}
	}
}

func TestModulesTopLevelFallback(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "helpers.go", "package main\n")

	mods := Modules(root, DefaultSettings())
	want := map[string][]string{"root": {"helpers.go", "main.go"}}
	if !reflect.DeepEqual(mods, want) {
		t.Fatalf("Modules = %v, want %v", mods, want)
	}
}

func TestCoreFiles(t *testing.T) {
	root := sampleProject(t)
	got := CoreFiles(root, DefaultSettings())
	want := []string{"go.mod", "README.md", "Makefile"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CoreFiles = %v, want %v", got, want)
	}
}

func TestCoreFilesConfiguredWins(t *testing.T) {
	root := sampleProject(t)
	s := DefaultSettings()
	s.CoreFiles = []string{"README.md"}
	got := CoreFiles(root, s)
	if !reflect.DeepEqual(got, []string{"README.md"}) {
		t.Fatalf("CoreFiles = %v", got)
	}
}

func TestIgnored(t *testing.T) {
	s := DefaultSettings()
	s.IgnorePatterns = append(s.IgnorePatterns, "*.gen.go")

	cases := map[string]bool{
		".git":         true,
		".hidden":      true,
		"node_modules": true,
		"vendor":       true,
		"api.gen.go":   true,
		"widget.test":  true,
		"store":        false,
		"store.go":     false,
	}
	for name, want := range cases {
		if got := s.Ignored(name); got != want {
			t.Errorf("Ignored(%q) = %v, want %v", name, got, want)
		}
	}
}
