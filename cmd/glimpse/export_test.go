package glimpse

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/glimpse/glimpse/internal/project"
	"github.com/glimpse/glimpse/internal/scan"
	"github.com/glimpse/glimpse/internal/types"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagModules = nil
		flagFiles = nil
		flagChanged = false
		flagAll = false
		flagReview = false
		flagYes = false
	})
}

func testApp(t *testing.T) app {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"go.mod":                 "module example.com/demo\n",
		"README.md":              "# demo\n",
		"internal/api/api.go":    "package api\n",
		"internal/store/db.go":   "package store\n",
		"internal/store/repo.go": "package store\n",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return app{
		root:        root,
		projectName: "demo",
		settings:    project.DefaultSettings(),
		scanEnabled: true,
	}
}

func TestSelectFilesDefaultIsCoreOnly(t *testing.T) {
	resetFlags(t)
	a := testApp(t)

	got, err := selectFiles(a)
	if err != nil {
		t.Fatalf("selectFiles: %v", err)
	}
	want := []string{"go.mod", "README.md"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectFiles = %v, want %v", got, want)
	}
}

func TestSelectFilesDefaultModule(t *testing.T) {
	resetFlags(t)
	a := testApp(t)
	a.settings.DefaultModule = "store"

	got, err := selectFiles(a)
	if err != nil {
		t.Fatalf("selectFiles: %v", err)
	}
	want := []string{"go.mod", "README.md", "internal/store/db.go", "internal/store/repo.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectFiles = %v, want %v", got, want)
	}
}

func TestSelectFilesModuleFlag(t *testing.T) {
	resetFlags(t)
	a := testApp(t)
	flagModules = []string{"api"}

	got, err := selectFiles(a)
	if err != nil {
		t.Fatalf("selectFiles: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"go.mod", "README.md", "internal/api/api.go"}) {
		t.Fatalf("selectFiles = %v", got)
	}
}

func TestSelectFilesUnknownModule(t *testing.T) {
	resetFlags(t)
	a := testApp(t)
	flagModules = []string{"nope"}

	_, err := selectFiles(a)
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected unknown module error, got %v", err)
	}
}

func TestSelectFilesAllAndAdditiveDedupe(t *testing.T) {
	resetFlags(t)
	a := testApp(t)
	flagAll = true
	flagFiles = []string{"README.md", "extra.txt"}

	got, err := selectFiles(a)
	if err != nil {
		t.Fatalf("selectFiles: %v", err)
	}
	want := []string{
		"go.mod", "README.md",
		"internal/api/api.go",
		"internal/store/db.go", "internal/store/repo.go",
		"extra.txt",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectFiles = %v, want %v", got, want)
	}
}

func TestNormalizeExts(t *testing.T) {
	got := normalizeExts([]string{"yaml", ".json", ""})
	if !reflect.DeepEqual(got, []string{".yaml", ".json"}) {
		t.Fatalf("normalizeExts = %v", got)
	}
}

func TestConfirmExportNonInteractiveProceeds(t *testing.T) {
	resetFlags(t)
	rep := scan.Report{Findings: []types.Finding{{Path: "a", Category: "Generic Secret"}}}

	// Test stdin is not a terminal, so the prompt is skipped.
	proceed, err := confirmExport(rep)
	if err != nil {
		t.Fatalf("confirmExport: %v", err)
	}
	if !proceed {
		t.Fatal("non-interactive runs should proceed")
	}
}

func TestReadInputsMarksUnreadable(t *testing.T) {
	resetFlags(t)
	a := testApp(t)
	inputs := readInputs(a, []string{"go.mod", "missing.go"})

	if len(inputs) != 2 {
		t.Fatalf("inputs = %d", len(inputs))
	}
	if !inputs[0].Readable || inputs[1].Readable {
		t.Fatalf("readable flags wrong: %+v", inputs)
	}
	if inputs[0].Path != "go.mod" {
		t.Fatalf("path = %q", inputs[0].Path)
	}
}
