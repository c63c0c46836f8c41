package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glimpse/glimpse/internal/project"
)

func exportFixture(t *testing.T) Options {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"go.mod":       "module example.com/demo\n",
		"main.go":      "package main\n\nfunc main() {}\n",
		"cfg/app.yaml": "name: demo\n",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return Options{
		Root:        root,
		ProjectName: "demo",
		Files:       []string{"go.mod", "main.go", "cfg/app.yaml", "gone.go"},
		IncludeTree: true,
		Settings:    project.DefaultSettings(),
		Timestamp:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		RunID:       "fixed-run-id",
	}
}

func TestTextFormat(t *testing.T) {
	out := Text(exportFixture(t))

	assert.Contains(t, out, "DEMO CODE EXPORT - 2025-03-14 09:30")
	assert.Contains(t, out, "## PROJECT STRUCTURE")
	assert.Contains(t, out, "## FILE CONTENTS")
	assert.Contains(t, out, "### main.go")
	assert.Contains(t, out, "```go\npackage main")
	assert.Contains(t, out, "```yaml\nname: demo")
	assert.Contains(t, out, "# FILE NOT FOUND: gone.go")
	assert.True(t, strings.HasSuffix(out, "END OF EXPORT\n"+strings.Repeat("=", 70)+"\n"))
}

func TestTextNoTree(t *testing.T) {
	o := exportFixture(t)
	o.IncludeTree = false
	out := Text(o)
	assert.NotContains(t, out, "PROJECT STRUCTURE")
}

func TestTextDeterministic(t *testing.T) {
	o := exportFixture(t)
	assert.Equal(t, Text(o), Text(o))
}

func TestXMLFormat(t *testing.T) {
	o := exportFixture(t)
	out := XML(o)

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<codebase project="demo" exported="2025-03-14 09:30" total_files="4">`)
	assert.Contains(t, out, `<file path="main.go" extension=".go" language="go"`)
	assert.Contains(t, out, `fingerprint="`)
	assert.Contains(t, out, `<file path="gone.go" status="not_found">`)
	assert.Contains(t, out, "<run_id>fixed-run-id</run_id>")
	assert.Contains(t, out, "<file_count>4</file_count>")
	assert.Contains(t, out, "</codebase>")
}

func TestXMLGeneratesRunID(t *testing.T) {
	o := exportFixture(t)
	o.RunID = ""
	out := XML(o)
	assert.Contains(t, out, "<run_id>")
	assert.NotContains(t, out, "<run_id></run_id>")
}

func TestCDataWrapSplitsTerminator(t *testing.T) {
	assert.Equal(t, "<![CDATA[plain]]>", cdataWrap("plain"))
	assert.Equal(t, "<![CDATA[code]]]]><![CDATA[>more]]>", cdataWrap("code]]>more"))
}

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "a&amp;b &lt;c&gt; &quot;d&quot; &apos;e&apos;", xmlEscape(`a&b <c> "d" 'e'`))
}

func TestFingerprintStable(t *testing.T) {
	a := fingerprint([]byte("content"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, fingerprint([]byte("content")))
	assert.NotEqual(t, a, fingerprint([]byte("Content")))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "go", Language("cmd/app/main.go"))
	assert.Equal(t, "yaml", Language("cfg/app.yaml"))
	assert.Equal(t, "", Language("data.zzz"))
}

func TestRenderDispatch(t *testing.T) {
	o := exportFixture(t)

	txt, err := Render(FormatText, o)
	require.NoError(t, err)
	assert.Contains(t, txt, "## FILE CONTENTS")

	xml, err := Render(FormatXML, o)
	require.NoError(t, err)
	assert.Contains(t, xml, "<files>")

	_, err = Render("pdf", o)
	assert.Error(t, err)
}
