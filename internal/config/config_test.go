package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	body := "project_name: demo\nentropy_min_bits: 4.5\nscan: false\nextensions: [\".go\", \".yaml\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".glimpse.yml"), []byte(body), 0644))

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.ProjectName)
	require.Equal(t, "demo", *cfg.ProjectName)
	require.NotNil(t, cfg.EntropyMinBits)
	require.InDelta(t, 4.5, *cfg.EntropyMinBits, 1e-9)
	require.NotNil(t, cfg.Scan)
	require.False(t, *cfg.Scan)
	require.Equal(t, []string{".go", ".yaml"}, cfg.Extensions)
	require.Nil(t, cfg.TreeDepth)
}

func TestLoadLocalMissing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	require.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "glimpse.yml")
	require.NoError(t, os.WriteFile(p, []byte("core_files: [unclosed\n"), 0644))
	_, err := LoadFile(p)
	require.Error(t, err)
}

func TestTemplateRoundTrips(t *testing.T) {
	out := Template(TemplateData{
		ProjectName: "demo",
		CoreFiles:   []string{"go.mod", "README.md"},
		IgnoreDirs:  []string{".git", "vendor"},
		Extensions:  []string{".go"},
		TreeDepth:   3,
		Modules:     map[string][]string{"scan": {"a.go"}, "report": {"b.go", "c.go"}},
	})

	var cfg FileConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	require.NotNil(t, cfg.ProjectName)
	require.Equal(t, "demo", *cfg.ProjectName)
	require.Equal(t, []string{"go.mod", "README.md"}, cfg.CoreFiles)
	require.NotNil(t, cfg.Scan)
	require.True(t, *cfg.Scan)
}
