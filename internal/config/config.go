package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for glimpse. Pointer
// fields distinguish "unset" from zero values so CLI > local > global
// precedence can be resolved field by field.
type FileConfig struct {
	ProjectName    *string  `yaml:"project_name"`
	CoreFiles      []string `yaml:"core_files"`
	SourceDirs     []string `yaml:"source_dirs"`
	IgnoreDirs     []string `yaml:"ignore_dirs"`
	IgnorePatterns []string `yaml:"ignore_patterns"`
	Extensions     []string `yaml:"extensions"`
	TreeDepth      *int     `yaml:"tree_depth"`
	DefaultModule  *string  `yaml:"default_module"`

	// Scanner settings. Scan=false maps to --no-scan.
	Scan             *bool    `yaml:"scan"`
	EntropyMinBits   *float64 `yaml:"entropy_min_bits"`
	EntropyMinLength *int     `yaml:"entropy_min_length"`
	AlphaNumMinRatio *float64 `yaml:"alphanum_min_ratio"`
	MaxFileBytes     *int64   `yaml:"max_file_bytes"`
	MaxLines         *int     `yaml:"max_lines"`
	Workers          *int     `yaml:"workers"`
}

// localNames are the accepted project-root config file names, in lookup
// order.
var localNames = []string{".glimpse.yml", ".glimpse.yaml", "glimpse.yml", "glimpse.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a project-local config file in the given root.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range localNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, errors.New("no config dir")
	}
	p := filepath.Join(base, "glimpse", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return FileConfig{}, errors.New("no global config")
}

// TemplateData feeds the init-config template with discovered structure.
type TemplateData struct {
	ProjectName string
	CoreFiles   []string
	IgnoreDirs  []string
	Extensions  []string
	TreeDepth   int
	Modules     map[string][]string
}

// Template renders a commented starter config pre-populated with the
// discovered project structure.
func Template(d TemplateData) string {
	var b strings.Builder
	b.WriteString("# glimpse configuration. Values set here override auto-detection.\n")
	fmt.Fprintf(&b, "project_name: %q\n\n", d.ProjectName)

	b.WriteString("# Files always included when exporting.\n")
	b.WriteString("core_files:\n")
	for _, f := range d.CoreFiles {
		fmt.Fprintf(&b, "  - %q\n", f)
	}
	b.WriteString("\n# Directories skipped during discovery.\n")
	b.WriteString("ignore_dirs:\n")
	for _, dir := range d.IgnoreDirs {
		fmt.Fprintf(&b, "  - %q\n", dir)
	}
	b.WriteString("\n# File extensions included in discovery.\n")
	b.WriteString("extensions:\n")
	for _, e := range d.Extensions {
		fmt.Fprintf(&b, "  - %q\n", e)
	}
	fmt.Fprintf(&b, "\n# Directory tree depth in export headers.\ntree_depth: %d\n", d.TreeDepth)
	b.WriteString("\n# Module exported when no arguments are given.\n# default_module: \"\"\n")
	b.WriteString("\n# Pre-export secret scanning. Thresholds tune the entropy detector.\n")
	b.WriteString("scan: true\n")
	b.WriteString("# entropy_min_bits: 4.0\n")
	b.WriteString("# entropy_min_length: 20\n")
	b.WriteString("# alphanum_min_ratio: 0.5\n")

	if len(d.Modules) > 0 {
		b.WriteString("\n# Discovered modules (for reference):\n")
		names := make([]string, 0, len(d.Modules))
		for name := range d.Modules {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "#   %s (%d files)\n", name, len(d.Modules[name]))
		}
	}
	return b.String()
}
