package project

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Settings holds the resolved discovery options. Unlike the on-disk config
// every field here has a concrete value.
type Settings struct {
	SourceDirs     []string
	IgnoreDirs     []string
	IgnorePatterns []string
	Extensions     []string
	CoreFiles      []string
	TreeDepth      int
	DefaultModule  string
}

// DefaultIgnoreDirs are skipped during discovery in addition to hidden
// entries, which are always skipped.
var DefaultIgnoreDirs = []string{
	"node_modules", "vendor", "dist", "build", "bin", "target", "testdata",
}

// DefaultIgnorePatterns match file names excluded from discovery.
var DefaultIgnorePatterns = []string{"*.exe", "*.test", "*.out"}

// DefaultExtensions are the file extensions included in discovery when the
// config does not name any.
var DefaultExtensions = []string{".go"}

// DefaultTreeDepth bounds the directory tree in export headers.
const DefaultTreeDepth = 3

// coreFileCandidates are checked in priority order when the config does not
// pin an explicit core file list.
var coreFileCandidates = []string{
	"go.mod",
	"go.work",
	"README.md",
	"Makefile",
	"Dockerfile",
	"docker-compose.yml",
	".env.example",
	"main.go",
}

// DefaultSettings returns discovery settings matching an unconfigured
// project.
func DefaultSettings() Settings {
	return Settings{
		IgnoreDirs:     append([]string(nil), DefaultIgnoreDirs...),
		IgnorePatterns: append([]string(nil), DefaultIgnorePatterns...),
		Extensions:     append([]string(nil), DefaultExtensions...),
		TreeDepth:      DefaultTreeDepth,
	}
}

// Ignored reports whether a file or directory name is excluded from
// discovery. Hidden entries are always excluded.
func (s Settings) Ignored(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, d := range s.IgnoreDirs {
		if name == d {
			return true
		}
	}
	for _, p := range s.IgnorePatterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func (s Settings) matchesExt(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range s.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DetectName derives the project name from the go.mod module path when one
// exists, falling back to the directory name.
func DetectName(root string) string {
	if b, err := os.ReadFile(filepath.Join(root, "go.mod")); err == nil {
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if rest, ok := strings.CutPrefix(line, "module "); ok {
				if name := path.Base(strings.TrimSpace(rest)); name != "" && name != "." {
					return name
				}
			}
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Base(root)
	}
	return filepath.Base(abs)
}

// SourceDirs returns the project's source directories. Configured dirs win;
// otherwise every non-ignored top level directory containing a matching file
// qualifies.
func SourceDirs(root string, s Settings) []string {
	if len(s.SourceDirs) > 0 {
		var dirs []string
		for _, d := range s.SourceDirs {
			if fi, err := os.Stat(filepath.Join(root, d)); err == nil && fi.IsDir() {
				dirs = append(dirs, d)
			}
		}
		return dirs
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range sortedEntries(entries) {
		if !e.IsDir() || s.Ignored(e.Name()) {
			continue
		}
		if containsMatching(filepath.Join(root, e.Name()), s) {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs
}

func containsMatching(dir string, s Settings) bool {
	found := false
	_ = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != dir && s.Ignored(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.Ignored(d.Name()) && s.matchesExt(d.Name()) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

// Modules discovers exportable modules across all source directories. A
// source dir's own top level files form a module named after the dir; each
// subdirectory with matching files forms a module of its own. Paths are
// relative to root and sorted.
func Modules(root string, s Settings) map[string][]string {
	modules := map[string][]string{}

	for _, src := range SourceDirs(root, s) {
		srcPath := filepath.Join(root, src)
		entries, err := os.ReadDir(srcPath)
		if err != nil {
			continue
		}
		var topLevel []string
		for _, e := range sortedEntries(entries) {
			name := e.Name()
			if e.IsDir() {
				if s.Ignored(name) {
					continue
				}
				files := collectFiles(filepath.Join(srcPath, name), root, s)
				if len(files) > 0 {
					modules[name] = files
				}
				continue
			}
			if !s.Ignored(name) && s.matchesExt(name) {
				topLevel = append(topLevel, filepath.ToSlash(filepath.Join(src, name)))
			}
		}
		if len(topLevel) > 0 {
			modules[filepath.Base(src)] = topLevel
		}
	}

	// Projects with all code at the top level still get one module.
	if len(modules) == 0 {
		entries, err := os.ReadDir(root)
		if err != nil {
			return modules
		}
		var topLevel []string
		for _, e := range sortedEntries(entries) {
			if e.IsDir() || s.Ignored(e.Name()) || !s.matchesExt(e.Name()) {
				continue
			}
			topLevel = append(topLevel, e.Name())
		}
		if len(topLevel) > 0 {
			modules["root"] = topLevel
		}
	}
	return modules
}

func collectFiles(dir, root string, s Settings) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != dir && s.Ignored(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Ignored(d.Name()) || !s.matchesExt(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files
}

// CoreFiles returns the always-exported project files. Configured core files
// win over the candidate probe.
func CoreFiles(root string, s Settings) []string {
	if len(s.CoreFiles) > 0 {
		return append([]string(nil), s.CoreFiles...)
	}
	var core []string
	for _, c := range coreFileCandidates {
		if fi, err := os.Stat(filepath.Join(root, c)); err == nil && !fi.IsDir() {
			core = append(core, c)
		}
	}
	return core
}

// sortedEntries orders directory entries directories-first, then by name,
// so discovery output is stable across platforms.
func sortedEntries(entries []os.DirEntry) []os.DirEntry {
	out := append([]os.DirEntry(nil), entries...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDir() != out[j].IsDir() {
			return out[i].IsDir()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}
