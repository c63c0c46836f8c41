package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FilesByDir walks the project tree and groups every non-ignored file by its
// parent directory relative to root ("." for the root itself). extFilter,
// when non-empty, keeps only files with one of the given extensions.
func FilesByDir(root string, s Settings, extFilter []string) map[string][]string {
	byDir := map[string][]string{}
	_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != root && s.Ignored(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Ignored(d.Name()) {
			return nil
		}
		if len(extFilter) > 0 {
			ext := filepath.Ext(d.Name())
			ok := false
			for _, e := range extFilter {
				if ext == e {
					ok = true
					break
				}
			}
			if !ok {
				return nil
			}
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		dir := filepath.ToSlash(filepath.Dir(rel))
		byDir[dir] = append(byDir[dir], filepath.ToSlash(rel))
		return nil
	})
	for _, files := range byDir {
		sort.Strings(files)
	}
	return byDir
}

// FormatSize renders a byte count as a short human-readable string.
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// WriteListing prints all project files grouped by directory, followed by a
// per-extension size summary table.
func WriteListing(w io.Writer, root, projectName string, s Settings, extFilter []string) {
	byDir := FilesByDir(root, s, extFilter)
	if len(byDir) == 0 {
		if len(extFilter) > 0 {
			fmt.Fprintf(w, "No files found matching %s.\n", strings.Join(extFilter, ", "))
		} else {
			fmt.Fprintln(w, "No files found.")
		}
		return
	}

	total := 0
	for _, files := range byDir {
		total += len(files)
	}
	filterLabel := ""
	if len(extFilter) > 0 {
		sorted := append([]string(nil), extFilter...)
		sort.Strings(sorted)
		filterLabel = fmt.Sprintf("  (filter: %s)", strings.Join(sorted, ", "))
	}
	fmt.Fprintf(w, "Project : %s\n", projectName)
	fmt.Fprintf(w, "Root    : %s\n", root)
	fmt.Fprintf(w, "Files   : %d%s\n", total, filterLabel)

	extCounts := map[string]int{}
	extSizes := map[string]int64{}

	dirs := make([]string, 0, len(byDir))
	for d := range byDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		files := byDir[dir]
		label := dir
		if label == "." {
			label = "(project root)"
		}
		fmt.Fprintf(w, "\n  %s/  (%d %s)\n", label, len(files), plural(len(files), "file"))
		for _, rel := range files {
			var size int64
			if fi, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err == nil {
				size = fi.Size()
			}
			ext := filepath.Ext(rel)
			if ext == "" {
				ext = "(no ext)"
			}
			extCounts[ext]++
			extSizes[ext] += size
			fmt.Fprintf(w, "    %-55s %8s\n", rel, FormatSize(size))
		}
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.Header("Extension", "Count", "Total Size")
	exts := make([]string, 0, len(extCounts))
	for e := range extCounts {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	var totalSize int64
	for _, e := range exts {
		table.Append([]string{e, fmt.Sprintf("%d", extCounts[e]), FormatSize(extSizes[e])})
		totalSize += extSizes[e]
	}
	table.Append([]string{"TOTAL", fmt.Sprintf("%d", total), FormatSize(totalSize)})
	table.Render()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
