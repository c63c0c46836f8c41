package project

import (
	"os"
	"path/filepath"
	"strings"
)

// Tree renders a directory tree rooted at root, bounded by s.TreeDepth.
// The root's own name is not included; callers prepend it.
func Tree(root string, s Settings) string {
	var b strings.Builder
	writeTree(&b, root, "", s.TreeDepth, s)
	return strings.TrimRight(b.String(), "\n")
}

func writeTree(b *strings.Builder, dir, prefix string, depth int, s Settings) {
	if depth == 0 {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var visible []os.DirEntry
	for _, e := range sortedEntries(entries) {
		if !s.Ignored(e.Name()) {
			visible = append(visible, e)
		}
	}

	for i, e := range visible {
		connector, extension := "├── ", "│   "
		if i == len(visible)-1 {
			connector, extension = "└── ", "    "
		}
		b.WriteString(prefix + connector + e.Name() + "\n")
		if e.IsDir() {
			writeTree(b, filepath.Join(dir, e.Name()), prefix+extension, depth-1, s)
		}
	}
}
