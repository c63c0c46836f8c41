// Package report renders scan results for humans: the pre-export warning
// block and tabular findings/summary views. Rendering is deterministic;
// identical reports produce byte-identical output.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/glimpse/glimpse/internal/scan"
	"github.com/glimpse/glimpse/internal/signatures"
	"github.com/glimpse/glimpse/internal/types"
)

const bannerWidth = 60

// describe maps a finding category to its one-line explanation.
func describe(category string) string {
	for _, s := range signatures.Catalog() {
		if s.Category == category {
			return s.Description
		}
	}
	switch category {
	case scan.EntropyCategory:
		return "Possible secret or token (high entropy)"
	case scan.FilenameCategory:
		return "Sensitive file type"
	}
	return "Potential secret detected"
}

// WriteWarning renders the fixed-format warning block: banner, findings
// grouped per file with right-aligned line numbers, skipped files, and a
// trailing summary. Findings are assumed to be in report order already.
func WriteWarning(w io.Writer, rep scan.Report) {
	bang := strings.Repeat("!", bannerWidth)
	fmt.Fprintln(w, bang)
	fmt.Fprintln(w, "  POTENTIAL SECRETS DETECTED")
	fmt.Fprintln(w, bang)

	byFile := map[string][]types.Finding{}
	var order []string
	for _, f := range rep.Findings {
		if _, ok := byFile[f.Path]; !ok {
			order = append(order, f.Path)
		}
		byFile[f.Path] = append(byFile[f.Path], f)
	}
	sort.Strings(order)

	for _, path := range order {
		fmt.Fprintf(w, "\n  %s:\n", path)
		for _, f := range byFile[path] {
			if f.Line > 0 {
				fmt.Fprintf(w, "    Line %4d: %s: %s\n", f.Line, f.Category, describe(f.Category))
			} else {
				fmt.Fprintf(w, "    %s: %s\n", f.Category, describe(f.Category))
			}
		}
	}

	if len(rep.Skipped) > 0 {
		fmt.Fprintln(w, "\n  Not scanned:")
		for _, s := range rep.Skipped {
			fmt.Fprintf(w, "    %s (%s)\n", s.Path, s.Reason)
		}
	}

	fmt.Fprintf(w, "\n  Found %d potential secret(s) across %d file(s).\n",
		len(rep.Findings), rep.FilesWithFindings)
	fmt.Fprintln(w, "  Review the findings above before sharing this export.")
	fmt.Fprintln(w, bang)
}
