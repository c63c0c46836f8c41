package scan

import (
	"sort"

	"github.com/glimpse/glimpse/internal/types"
)

// Skip reasons recorded in a Report.
const (
	SkipTooLarge     = "exceeds max file size"
	SkipTooManyLines = "exceeds max line count"
)

// SkippedFile records a file whose content was not scanned because it
// exceeded a configured bound. Skips are reported, never silent.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report is the complete result of one scan invocation. It is created
// fresh per run; nothing persists across runs.
type Report struct {
	Findings          []types.Finding `json:"findings"`
	FilesScanned      int             `json:"files_scanned"`
	FilesWithFindings int             `json:"files_with_findings"`
	Skipped           []SkippedFile   `json:"skipped,omitempty"`
}

// Empty reports whether the run produced neither findings nor skips.
func (r Report) Empty() bool {
	return len(r.Findings) == 0 && len(r.Skipped) == 0
}

// aggregate merges per-file findings into their final deterministic
// order: by path, then line, then category. Exact duplicates collapse.
func aggregate(perFile [][]types.Finding) []types.Finding {
	var all []types.Finding
	for _, fs := range perFile {
		all = append(all, fs...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SortKey(all[j])
	})
	out := all[:0]
	var prev types.Finding
	for i, f := range all {
		if i > 0 && f == prev {
			continue
		}
		out = append(out, f)
		prev = f
	}
	return out
}

func countDistinctPaths(fs []types.Finding) int {
	seen := map[string]struct{}{}
	for _, f := range fs {
		seen[f.Path] = struct{}{}
	}
	return len(seen)
}
