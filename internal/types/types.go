package types

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Finding describes one suspected secret, attributed to a file and line.
// Line is 1-based; a Line of 0 means the finding applies to the file as a
// whole (filename heuristic). Excerpt is a truncated preview of the line
// around the match, never the raw secret on its own.
type Finding struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Category string   `json:"category"`
	Excerpt  string   `json:"excerpt,omitempty"`
	Severity Severity `json:"severity"`
}

// SortKey orders findings by path, then line, then category. Category is
// included so the ordering stays total when the filename heuristic and a
// content match land on the same (path, line).
func (f Finding) SortKey(other Finding) bool {
	if f.Path != other.Path {
		return f.Path < other.Path
	}
	if f.Line != other.Line {
		return f.Line < other.Line
	}
	return f.Category < other.Category
}
