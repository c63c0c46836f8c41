package scan

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/glimpse/glimpse/internal/signatures"
	"github.com/glimpse/glimpse/internal/types"
)

// EntropyCategory labels findings from the statistical fallback detector.
const EntropyCategory = "High-Entropy String"

const maxExcerptLen = 80

// Scanner walks a file's lines, applying the signature catalogue first
// and the entropy analyzer as a fallback. It holds no per-file state and
// may be shared across goroutines.
type Scanner struct {
	analyzer Analyzer
	maxLine  int
}

// NewScanner builds a line scanner on top of the given analyzer.
func NewScanner(a Analyzer) *Scanner {
	return &Scanner{analyzer: a, maxLine: 1 << 20}
}

// ScanContent produces the ordered findings for one file's text content.
// Lines are 1-indexed. A line yields at most one fixed-signature finding
// (first catalogue match wins) and, failing that, at most one
// entropy-based finding. Malformed input never produces an error: the
// scanner reports whatever it could read.
func (s *Scanner) ScanContent(path string, content []byte) []types.Finding {
	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 64*1024), s.maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		stripped := strings.TrimSpace(text)
		if stripped == "" {
			continue
		}
		// Comment lines without an assignment carry no extractable value.
		if strings.HasPrefix(stripped, "#") && !strings.ContainsAny(stripped, "=:") {
			continue
		}

		if sig, _, ok := signatures.FirstMatch(text); ok {
			out = append(out, types.Finding{
				Path:     path,
				Line:     line,
				Category: sig.Category,
				Excerpt:  excerpt(stripped),
				Severity: signatures.SeverityFor(sig.Category),
			})
			continue
		}

		for _, c := range extractCandidates(text) {
			if _, hit := s.analyzer.Flag(c.text); hit {
				out = append(out, types.Finding{
					Path:     path,
					Line:     line,
					Category: EntropyCategory,
					Excerpt:  excerpt(stripped),
					Severity: signatures.SeverityFor(EntropyCategory),
				})
				break // one generic finding per line
			}
		}
	}
	// Scanner errors (e.g. a pathological single line beyond the buffer
	// cap) are treated as end of scannable content, not as failures.
	return out
}

// excerpt truncates a line preview so reports stay readable and the full
// secret is never echoed back verbatim on long lines.
func excerpt(s string) string {
	if len(s) > maxExcerptLen {
		return s[:maxExcerptLen-3] + "..."
	}
	return s
}
