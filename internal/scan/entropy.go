package scan

import (
	"math"
	"regexp"
	"strings"
)

// Analyzer scores candidate tokens by Shannon entropy and composition.
// It is immutable and safe to share across parallel file scans.
type Analyzer struct {
	t Thresholds
}

// NewAnalyzer builds an Analyzer with already-validated thresholds.
func NewAnalyzer(t Thresholds) Analyzer {
	return Analyzer{t: t}
}

// Flag decides whether the token looks like a generated secret. The
// entropy value is returned alongside the decision for diagnostics. A
// token is flagged only when all of length, entropy, alphanumeric ratio,
// and the benign-shape denylist agree.
func (a Analyzer) Flag(token string) (float64, bool) {
	if len(token) < a.t.MinLength {
		return 0, false
	}
	e := Entropy(token)
	if e < a.t.MinBits {
		return e, false
	}
	if alphaNumRatio(token) < a.t.MinAlphaNumRatio {
		return e, false
	}
	if looksBenign(token) {
		return e, false
	}
	return e, true
}

// Entropy returns the Shannon entropy of s in bits per character.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	h := 0.0
	for _, c := range count {
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

func alphaNumRatio(s string) float64 {
	if s == "" {
		return 0
	}
	n, alnum := 0, 0
	for _, r := range s {
		n++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			alnum++
		}
	}
	return float64(alnum) / float64(n)
}

var (
	reHexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?$`)
	reUUID     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	reVersion  = regexp.MustCompile(`^v?\d+(?:\.\d+){1,3}(?:[-+][0-9A-Za-z.-]+)?$`)
)

// looksBenign is the false-positive denylist: shapes that clear the
// entropy bar but are routinely not secrets.
func looksBenign(s string) bool {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return true
	}
	if reHexColor.MatchString(s) || reUUID.MatchString(s) || reVersion.MatchString(s) {
		return true
	}
	// Filesystem and import paths.
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") {
		return true
	}
	// Dictionary-like: letters only in a single case.
	letters, upper := true, 0
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			upper++
			continue
		}
		if r < 'a' || r > 'z' {
			letters = false
			break
		}
	}
	if letters && (upper == 0 || upper == len(s)) {
		return true
	}
	// Dominated by a repeated character.
	count := map[rune]int{}
	max, n := 0, 0
	for _, r := range s {
		count[r]++
		n++
		if count[r] > max {
			max = count[r]
		}
	}
	if len(count) <= 3 || float64(max)/float64(n) >= 0.5 {
		return true
	}
	return false
}
