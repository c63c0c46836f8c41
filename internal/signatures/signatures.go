package signatures

import "github.com/glimpse/glimpse/internal/types"

// Kind distinguishes fixed-format signatures (provider token shapes,
// key-block headers) from generic assignment-style signatures whose value
// still needs plausibility checks.
type Kind int

const (
	KindFixed Kind = iota
	KindGeneric
)

// Signature is one named secret-matching rule. Category is the
// human-readable label reported in findings; Description is a short
// explanation for the warning block.
type Signature struct {
	Category    string
	Description string
	Kind        Kind
	match       func(line string) (string, bool)
}

// Match reports whether the signature matches the line, returning the
// matched span on success.
func (s Signature) Match(line string) (string, bool) {
	return s.match(line)
}

// catalog is the ordered signature catalogue. Order matters: when several
// signatures could match the same line, the earliest entry wins, so the
// most specific rules come first.
var catalog = []Signature{
	sigAWSAccessKey,
	sigAWSSecretKey,
	sigPrivateKey,
	sigGitHubToken,
	sigGitLabToken,
	sigSlackToken,
	sigGenericAPIKey,
	sigGenericSecret,
	sigDatabaseURL,
	sigJWT,
	sigHerokuAPIKey,
	sigStripeKey,
	sigSendGridKey,
	sigPyPIToken,
	sigNPMToken,
	sigAzureKey,
	sigGoogleAPIKey,
	sigGoogleOAuth,
	sigTwilioKey,
	sigMailgunKey,
	sigSquareToken,
}

// Catalog returns the ordered signature catalogue. The returned slice is
// shared and must not be mutated.
func Catalog() []Signature {
	return catalog
}

// FirstMatch applies the catalogue in order and returns the first matching
// signature together with the matched span. At most one fixed-pattern
// finding per line falls out of this rule.
func FirstMatch(line string) (Signature, string, bool) {
	for _, s := range catalog {
		if m, ok := s.match(line); ok {
			return s, m, true
		}
	}
	return Signature{}, "", false
}

// Categories returns the catalogue labels in order.
func Categories() []string {
	out := make([]string, len(catalog))
	for i, s := range catalog {
		out[i] = s.Category
	}
	return out
}

// SeverityFor grades a category for reporting. Provider keys and key
// material rank high; structure-only and heuristic matches rank medium.
func SeverityFor(category string) types.Severity {
	switch category {
	case "JWT Token", "High-Entropy String", "Sensitive Filename",
		"Generic Secret", "Generic API Key":
		return types.SevMed
	default:
		return types.SevHigh
	}
}
