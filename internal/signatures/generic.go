package signatures

import (
	"regexp"
	"strings"
)

var (
	reGenericAPIKey = regexp.MustCompile(`(?i)(?:api[_\-\s]*key|apikey|api[_\-\s]*secret|api[_\-\s]*token)\s*[=:]\s*['"]?([A-Za-z0-9_\-]{20,})`)
	reGenericSecret = regexp.MustCompile(`(?i)(?:secret|password|passwd|pwd|token|auth[_\-\s]*token|access[_\-\s]*token)\s*[=:]\s*['"]?([^\s'"]{8,})`)
	reAzureKey      = regexp.MustCompile(`(?i)azure[_\-\s]*(?:key|secret|token|password)\s*[=:]\s*['"]?([A-Za-z0-9+/=]{20,})`)
)

// placeholderValues are literal assignment values that look like secrets
// to the regexes above but are obviously not credentials.
var placeholderValues = map[string]struct{}{
	"changeme":     {},
	"change_me":    {},
	"change-me":    {},
	"password":     {},
	"password1":    {},
	"passw0rd":     {},
	"yourpassword": {},
	"secret":       {},
	"mysecret":     {},
	"example":      {},
	"examplekey":   {},
	"sample":       {},
	"placeholder":  {},
	"redacted":     {},
	"undefined":    {},
	"xxxxxxxx":     {},
	"testtoken":    {},
	"dummyvalue":   {},
}

// plausibleValue filters out placeholder-looking assignment values:
// template expansions, angle-bracket stand-ins, known dummy literals, and
// strings dominated by a single repeated character.
func plausibleValue(v string) bool {
	if len(v) < 8 {
		return false
	}
	if strings.HasPrefix(v, "<") || strings.HasPrefix(v, "${") ||
		strings.HasPrefix(v, "$(") || strings.HasPrefix(v, "{{") ||
		strings.HasPrefix(v, "%(") {
		return false
	}
	if _, ok := placeholderValues[strings.ToLower(v)]; ok {
		return false
	}
	// Repeated-character runs ("xxxxxxxx", "00000000", "aaaa-aaaa").
	distinct := map[rune]int{}
	max := 0
	for _, r := range v {
		distinct[r]++
		if distinct[r] > max {
			max = distinct[r]
		}
	}
	if len(distinct) <= 3 || float64(max)/float64(len(v)) >= 0.5 {
		return false
	}
	return true
}

func generic(category, description string, re *regexp.Regexp) Signature {
	return Signature{
		Category:    category,
		Description: description,
		Kind:        KindGeneric,
		match: func(line string) (string, bool) {
			m := re.FindStringSubmatch(line)
			if len(m) != 2 || !plausibleValue(m[1]) {
				return "", false
			}
			return m[1], true
		},
	}
}

var (
	sigGenericAPIKey = generic("Generic API Key", "Generic API key assignment detected", reGenericAPIKey)
	sigGenericSecret = generic("Generic Secret", "Potential secret/password assignment detected", reGenericSecret)
	sigAzureKey      = generic("Azure Key", "Azure credential detected", reAzureKey)
)
