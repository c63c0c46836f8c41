package scan

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/glimpse/glimpse/internal/signatures"
	"github.com/glimpse/glimpse/internal/types"
)

// FilenameCategory labels findings produced from the path alone.
const FilenameCategory = "Sensitive Filename"

// sensitiveNameGlobs flag files whose basename alone suggests secret
// material. Matched case-insensitively against the basename, independent
// of whether the content is readable.
var sensitiveNameGlobs = []string{
	".env",
	".env.*",
	"*.pem",
	"*.key",
	"*.p12",
	"*.keystore",
	".htpasswd",
	"credentials",
	"credentials.*",
	"id_rsa",
	"id_dsa",
	"id_ecdsa",
	"id_ed25519",
	"*token*.txt",
	"*secret*.txt",
	"*password*.txt",
}

// CheckFilename returns a finding when the path's basename matches the
// sensitive-name denylist. This channel is independent of content
// scanning and is not deduplicated against it.
func CheckFilename(path string) (types.Finding, bool) {
	name := strings.ToLower(filepath.Base(filepath.ToSlash(path)))
	for _, g := range sensitiveNameGlobs {
		if ok, _ := doublestar.Match(g, name); ok {
			return types.Finding{
				Path:     path,
				Line:     0,
				Category: FilenameCategory,
				Excerpt:  "(filename match)",
				Severity: signatures.SeverityFor(FilenameCategory),
			}, true
		}
	}
	return types.Finding{}, false
}
