package signatures

import "regexp"

// Three base64url segments separated by dots, each long enough to be a
// plausible header/payload. The eyJ prefixes pin the first two segments
// to base64-encoded '{"' JSON openers.
var reJWT = regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_\-]{10,}`)

var sigJWT = Signature{
	Category:    "JWT Token",
	Description: "JSON Web Token detected",
	Kind:        KindFixed,
	match: func(line string) (string, bool) {
		if m := reJWT.FindString(line); m != "" {
			return m, true
		}
		return "", false
	},
}
