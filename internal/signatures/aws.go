package signatures

import "regexp"

var (
	// Key IDs always start with AKIA followed by 16 uppercase
	// alphanumerics; the boundary groups keep us off longer identifiers.
	reAWSAccess = regexp.MustCompile(`(?:^|[^A-Z0-9])(AKIA[0-9A-Z]{16})(?:[^A-Z0-9]|$)`)
	reAWSSecret = regexp.MustCompile(`(?i)aws[_\-\s]*secret[_\-\s]*(?:access)?[_\-\s]*key\s*[=:]\s*['"]?([A-Za-z0-9/+=]{40})`)
)

var sigAWSAccessKey = Signature{
	Category:    "AWS Access Key",
	Description: "AWS access key ID detected",
	Kind:        KindFixed,
	match: func(line string) (string, bool) {
		if m := reAWSAccess.FindStringSubmatch(line); len(m) == 2 {
			return m[1], true
		}
		return "", false
	},
}

var sigAWSSecretKey = Signature{
	Category:    "AWS Secret Key",
	Description: "AWS secret access key assignment detected",
	Kind:        KindFixed,
	match: func(line string) (string, bool) {
		if m := reAWSSecret.FindStringSubmatch(line); len(m) == 2 {
			return m[1], true
		}
		return "", false
	},
}
