package signatures

import "regexp"

var rePrivateKey = regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`)

var sigPrivateKey = Signature{
	Category:    "Private Key",
	Description: "Private key block detected",
	Kind:        KindFixed,
	match: func(line string) (string, bool) {
		if m := rePrivateKey.FindString(line); m != "" {
			return m, true
		}
		return "", false
	},
}
