package signatures

import "regexp"

// Provider token shapes. PAT formats evolve; the GitHub rule covers
// ghp_, gho_, ghu_, ghs_ and ghr_ prefixes.
var (
	reGitHub      = regexp.MustCompile(`(?:ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9_]{36,255}`)
	reGitLab      = regexp.MustCompile(`glpat-[A-Za-z0-9\-]{20,}`)
	reSlack       = regexp.MustCompile(`xox[bporas]-[A-Za-z0-9\-]{10,}`)
	reHeroku      = regexp.MustCompile(`(?i)heroku[_\-\s]*(?:api)?[_\-\s]*key\s*[=:]\s*['"]?([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})`)
	reStripe      = regexp.MustCompile(`(?:sk|pk)_(?:live|test)_[A-Za-z0-9]{20,}`)
	reSendGrid    = regexp.MustCompile(`SG\.[A-Za-z0-9_\-]{22}\.[A-Za-z0-9_\-]{43}`)
	rePyPI        = regexp.MustCompile(`pypi-[A-Za-z0-9_\-]{20,}`)
	reNPM         = regexp.MustCompile(`npm_[A-Za-z0-9]{36,}`)
	reGoogleAPI   = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)
	reGoogleOAuth = regexp.MustCompile(`[0-9]+-[a-z0-9_]{32}\.apps\.googleusercontent\.com`)
	reTwilio      = regexp.MustCompile(`\bSK[0-9a-fA-F]{32}\b`)
	reMailgun     = regexp.MustCompile(`\bkey-[0-9a-zA-Z]{32}\b`)
	reSquare      = regexp.MustCompile(`sq0[a-z]{3}-[0-9A-Za-z_\-]{22,}`)
)

func fixed(category, description string, re *regexp.Regexp) Signature {
	return Signature{
		Category:    category,
		Description: description,
		Kind:        KindFixed,
		match: func(line string) (string, bool) {
			if m := re.FindString(line); m != "" {
				return m, true
			}
			return "", false
		},
	}
}

var (
	sigGitHubToken  = fixed("GitHub Token", "GitHub personal access token detected", reGitHub)
	sigGitLabToken  = fixed("GitLab Token", "GitLab personal access token detected", reGitLab)
	sigSlackToken   = fixed("Slack Token", "Slack API token detected", reSlack)
	sigStripeKey    = fixed("Stripe Key", "Stripe API key detected", reStripe)
	sigSendGridKey  = fixed("SendGrid Key", "SendGrid API key detected", reSendGrid)
	sigPyPIToken    = fixed("PyPI Token", "PyPI API token detected", rePyPI)
	sigNPMToken     = fixed("npm Token", "npm access token detected", reNPM)
	sigGoogleAPIKey = fixed("Google API Key", "Google API key detected", reGoogleAPI)
	sigGoogleOAuth  = fixed("Google OAuth", "Google OAuth client ID detected", reGoogleOAuth)
	sigTwilioKey    = fixed("Twilio Key", "Twilio API key detected", reTwilio)
	sigMailgunKey   = fixed("Mailgun Key", "Mailgun API key detected", reMailgun)
	sigSquareToken  = fixed("Square Token", "Square access token detected", reSquare)
)

var sigHerokuAPIKey = Signature{
	Category:    "Heroku API Key",
	Description: "Heroku API key detected",
	Kind:        KindFixed,
	match: func(line string) (string, bool) {
		if m := reHeroku.FindStringSubmatch(line); len(m) == 2 {
			return m[1], true
		}
		return "", false
	},
}
