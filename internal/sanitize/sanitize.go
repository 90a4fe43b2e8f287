// Package sanitize inspects URLs for display-unsafe content and for
// suspicious-but-technically-valid patterns. Both checks are pure functions of
// the normalized URL string and share no state. They are advisories, not a
// security boundary: a flagged record is kept and rendered with its warning,
// never dropped.
package sanitize

import (
	"net/url"
	"regexp"
)

const (
	// MaxDisplayLength caps the rendered text of a URL; also the threshold
	// for the long-URL advisory.
	MaxDisplayLength = 200

	// displayPlaceholder stands in for a URL that could not be sanitized.
	displayPlaceholder = "[unsafe URL]"
)

var (
	scriptTagPattern = regexp.MustCompile(`(?is)<script.*?</script>`)
	anyTagPattern    = regexp.MustCompile(`<[^>]*>`)
	schemeTokens     = regexp.MustCompile(`(?i)(javascript|data|vbscript):`)

	ipv4HostPattern = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)
)

// Advisory is the result of a suspicion check. At most one advisory is
// surfaced per URL.
type Advisory struct {
	HasWarning bool   `json:"has_warning"`
	Message    string `json:"message,omitempty"`
}

// ForDisplay strips script tags, remaining tag-like substrings, and active
// scheme tokens from s, then truncates to MaxDisplayLength. The output is for
// rendering only and is never used as a QR payload.
func ForDisplay(s string) (out string) {
	defer func() {
		if recover() != nil {
			out = displayPlaceholder
		}
	}()

	out = scriptTagPattern.ReplaceAllString(s, "")
	out = anyTagPattern.ReplaceAllString(out, "")
	out = schemeTokens.ReplaceAllString(out, "")

	if runes := []rune(out); len(runes) > MaxDisplayLength {
		out = string(runes[:MaxDisplayLength])
	}

	return out
}

// CheckSuspicious evaluates the ordered pattern table against s and returns
// the first match's advisory. When no pattern matches, the string is parsed
// as a URL (retrying with an https:// prefix when bare) for two secondary
// heuristics: a dotted-quad IPv4 host and excessive length. An unparsable
// string yields no warning here — validity is the validator's concern.
func CheckSuspicious(s string) Advisory {
	for _, p := range suspiciousPatterns() {
		if p.Regex.MatchString(s) {
			return Advisory{HasWarning: true, Message: p.Message}
		}
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		u, err = url.Parse("https://" + s)
		if err != nil || u.Host == "" {
			return Advisory{}
		}
	}

	if ipv4HostPattern.MatchString(u.Hostname()) {
		return Advisory{HasWarning: true, Message: "Warning: IP address detected (verify source)"}
	}

	if len(s) > MaxDisplayLength {
		return Advisory{HasWarning: true, Message: "Warning: Unusually long URL"}
	}

	return Advisory{}
}
