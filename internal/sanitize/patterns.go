package sanitize

import (
	"regexp"
)

// Pattern pairs a compiled detector with the advisory message surfaced to the
// user. Table order is priority order: the first matching pattern wins and
// later entries are not evaluated.
type Pattern struct {
	Name        string
	Regex       *regexp.Regexp
	Message     string
	Description string
	Examples    []string
}

// suspiciousPatterns returns the ordered advisory table checked against the
// raw (normalized) URL string before any parsing takes place.
func suspiciousPatterns() []Pattern {
	return []Pattern{
		{
			Name:        "JavaScript scheme",
			Regex:       regexp.MustCompile(`(?i)javascript:`),
			Message:     "JavaScript URLs are not allowed",
			Description: "javascript: token anywhere in the string",
			Examples:    []string{"javascript:alert(1)", "https://x.com/?u=javascript:void(0)"},
		},
		{
			Name:        "Data scheme",
			Regex:       regexp.MustCompile(`(?i)data:`),
			Message:     "Data URLs are not allowed",
			Description: "data: token anywhere in the string",
			Examples:    []string{"data:text/html;base64,PHNjcmlwdD4="},
		},
		{
			Name:        "File scheme",
			Regex:       regexp.MustCompile(`(?i)file:`),
			Message:     "File URLs are not allowed",
			Description: "file: token anywhere in the string",
			Examples:    []string{"file:///etc/passwd"},
		},
		{
			Name:        "VBScript scheme",
			Regex:       regexp.MustCompile(`(?i)vbscript:`),
			Message:     "VBScript URLs are not allowed",
			Description: "vbscript: token anywhere in the string",
			Examples:    []string{"vbscript:msgbox(1)"},
		},
		{
			Name:        "Script tag",
			Regex:       regexp.MustCompile(`(?i)<script`),
			Message:     "Script tags detected in URL",
			Description: "opening script tag embedded in the URL",
			Examples:    []string{"https://example.com/<script>x</script>"},
		},
		{
			Name:        "Path traversal",
			Regex:       regexp.MustCompile(`\.\./|\.\.\\`),
			Message:     "Path traversal detected",
			Description: "../ or ..\\ traversal token",
			Examples:    []string{"https://example.com/../../etc/passwd"},
		},
	}
}
