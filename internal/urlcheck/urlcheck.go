// Package urlcheck decides whether a candidate string is an acceptable QR
// payload and produces its normalized, scheme-qualified form.
package urlcheck

import (
	"net/url"
	"strings"
)

// DefaultSchemes is the allowed scheme set for QR payloads.
var DefaultSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

// IsValid reports whether raw parses as an absolute URL with an allowed
// scheme. Bare hosts like "example.com" are accepted by retrying with an
// https:// prefix. Parse failures never escape; they read as invalid.
func IsValid(raw string) bool {
	return IsValidWithSchemes(raw, DefaultSchemes)
}

// IsValidWithSchemes is IsValid against a caller-supplied scheme set.
func IsValidWithSchemes(raw string, allowed map[string]bool) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}

	// First attempt: the string as given. A scheme-qualified parse settles
	// the question either way — a disallowed scheme is not retried.
	if u, err := url.Parse(trimmed); err == nil && u.Scheme != "" {
		return u.Host != "" && allowed[u.Scheme]
	}

	// Second attempt: bare host form.
	u, err := url.Parse("https://" + trimmed)
	if err != nil {
		return false
	}

	return u.Host != "" && allowed[u.Scheme]
}

// Normalize returns raw unchanged when it already carries an http or https
// prefix, and prepends https:// otherwise. Applied to every candidate, valid
// or not, so records always display a scheme-qualified string. Idempotent.
func Normalize(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	return "https://" + raw
}
