package urlcheck

import (
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "https URL",
			input:    "https://example.com/path?q=1",
			expected: true,
		},
		{
			name:     "http URL",
			input:    "http://example.com",
			expected: true,
		},
		{
			name:     "bare host accepted via prefix retry",
			input:    "example.com",
			expected: true,
		},
		{
			name:     "bare host with path",
			input:    "example.com/some/path",
			expected: true,
		},
		{
			name:     "surrounding whitespace tolerated",
			input:    "  https://example.com  ",
			expected: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
		{
			name:     "whitespace only",
			input:    "   \t ",
			expected: false,
		},
		{
			name:     "free text is not a URL",
			input:    "not a url at all !!",
			expected: false,
		},
		{
			name:     "javascript scheme rejected",
			input:    "javascript:alert(1)",
			expected: false,
		},
		{
			name:     "ftp scheme rejected",
			input:    "ftp://example.com/file",
			expected: false,
		},
		{
			name:     "file scheme rejected",
			input:    "file:///etc/passwd",
			expected: false,
		},
		{
			name:     "data scheme rejected",
			input:    "data:text/html;base64,AAAA",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValid(tt.input)
			if result != tt.expected {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsValidWithSchemes(t *testing.T) {
	onlyHTTPS := map[string]bool{"https": true}

	if IsValidWithSchemes("http://example.com", onlyHTTPS) {
		t.Error("IsValidWithSchemes() accepted http against an https-only set")
	}

	if !IsValidWithSchemes("https://example.com", onlyHTTPS) {
		t.Error("IsValidWithSchemes() rejected https against an https-only set")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "https passes through",
			input:    "https://example.com",
			expected: "https://example.com",
		},
		{
			name:     "http passes through",
			input:    "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "bare host gets https prefix",
			input:    "example.com",
			expected: "https://example.com",
		},
		{
			name:     "invalid text still normalized for display",
			input:    "not a url",
			expected: "https://not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"example.com", "https://example.com", "http://a.com/b", "referral?code=X"}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)

		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
