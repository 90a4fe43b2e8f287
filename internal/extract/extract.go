// Package extract turns raw pasted text or CSV exports into ordered candidate
// URL strings. Candidates are not validated here: unrecognized cell formats
// are emitted unchanged so the validator can flag them, keeping the visible
// numbering aligned with what the user supplied.
package extract

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// DefaultBaseURL is joined with referral-path cells to rebuild full referral
// links.
const DefaultBaseURL = "https://cursor.com/"

// Options configures extraction.
type Options struct {
	// BaseURL prefixes referral-path cells. Empty means DefaultBaseURL.
	BaseURL string
}

// FromText splits pasted multi-line input into candidates: one per line,
// trimmed, blank lines dropped.
func FromText(raw string) []string {
	var candidates []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			candidates = append(candidates, line)
		}
	}

	return candidates
}

// FromCSV parses delimiter-aware CSV text and emits one candidate per data
// row, preserving row order. Referral exports place the interesting value in
// varying columns, so each row is scanned for the first cell starting with
// "referral"; that cell is joined onto the base URL. Rows without one fall
// back to their first cell. A first row whose leading cell mentions "url" is
// treated as a header and skipped.
func FromCSV(raw string, opts Options) ([]string, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	var candidates []string

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		if i == 0 && strings.Contains(strings.ToLower(strings.TrimSpace(row[0])), "url") {
			continue // header row
		}

		candidates = append(candidates, candidateFromRow(row, baseURL))
	}

	return candidates, nil
}

// candidateFromRow picks one candidate from a row: the first referral-path
// cell wins, otherwise the first cell is emitted (verbatim when already
// scheme-prefixed, unchanged otherwise for the validator to judge).
func candidateFromRow(row []string, baseURL string) string {
	for _, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if strings.HasPrefix(strings.ToLower(trimmed), "referral") {
			return baseURL + trimmed
		}
	}

	return strings.TrimSpace(row[0])
}
