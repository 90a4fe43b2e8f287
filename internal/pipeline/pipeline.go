// Package pipeline runs candidates through validation and sanitization,
// producing the numbered record list for one generation run. A run's records
// are immutable once produced; a new run fully replaces them.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/btraven00/qrstack/internal/collate"
	"github.com/btraven00/qrstack/internal/extract"
	"github.com/btraven00/qrstack/internal/sanitize"
	"github.com/btraven00/qrstack/internal/urlcheck"
)

// ErrNoCandidates is returned when extraction produced nothing to encode.
var ErrNoCandidates = errors.New("no candidates found in input")

// Options holds the caller-owned policy knobs for one run.
type Options struct {
	// MaxItems caps the number of records per run; extra candidates are
	// dropped with a summary note, bounding worst-case latency.
	MaxItems int

	// BaseURL prefixes referral-path cells in CSV input.
	BaseURL string

	// Rows and Cols fix the printed grid shape.
	Rows int
	Cols int
}

// DefaultOptions returns the standard run configuration: a 3x3 grid and the
// cursor.com referral base.
func DefaultOptions() Options {
	return Options{
		MaxItems: 500,
		BaseURL:  extract.DefaultBaseURL,
		Rows:     3,
		Cols:     3,
	}
}

// Record is the finalized, numbered, flagged representation of one candidate.
// IDs are dense, 1-based, and strictly increasing over input order: invalid
// or suspicious candidates are kept and flagged, never dropped, so the
// visible numbering matches what the user supplied.
type Record struct {
	ID             int    `json:"id"`
	URL            string `json:"url"`
	IsValid        bool   `json:"is_valid"`
	HasWarning     bool   `json:"has_warning"`
	WarningMessage string `json:"warning_message,omitempty"`
}

// Summary aggregates per-run counts. Reporting is aggregate-only; individual
// failures never interrupt the batch.
type Summary struct {
	Total     int `json:"total"`
	Invalid   int `json:"invalid"`
	Warned    int `json:"warned"`
	Truncated int `json:"truncated,omitempty"`
}

// Result is the complete output of one generation run.
type Result struct {
	RunID    string           `json:"run_id"`
	Records  []Record         `json:"records"`
	Summary  Summary          `json:"summary"`
	Geometry collate.Geometry `json:"geometry"`
}

// Pages returns the number of printed pages this run needs.
func (r *Result) Pages() int {
	return r.Geometry.Pages(len(r.Records))
}

// Generator builds record lists from candidate sequences.
type Generator struct {
	opts Options
}

// New creates a Generator, filling unset options from DefaultOptions.
func New(opts Options) *Generator {
	defaults := DefaultOptions()

	if opts.MaxItems <= 0 {
		opts.MaxItems = defaults.MaxItems
	}

	if opts.BaseURL == "" {
		opts.BaseURL = defaults.BaseURL
	}

	if opts.Rows <= 0 {
		opts.Rows = defaults.Rows
	}

	if opts.Cols <= 0 {
		opts.Cols = defaults.Cols
	}

	return &Generator{opts: opts}
}

// Options returns the effective run configuration.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate runs every candidate through the validator and sanitizer and
// returns the numbered record list. Candidates beyond MaxItems are truncated
// and counted in the summary. Deterministic: the same candidates always yield
// the same records.
func (g *Generator) Generate(candidates []string) (*Result, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	truncated := 0
	if len(candidates) > g.opts.MaxItems {
		truncated = len(candidates) - g.opts.MaxItems
		candidates = candidates[:g.opts.MaxItems]
	}

	result := &Result{
		RunID:    uuid.New().String(),
		Records:  make([]Record, 0, len(candidates)),
		Geometry: collate.Geometry{Rows: g.opts.Rows, Cols: g.opts.Cols},
	}

	for i, candidate := range candidates {
		record := Record{
			ID:      i + 1,
			URL:     urlcheck.Normalize(candidate),
			IsValid: urlcheck.IsValid(candidate),
		}

		advisory := sanitize.CheckSuspicious(record.URL)
		record.HasWarning = advisory.HasWarning
		record.WarningMessage = advisory.Message

		if !record.IsValid {
			result.Summary.Invalid++
		}

		if record.HasWarning {
			result.Summary.Warned++
		}

		result.Records = append(result.Records, record)
	}

	result.Summary.Total = len(result.Records)
	result.Summary.Truncated = truncated

	return result, nil
}

// GenerateFromText splits pasted multi-line input and generates from it.
func (g *Generator) GenerateFromText(raw string) (*Result, error) {
	return g.Generate(extract.FromText(raw))
}

// GenerateFromCSV extracts candidates from CSV text and generates from them.
func (g *Generator) GenerateFromCSV(raw string) (*Result, error) {
	candidates, err := extract.FromCSV(raw, extract.Options{BaseURL: g.opts.BaseURL})
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	return g.Generate(candidates)
}
