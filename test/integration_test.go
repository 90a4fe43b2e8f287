package test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btraven00/qrstack/internal/pipeline"
	"github.com/btraven00/qrstack/internal/sheet"
)

// fakeEncoder stands in for the QR library so the end-to-end flow stays fast
// and deterministic.
type fakeEncoder struct{}

func (fakeEncoder) Encode(payload string, _ int) ([]byte, error) {
	return []byte("qr(" + payload + ")"), nil
}

// TestIntegration_CSVToSheet runs the full flow: CSV extraction, validation,
// sanitization, numbering, and sheet rendering.
func TestIntegration_CSVToSheet(t *testing.T) {
	gen := pipeline.New(pipeline.Options{})

	result, err := gen.GenerateFromCSV(ReferralCSV)
	if err != nil {
		t.Fatalf("GenerateFromCSV() error = %v", err)
	}

	if len(result.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(result.Records))
	}

	expectURLs := []string{
		"https://cursor.com/referral?code=ABC123",
		"https://cursor.com/referral?code=DEF456",
		"https://example.com/direct",
		"https://just-some-text",
	}

	for i, want := range expectURLs {
		rec := result.Records[i]

		if rec.ID != i+1 {
			t.Errorf("record %d: id = %d, want %d", i, rec.ID, i+1)
		}

		if rec.URL != want {
			t.Errorf("record %d: url = %q, want %q", i, rec.URL, want)
		}
	}

	var buf bytes.Buffer

	renderer := sheet.NewRenderer(fakeEncoder{}, sheet.Options{})
	if err := renderer.Render(&buf, result); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()

	if !strings.Contains(html, result.RunID) {
		t.Error("rendered sheet should carry the run id")
	}

	// 4 records fit one 3x3 page.
	if got := strings.Count(html, `<div class="page">`); got != 1 {
		t.Errorf("expected 1 page, got %d", got)
	}
}

// TestIntegration_PastedTextFlags checks that pasted input keeps invalid and
// suspicious entries, flagged but numbered.
func TestIntegration_PastedTextFlags(t *testing.T) {
	gen := pipeline.New(pipeline.Options{})

	result, err := gen.GenerateFromText(PastedLinks)
	if err != nil {
		t.Fatalf("GenerateFromText() error = %v", err)
	}

	if len(result.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(result.Records))
	}

	if result.Summary.Invalid != 1 {
		t.Errorf("invalid count = %d, want 1", result.Summary.Invalid)
	}

	if result.Summary.Warned != 2 {
		t.Errorf("warned count = %d, want 2", result.Summary.Warned)
	}

	js := result.Records[2]
	if js.IsValid {
		t.Error("javascript: entry should be invalid")
	}

	if js.WarningMessage != "JavaScript URLs are not allowed" {
		t.Errorf("javascript advisory = %q", js.WarningMessage)
	}

	ip := result.Records[3]
	if !ip.IsValid || !ip.HasWarning {
		t.Error("IP-host entry should be valid but warned")
	}
}

// TestIntegration_Determinism regenerates from identical input and expects an
// identical record list.
func TestIntegration_Determinism(t *testing.T) {
	gen := pipeline.New(pipeline.Options{})

	first, err := gen.GenerateFromCSV(ReferralCSV)
	if err != nil {
		t.Fatal(err)
	}

	second, err := gen.GenerateFromCSV(ReferralCSV)
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Records) != len(second.Records) {
		t.Fatalf("record counts differ: %d vs %d", len(first.Records), len(second.Records))
	}

	for i := range first.Records {
		if first.Records[i] != second.Records[i] {
			t.Errorf("record %d differs between runs: %+v vs %+v",
				i, first.Records[i], second.Records[i])
		}
	}
}
