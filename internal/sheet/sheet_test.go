package sheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btraven00/qrstack/internal/collate"
	"github.com/btraven00/qrstack/internal/pipeline"
)

// stubEncoder returns a tiny fixed payload instead of a real PNG, or fails
// for payloads listed in failFor.
type stubEncoder struct {
	failFor map[string]bool
}

func (s stubEncoder) Encode(payload string, _ int) ([]byte, error) {
	if s.failFor[payload] {
		return nil, errors.New("encode failed")
	}

	return []byte("png:" + payload), nil
}

func testResult(urls []string) *pipeline.Result {
	result := &pipeline.Result{
		RunID:    "test-run",
		Geometry: collate.Geometry{Rows: 3, Cols: 3},
	}

	for i, u := range urls {
		result.Records = append(result.Records, pipeline.Record{
			ID:      i + 1,
			URL:     u,
			IsValid: true,
		})
	}

	result.Summary.Total = len(urls)

	return result
}

func TestRender(t *testing.T) {
	urls := make([]string, 10)
	for i := range urls {
		urls[i] = "https://example.com/" + string(rune('a'+i))
	}

	result := testResult(urls)
	renderer := NewRenderer(stubEncoder{}, Options{})

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, result))

	html := buf.String()

	// 10 records on a 3x3 grid need two pages.
	assert.Equal(t, 2, strings.Count(html, `<div class="page">`))
	assert.Contains(t, html, "test-run")
	assert.Equal(t, 10, strings.Count(html, "data:image/png;base64,"))

	// Cut-and-stack: page one starts with 1, page two with 2.
	firstPage := html[:strings.Index(html, "page 1")]
	assert.Contains(t, firstPage, `<div class="num">1</div>`)
	assert.Contains(t, firstPage, `<div class="num">3</div>`)
	assert.NotContains(t, firstPage, `<div class="num">2</div>`)
}

func TestRenderInvalidRecord(t *testing.T) {
	result := testResult([]string{"https://a.com"})
	result.Records = append(result.Records, pipeline.Record{
		ID:             2,
		URL:            "https://bad url",
		IsValid:        false,
		HasWarning:     false,
		WarningMessage: "",
	})
	result.Summary.Total = 2
	result.Summary.Invalid = 1

	renderer := NewRenderer(stubEncoder{}, Options{})

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, result))

	html := buf.String()
	assert.Contains(t, html, "Invalid URL")
	assert.Equal(t, 1, strings.Count(html, "data:image/png;base64,"))
}

func TestRenderWarning(t *testing.T) {
	result := testResult([]string{"https://203.0.113.5/x"})
	result.Records[0].HasWarning = true
	result.Records[0].WarningMessage = "Warning: IP address detected (verify source)"

	renderer := NewRenderer(stubEncoder{}, Options{})

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, result))

	assert.Contains(t, buf.String(), "Warning: IP address detected (verify source)")
}

func TestRenderEncodeFailureFallsBack(t *testing.T) {
	result := testResult([]string{"https://a.com", "https://b.com"})
	enc := stubEncoder{failFor: map[string]bool{"https://a.com": true}}

	renderer := NewRenderer(enc, Options{})

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, result))

	html := buf.String()
	assert.Contains(t, html, "Invalid URL")
	assert.Equal(t, 1, strings.Count(html, "data:image/png;base64,"))
}

func TestEncodeAllOrder(t *testing.T) {
	payloads := []string{"one", "two", "", "four"}

	images := encodeAll(stubEncoder{}, payloads, 64, 3)
	require.Len(t, images, 4)

	assert.Equal(t, []byte("png:one"), images[0])
	assert.Equal(t, []byte("png:two"), images[1])
	assert.Nil(t, images[2])
	assert.Equal(t, []byte("png:four"), images[3])
}
