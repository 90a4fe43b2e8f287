// Package sheet renders a generation run as a self-contained printable HTML
// document. Cells are positioned by the cut-and-stack collator, QR glyphs are
// produced by an Encoder, and display text is the sanitized form of each URL;
// the QR payload itself is always the normalized URL, never the sanitized one.
package sheet

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	"github.com/btraven00/qrstack/internal/collate"
	"github.com/btraven00/qrstack/internal/pipeline"
	"github.com/btraven00/qrstack/internal/sanitize"
)

// DefaultQRSize is the rendered QR glyph edge in pixels.
const DefaultQRSize = 256

// Options configures rendering.
type Options struct {
	// QRSize is the PNG edge length in pixels; 0 means DefaultQRSize.
	QRSize int

	// Workers sets encode parallelism; 0 picks a small default.
	Workers int

	// Title heads the HTML document.
	Title string
}

// Renderer turns a pipeline result into printable HTML.
type Renderer struct {
	enc  Encoder
	opts Options
}

// NewRenderer creates a Renderer using enc for QR glyphs.
func NewRenderer(enc Encoder, opts Options) *Renderer {
	if opts.QRSize <= 0 {
		opts.QRSize = DefaultQRSize
	}

	if opts.Title == "" {
		opts.Title = "QR sheet"
	}

	return &Renderer{enc: enc, opts: opts}
}

type cellView struct {
	Number   int
	Empty    bool
	Invalid  bool
	Display  string
	Warning  string
	ImageSrc template.URL
}

type rowView struct {
	Cells []cellView
}

type pageView struct {
	Number int
	Rows   []rowView
}

type sheetView struct {
	Title     string
	RunID     string
	Total     int
	Invalid   int
	Warned    int
	CellWidth string
	Pages     []pageView
}

// Render writes the complete HTML document for result to w.
func (r *Renderer) Render(w io.Writer, result *pipeline.Result) error {
	view := r.buildView(result)

	if err := sheetTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render sheet: %w", err)
	}

	return nil
}

// buildView encodes QR glyphs for valid records and lays every cell out via
// the collator. Invalid records get no glyph; their cell shows a placeholder.
func (r *Renderer) buildView(result *pipeline.Result) sheetView {
	payloads := make([]string, len(result.Records))
	for i, rec := range result.Records {
		if rec.IsValid {
			payloads[i] = rec.URL
		}
	}

	images := encodeAll(r.enc, payloads, r.opts.QRSize, r.opts.Workers)

	view := sheetView{
		Title:     r.opts.Title,
		RunID:     result.RunID,
		Total:     result.Summary.Total,
		Invalid:   result.Summary.Invalid,
		Warned:    result.Summary.Warned,
		CellWidth: fmt.Sprintf("%d%%", 100/result.Geometry.Cols),
	}

	geom := result.Geometry
	n := len(result.Records)

	for page := 0; page < geom.Pages(n); page++ {
		pv := pageView{Number: page + 1}

		for row := 0; row < geom.Rows; row++ {
			rv := rowView{}

			for col := 0; col < geom.Cols; col++ {
				num, ok := collate.NumberForCell(page, row, col, geom, n)
				if !ok {
					rv.Cells = append(rv.Cells, cellView{Empty: true})
					continue
				}

				rec := result.Records[num-1]
				cell := cellView{
					Number:  num,
					Invalid: !rec.IsValid,
					Display: sanitize.ForDisplay(rec.URL),
					Warning: rec.WarningMessage,
				}

				if img := images[num-1]; img != nil {
					cell.ImageSrc = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
				} else {
					cell.Invalid = true
				}

				rv.Cells = append(rv.Cells, cell)
			}

			pv.Rows = append(pv.Rows, rv)
		}

		view.Pages = append(view.Pages, pv)
	}

	return view
}

var sheetTemplate = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; }
.page { page-break-after: always; padding: 10mm; }
table { border-collapse: collapse; width: 100%; }
td { border: 1px dashed #999; text-align: center; vertical-align: top; padding: 4mm; width: {{.CellWidth}}; }
.num { font-weight: bold; font-size: 14pt; }
.url { font-size: 7pt; word-break: break-all; color: #333; }
.warning { font-size: 7pt; color: #b00; }
.invalid { font-size: 10pt; color: #b00; padding: 12mm 0; }
img { width: 38mm; height: 38mm; }
.footer { font-size: 7pt; color: #777; padding: 2mm 10mm; }
</style>
</head>
<body>
{{range .Pages}}
<div class="page">
<table>
{{range .Rows}}
<tr>
{{range .Cells}}
<td>
{{if .Empty}}
&nbsp;
{{else}}
<div class="num">{{.Number}}</div>
{{if .Invalid}}
<div class="invalid">Invalid URL</div>
{{else}}
<img src="{{.ImageSrc}}" alt="QR {{.Number}}">
{{end}}
<div class="url">{{.Display}}</div>
{{if .Warning}}<div class="warning">{{.Warning}}</div>{{end}}
{{end}}
</td>
{{end}}
</tr>
{{end}}
</table>
<div class="footer">page {{.Number}} &middot; run {{$.RunID}} &middot; {{$.Total}} codes ({{$.Invalid}} invalid, {{$.Warned}} warned)</div>
</div>
{{end}}
</body>
</html>
`))
