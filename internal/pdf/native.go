package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/maxviazov/report-export-service/internal/render"
)

const (
	rowHeight    = 6.0
	headerHeight = 7.0
	fontFamily   = "Arial"
)

// NativeEngine draws report pages as plain PDF tables without a browser.
// Stored HTML templates are not supported.
type NativeEngine struct {
	page PageConfig
}

// NewNativeEngine returns an engine that lays pages out with gofpdf.
func NewNativeEngine(page PageConfig) *NativeEngine {
	return &NativeEngine{page: page}
}

func (e *NativeEngine) RenderTemplate(context.Context, string, string, render.Document) ([]byte, error) {
	return nil, ErrUnsupported
}

func (e *NativeEngine) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	cfg := e.page.resolved()
	columns := doc.HeaderRow()
	if len(doc.Columns) > 0 && len(doc.Columns) != len(doc.Fields) {
		return nil, fmt.Errorf("pdf: %d columns for %d fields", len(doc.Columns), len(doc.Fields))
	}
	total := doc.PageCount
	if total == 0 {
		total = len(doc.Pages)
	}

	orientation := "P"
	if cfg.Landscape {
		orientation = "L"
	}
	// sizes are in cm, gofpdf works in mm
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: cfg.Size.Width * 10, Ht: cfg.Size.Height * 10},
	})
	pdf.SetMargins(cfg.Margin.Left*10, cfg.Margin.Top*10, cfg.Margin.Right*10)
	pdf.SetAutoPageBreak(true, cfg.Margin.Bottom*10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - (cfg.Margin.Left+cfg.Margin.Right)*10
	colWidth := usable
	if len(columns) > 0 {
		colWidth = usable / float64(len(columns))
	}

	for i, pg := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pdf.AddPage()
		writeHeader(pdf, tr, doc)

		pdf.SetFont(fontFamily, "B", 9)
		pdf.SetFillColor(218, 165, 32)
		for _, c := range columns {
			pdf.CellFormat(colWidth, headerHeight, tr(fit(pdf, tr, c, colWidth)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(fontFamily, "", 8)
		pdf.SetFillColor(255, 228, 181)
		for r, rec := range pg {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for _, f := range doc.Fields {
				txt := render.Truncate(render.FormatCell(rec[f]), doc.TruncateAt)
				pdf.CellFormat(colWidth, rowHeight, tr(fit(pdf, tr, txt, colWidth)), "1", 0, "C", r%2 == 1, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.Ln(3)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(usable, rowHeight, tr(fmt.Sprintf("Página %d de %d", i+1, total)), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: writing document: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, doc render.Document) {
	h := doc.Header
	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(0, 5, tr(h.Business.Name), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 8)
	if h.Business.Address != "" {
		pdf.CellFormat(0, 4, tr(h.Business.Address), "", 1, "L", false, 0, "")
	}
	if place := joinNonEmpty(h.Business.Town, h.Business.City); place != "" {
		pdf.CellFormat(0, 4, tr(place), "", 1, "L", false, 0, "")
	}

	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 8, tr(h.Report.Title), "", 1, "C", false, 0, "")
	if h.Report.Subtitle != "" {
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(0, 5, tr(h.Report.Subtitle), "", 1, "C", false, 0, "")
	}

	pdf.SetFont(fontFamily, "", 8)
	meta := joinNonEmpty(h.User.Name, h.User.Module, doc.Date)
	if meta != "" {
		pdf.CellFormat(0, 4, tr(meta), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
}

// fit returns the longest prefix of s whose rendered width fits inside a cell of width w.
func fit(pdf *gofpdf.Fpdf, tr func(string) string, s string, w float64) string {
	limit := w - 2
	if pdf.GetStringWidth(tr(s)) <= limit {
		return s
	}
	runes := []rune(s)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if pdf.GetStringWidth(tr(string(runes[:mid]))) <= limit {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo])
}

func joinNonEmpty(parts ...string) string {
	var out string
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " · "
		}
		out += p
	}
	return out
}
