package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer A4 portrait report, Helvetica with cp1252 translation
type PDFRenderer struct{}

func (PDFRenderer) ContentType() string { return "application/pdf" }
func (PDFRenderer) Extension() string   { return ".pdf" }

const (
	pdfMargin    = 15.0
	pdfLineH     = 7.0
	pdfStatLabel = 76.0
	pdfStatValue = 50.0
)

func (PDFRenderer) Render(w io.Writer, doc *Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargin

	// ── title ──
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0x1a, 0x54, 0x90)
	pdf.CellFormat(contentW, 9, tr(doc.Title), "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.CellFormat(contentW, 9, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(8)
	pdf.SetTextColor(0, 0, 0)

	// ── counters ──
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(0xf0, 0xf0, 0xf0)
	pdf.SetDrawColor(0x80, 0x80, 0x80)
	for _, st := range doc.Stats {
		pdf.CellFormat(pdfStatLabel, pdfLineH+2, tr(st.Label), "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfStatValue, pdfLineH+2, tr(st.Value), "1", 1, "L", true, 0, "")
	}
	pdf.Ln(8)

	// ── campus tables ──
	for _, sec := range doc.Sections {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(contentW, 8, tr(sec.Heading), "", 1, "L", false, 0, "")
		pdf.Ln(3)

		widths := relativeWidths(sec, contentW)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(0x1a, 0x54, 0x90)
		pdf.SetTextColor(0xf5, 0xf5, 0xf5)
		pdf.SetDrawColor(0, 0, 0)
		for i, col := range sec.Columns {
			pdf.CellFormat(widths[i], pdfLineH+1, tr(col), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetFillColor(0xf5, 0xf5, 0xdc)
		pdf.SetTextColor(0, 0, 0)
		for _, row := range sec.Rows {
			for i := range sec.Columns {
				var v string
				if i < len(row) {
					v = row[i]
				}
				pdf.CellFormat(widths[i], pdfLineH, tr(v), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}
