// Package render — PDF renderers.
// Print-oriented approximations of the two designs using gofpdf: the same
// palette and content order as the DOCX output, with core-font-safe glyphs
// substituted for the skill and bullet markers.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/mattbfit/docforge/core"
	"github.com/mattbfit/docforge/core/theme"
)

// cp1252-safe stand-ins for the DOCX glyphs.
const (
	pdfSkillGlyph  = "•"
	pdfBulletGlyph = "›"
)

// ResumePDF renders a Resume record as a PDF document.
type ResumePDF struct {
	Theme theme.Theme
}

// NewResumePDF creates a ResumePDF with the given theme.
func NewResumePDF(t theme.Theme) *ResumePDF {
	return &ResumePDF{Theme: t}
}

// Extension returns the file extension for PDF output.
func (r *ResumePDF) Extension() string {
	return ".pdf"
}

// Render converts the record into PDF bytes.
func (r *ResumePDF) Render(rec *core.Resume) ([]byte, error) {
	t := r.Theme
	pdf := newLetterheadPDF(t, rec.Document)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lm, _, rm, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - lm - rm

	// Skills grid, two per line.
	pdfHeading(pdf, t, "KEY SKILLS")
	setTextColorHex(pdf, t.Dark)
	pdf.SetFont("Helvetica", "", 10)
	colW := contentW / 2
	for i, skill := range rec.Skills {
		ln := 0
		if i%2 == 1 || i == len(rec.Skills)-1 {
			ln = 1
		}
		pdf.CellFormat(colW, 5.5, tr(pdfSkillGlyph+" "+skill), "", ln, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdfHeading(pdf, t, "PROFESSIONAL EXPERIENCE")
	for _, job := range rec.Jobs {
		pdfJob(pdf, t, tr, job, lm, contentW)
	}

	pdfHeading(pdf, t, "MILITARY SERVICE")
	for _, job := range rec.Military {
		pdfJob(pdf, t, tr, job, lm, contentW)
	}

	pdfHeading(pdf, t, "EDUCATION & CERTIFICATIONS")
	yStart := pdf.GetY()
	yLeft := pdfColumn(pdf, t, tr, lm, colW-4, yStart, "Education", rec.Education.Left)
	yRight := pdfColumn(pdf, t, tr, lm+colW, colW-4, yStart, "Certifications", rec.Education.Right)
	if yRight > yLeft {
		pdf.SetY(yRight)
	} else {
		pdf.SetY(yLeft)
	}

	return pdfOutput(pdf)
}

// LetterPDF renders a CoverLetter record as a PDF document.
type LetterPDF struct {
	Theme theme.Theme
}

// NewLetterPDF creates a LetterPDF with the given theme.
func NewLetterPDF(t theme.Theme) *LetterPDF {
	return &LetterPDF{Theme: t}
}

// Extension returns the file extension for PDF output.
func (r *LetterPDF) Extension() string {
	return ".pdf"
}

// Render converts the record into PDF bytes.
func (r *LetterPDF) Render(rec *core.CoverLetter) ([]byte, error) {
	t := r.Theme
	pdf := newLetterheadPDF(t, rec.Document)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lm, _, rm, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()

	pdf.Ln(4)
	setTextColorHex(pdf, t.Gray)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(rec.Date), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	if rec.Badge != "" {
		setTextColorHex(pdf, t.Primary)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, tr(rec.Badge), "", 1, "L", false, 0, "")
		pdf.Ln(1)
	}

	for i, line := range rec.Recipient {
		if i == 0 {
			setTextColorHex(pdf, t.Primary)
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			setTextColorHex(pdf, t.Dark)
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.CellFormat(0, 5.5, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	setTextColorHex(pdf, t.Accent)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 5.5, tr(rec.Salutation), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	setTextColorHex(pdf, t.Dark)
	pdf.SetFont("Helvetica", "", 11)
	for _, text := range rec.Paragraphs {
		pdf.MultiCell(0, 6, tr(text), "", "J", false)
		pdf.Ln(2)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 5.5, tr(rec.Closing.Regards), "", 1, "L", false, 0, "")

	setTextColorHex(pdf, t.Primary)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, tr(rec.Closing.Signature), "", 1, "L", false, 0, "")

	setTextColorHex(pdf, t.Gray)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(rec.Closing.Credential), "", 1, "L", false, 0, "")

	// Footer: thin divider, then one centered line of labeled links.
	pdf.Ln(8)
	dr, dg, db := theme.RGB(t.LightBG)
	pdf.SetDrawColor(dr, dg, db)
	pdf.SetLineWidth(0.6)
	y := pdf.GetY()
	pdf.Line(lm, y, pageW-rm, y)
	pdf.Ln(3)

	var parts []string
	for _, link := range t.FooterLinks {
		parts = append(parts, link.Label+": "+link.URL)
	}
	setTextColorHex(pdf, t.Gray)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(strings.Join(parts, linkSeparator)), "", 1, "C", false, 0, "")

	return pdfOutput(pdf)
}

// newLetterheadPDF creates an A4 page and draws the shared shaded header
// band: centered name, all-caps title, and the joined contact line.
func newLetterheadPDF(t theme.Theme, d core.Document) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetMargins(18, 14, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	fr, fg, fb := theme.RGB(t.Primary)
	pdf.SetFillColor(fr, fg, fb)
	setTextColorHex(pdf, t.White)

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 13, tr(d.Name), "", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(strings.ToUpper(d.Title)), "", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 8, tr(strings.Join(d.Contacts, contactSpacer)), "", 1, "C", true, 0, "")

	setTextColorHex(pdf, t.Dark)
	return pdf
}

// pdfHeading writes a bold colored section heading with an underline.
func pdfHeading(pdf *gofpdf.Fpdf, t theme.Theme, text string) {
	pdf.Ln(3)
	setTextColorHex(pdf, t.Primary)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")

	lm, _, rm, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	pr, pg, pb := theme.RGB(t.Primary)
	pdf.SetDrawColor(pr, pg, pb)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Line(lm, y, pageW-rm, y)
	pdf.Ln(2)
	setTextColorHex(pdf, t.Dark)
}

// pdfJob writes one job header line with a right-aligned date, followed
// by indented bullets.
func pdfJob(pdf *gofpdf.Fpdf, t theme.Theme, tr func(string) string, job core.Job, lm, contentW float64) {
	const dateW = 34.0

	pdf.Ln(1.5)
	setTextColorHex(pdf, t.Accent)
	pdf.SetFont("Helvetica", "B", 10)
	titleLine := job.Title
	if job.Company != "" {
		titleLine += " | " + job.Company
	}
	pdf.CellFormat(contentW-dateW, 5, tr(titleLine), "", 0, "L", false, 0, "")

	setTextColorHex(pdf, t.Gray)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(dateW, 5, tr(job.Date), "", 1, "R", false, 0, "")

	setTextColorHex(pdf, t.Dark)
	pdf.SetFont("Helvetica", "", 9)
	for _, bullet := range job.Bullets {
		pdf.SetX(lm + 4)
		pdf.MultiCell(contentW-4, 4.5, tr(pdfBulletGlyph+" "+bullet), "", "L", false)
	}
}

// pdfColumn writes one education column (bold label then items) starting
// at the given x position, and reports the final y.
func pdfColumn(pdf *gofpdf.Fpdf, t theme.Theme, tr func(string) string, x, w, y float64, label string, items []string) float64 {
	pdf.SetXY(x, y)
	setTextColorHex(pdf, t.Dark)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(w, 5.5, label, "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		pdf.SetX(x)
		pdf.MultiCell(w, 4.5, tr(item), "", "L", false)
	}
	return pdf.GetY()
}

func setTextColorHex(pdf *gofpdf.Fpdf, hex string) {
	r, g, b := theme.RGB(hex)
	pdf.SetTextColor(r, g, b)
}

func pdfOutput(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}
