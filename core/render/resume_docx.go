// Package render — résumé DOCX renderer.
// Walks the Resume record in a single linear pass and reproduces the web
// design: shaded header table, underlined section headings, two-column
// skills grid, job entry rows, and the two-column education block.
package render

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/mattbfit/docforge/core"
	"github.com/mattbfit/docforge/core/theme"
)

// ResumeDOCX renders a Resume record as a Word document.
type ResumeDOCX struct {
	Theme theme.Theme
}

// NewResumeDOCX creates a ResumeDOCX with the given theme.
func NewResumeDOCX(t theme.Theme) *ResumeDOCX {
	return &ResumeDOCX{Theme: t}
}

// Render builds the document and returns the saved DOCX bytes.
func (r *ResumeDOCX) Render(rec *core.Resume) ([]byte, error) {
	doc := r.build(rec)
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for DOCX output.
func (r *ResumeDOCX) Extension() string {
	return ".docx"
}

// build assembles the in-memory document from the record.
func (r *ResumeDOCX) build(rec *core.Resume) *document.Document {
	t := r.Theme
	doc := document.New()

	pageMargins(doc, 1.5, 1.5, 2, 2)
	normalStyle(doc, t, 10*measurement.Point, 2*measurement.Point, 0)

	headerBlock(doc, t, rec.Document)
	sp := doc.AddParagraph()
	spacing(sp, 6*measurement.Point, 0)

	// Skills grid: two items per row, last row may hold one.
	sectionHeading(doc, t, "KEY SKILLS")
	skillsTable := borderlessTable(doc)
	rows := (len(rec.Skills) + 1) / 2
	for row := 0; row < rows; row++ {
		tr := skillsTable.AddRow()
		for col := 0; col < 2; col++ {
			cell := tr.AddCell()
			idx := row*2 + col
			if idx >= len(rec.Skills) {
				cell.AddParagraph()
				continue
			}
			p := cell.AddParagraph()
			spacing(p, 2*measurement.Point, 2*measurement.Point)
			addRun(p, checkGlyph+" ", runStyle{bold: true, color: hexColor(t.Primary), size: 10 * measurement.Point})
			addRun(p, rec.Skills[idx], runStyle{color: hexColor(t.Dark), size: 10 * measurement.Point})
		}
	}
	addSpacer(doc, 4*measurement.Point)

	sectionHeading(doc, t, "PROFESSIONAL EXPERIENCE")
	for _, job := range rec.Jobs {
		r.jobEntry(doc, job)
	}

	sectionHeading(doc, t, "MILITARY SERVICE")
	for _, job := range rec.Military {
		r.jobEntry(doc, job)
	}

	sectionHeading(doc, t, "EDUCATION & CERTIFICATIONS")
	eduTable := borderlessTable(doc)
	tr := eduTable.AddRow()
	r.eduColumn(tr.AddCell(), "Education", rec.Education.Left)
	r.eduColumn(tr.AddCell(), "Certifications", rec.Education.Right)

	return doc
}

// jobEntry renders one job: a borderless two-cell row with "Title | Company"
// on the left and the right-aligned date in a fixed-width cell, followed by
// hanging-indent bullet paragraphs.
func (r *ResumeDOCX) jobEntry(doc *document.Document, job core.Job) {
	t := r.Theme
	table := borderlessTable(doc)
	tr := table.AddRow()
	left := tr.AddCell()
	right := tr.AddCell()
	right.Properties().SetWidth(1.5 * measurement.Inch)

	p := left.AddParagraph()
	spacing(p, 4*measurement.Point, 2*measurement.Point)
	addRun(p, job.Title, runStyle{bold: true, color: hexColor(t.Accent), size: 10 * measurement.Point})
	if job.Company != "" {
		addRun(p, " | ", runStyle{color: hexColor(t.Dark), size: 10 * measurement.Point})
		addRun(p, job.Company, runStyle{bold: true, color: hexColor(t.Primary), size: 10 * measurement.Point})
	}

	p = right.AddParagraph()
	p.Properties().SetAlignment(wml.ST_JcRight)
	spacing(p, 4*measurement.Point, 2*measurement.Point)
	addRun(p, job.Date, runStyle{color: hexColor(t.Gray), size: 9 * measurement.Point})

	for _, bullet := range job.Bullets {
		bp := doc.AddParagraph()
		spacing(bp, 1*measurement.Point, 1*measurement.Point)
		hangingIndent(bp, 0.8*measurement.Centimeter, 0.4*measurement.Centimeter)
		addRun(bp, bulletGlyph+" ", runStyle{color: hexColor(t.Secondary), size: 9 * measurement.Point})
		addRun(bp, bullet, runStyle{color: hexColor(t.Dark), size: 9 * measurement.Point})
	}
}

// eduColumn fills one education-table cell: a bold label then its items.
func (r *ResumeDOCX) eduColumn(cell document.Cell, label string, items []string) {
	t := r.Theme
	p := cell.AddParagraph()
	spacing(p, 0, 4*measurement.Point)
	addRun(p, label, runStyle{bold: true, color: hexColor(t.Dark), size: 10 * measurement.Point})
	for _, item := range items {
		ip := cell.AddParagraph()
		spacing(ip, 1*measurement.Point, 3*measurement.Point)
		addRun(ip, item, runStyle{color: hexColor(t.Dark), size: 9 * measurement.Point})
	}
}
