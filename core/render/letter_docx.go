// Package render — cover-letter DOCX renderer.
// Same shaded header as the résumé, then letter formatting: right-aligned
// date, optional company badge, recipient block, salutation, justified
// body, closing block, and the footer divider with labeled links.
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

// linkSeparator sits between footer link pairs.
const linkSeparator = "  |  "

// LetterDOCX renders a CoverLetter record as a Word document.
type LetterDOCX struct {
	Theme theme.Theme
}

// NewLetterDOCX creates a LetterDOCX with the given theme.
func NewLetterDOCX(t theme.Theme) *LetterDOCX {
	return &LetterDOCX{Theme: t}
}

// Render builds the document and returns the saved DOCX bytes.
func (r *LetterDOCX) Render(rec *core.CoverLetter) ([]byte, error) {
	doc := r.build(rec)
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for DOCX output.
func (r *LetterDOCX) Extension() string {
	return ".docx"
}

func (r *LetterDOCX) build(rec *core.CoverLetter) *document.Document {
	t := r.Theme
	doc := document.New()

	pageMargins(doc, 2, 2, 2.5, 2.5)
	normalStyle(doc, t, 11*measurement.Point, 0, 1.6)

	headerBlock(doc, t, rec.Document)

	p := doc.AddParagraph()
	p.Properties().SetAlignment(wml.ST_JcRight)
	spacing(p, 18*measurement.Point, 14*measurement.Point)
	addRun(p, rec.Date, runStyle{color: hexColor(t.Gray), size: 10 * measurement.Point})

	if rec.Badge != "" {
		p = doc.AddParagraph()
		spacing(p, 0, 6*measurement.Point)
		addRun(p, rec.Badge, runStyle{bold: true, color: hexColor(t.Primary), size: 9 * measurement.Point})
	}

	// First recipient line is the emphasized one.
	for i, line := range rec.Recipient {
		p = doc.AddParagraph()
		spacing(p, 1*measurement.Point, 1*measurement.Point)
		if i == 0 {
			addRun(p, line, runStyle{bold: true, color: hexColor(t.Primary), size: 11 * measurement.Point})
		} else {
			addRun(p, line, runStyle{color: hexColor(t.Dark), size: 11 * measurement.Point})
		}
	}

	p = doc.AddParagraph()
	spacing(p, 14*measurement.Point, 10*measurement.Point)
	addRun(p, rec.Salutation, runStyle{bold: true, color: hexColor(t.Accent), size: 11 * measurement.Point})

	for _, text := range rec.Paragraphs {
		p = doc.AddParagraph()
		p.Properties().SetAlignment(wml.ST_JcBoth)
		spacing(p, 0, 10*measurement.Point)
		addRun(p, text, runStyle{color: hexColor(t.Dark), size: 11 * measurement.Point})
	}

	p = doc.AddParagraph()
	spacing(p, 14*measurement.Point, 4*measurement.Point)
	addRun(p, rec.Closing.Regards, runStyle{italic: true, color: hexColor(t.Dark), size: 11 * measurement.Point})

	p = doc.AddParagraph()
	spacing(p, 0, 2*measurement.Point)
	addRun(p, rec.Closing.Signature, runStyle{bold: true, color: hexColor(t.Primary), size: 14 * measurement.Point})

	p = doc.AddParagraph()
	spacing(p, 0, 0)
	addRun(p, rec.Closing.Credential, runStyle{color: hexColor(t.Gray), size: 10 * measurement.Point})

	r.footer(doc)
	return doc
}

// footer draws the thin divider and the centered line of labeled links.
func (r *LetterDOCX) footer(doc *document.Document) {
	t := r.Theme

	divider := doc.AddParagraph()
	divider.Properties().SetAlignment(wml.ST_JcCenter)
	spacing(divider, 20*measurement.Point, 0)
	bottomBorder(divider, t.LightBG)

	links := doc.AddParagraph()
	links.Properties().SetAlignment(wml.ST_JcCenter)
	spacing(links, 8*measurement.Point, 0)
	for i, link := range t.FooterLinks {
		if i > 0 {
			addRun(links, linkSeparator, runStyle{color: hexColor(t.Gray), size: 9 * measurement.Point})
		}
		addRun(links, link.Label+": ", runStyle{color: hexColor(t.Gray), size: 9 * measurement.Point})
		addRun(links, link.URL, runStyle{bold: true, color: hexColor(t.Primary), size: 9 * measurement.Point})
	}
}
