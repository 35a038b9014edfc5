// Package render provides the output renderers for the docforge pipeline.
// This file holds the shared DOCX building blocks: styled runs, borderless
// tables, cell shading and margins, paragraph bottom borders, and hanging
// indents. Where unioffice has no high-level helper, the raw OOXML
// properties are set through the typed X() accessors.
package render

import (
	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/mattbfit/docforge/core"
	"github.com/mattbfit/docforge/core/theme"
)

// Glyphs prefixed to skill items and job bullets.
const (
	checkGlyph  = "✓"
	bulletGlyph = "▸"
)

// contactSpacer separates contact items on the header contact line.
const contactSpacer = "    "

// runStyle is the small set of run-level attributes the designs use.
type runStyle struct {
	bold    bool
	italic  bool
	allCaps bool
	color   color.Color
	size    measurement.Distance
}

// addRun appends a formatted run to a paragraph.
func addRun(p document.Paragraph, text string, s runStyle) document.Run {
	run := p.AddRun()
	run.AddText(text)
	props := run.Properties()
	if s.bold {
		props.SetBold(true)
	}
	if s.italic {
		props.SetItalic(true)
	}
	if s.allCaps {
		props.SetAllCaps(true)
	}
	props.SetColor(s.color)
	if s.size != 0 {
		props.SetSize(s.size)
	}
	return run
}

// hexColor converts a palette hex string into a unioffice color.
func hexColor(hex string) color.Color {
	r, g, b := theme.RGB(hex)
	return color.RGB(uint8(r), uint8(g), uint8(b))
}

// spacing sets the space before and after a paragraph.
func spacing(p document.Paragraph, before, after measurement.Distance) {
	s := p.Properties().Spacing()
	s.SetBefore(before)
	s.SetAfter(after)
}

// borderlessTable adds a full-width table with every border removed.
func borderlessTable(doc *document.Document) document.Table {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderNone, color.Auto, 0)
	return table
}

// shadeCell fills a table cell background with the given color.
func shadeCell(cell document.Cell, hex string) {
	cell.Properties().SetShading(wml.ST_ShdClear, color.Auto, hexColor(hex))
}

// cellMargins sets all four cell margins.
func cellMargins(cell document.Cell, top, bottom, left, right measurement.Distance) {
	m := cell.Properties().Margins()
	m.SetTop(top)
	m.SetBottom(bottom)
	m.SetLeft(left)
	m.SetRight(right)
}

// bottomBorder draws a single bottom border line under a paragraph.
// The paragraph API has no border helper, so w:pBdr is written directly.
func bottomBorder(p document.Paragraph, hex string) {
	border := wml.NewCT_Border()
	border.ValAttr = wml.ST_BorderSingle
	border.SzAttr = unioffice.Uint64(8)
	border.SpaceAttr = unioffice.Uint64(4)
	border.ColorAttr = &wml.ST_HexColor{ST_HexColorRGB: unioffice.String(hex)}

	pBdr := wml.NewCT_PBdr()
	pBdr.Bottom = border
	p.Properties().X().PBdr = pBdr
}

// hangingIndent lays out a bullet paragraph: the whole paragraph is
// indented left and the first line hangs back toward the margin.
func hangingIndent(p document.Paragraph, left, hanging measurement.Distance) {
	ind := wml.NewCT_Ind()
	ind.LeftAttr = &wml.ST_SignedTwipsMeasure{Int64: unioffice.Int64(int64(left / measurement.Twips))}
	ind.HangingAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: unioffice.Uint64(uint64(hanging / measurement.Twips))}
	p.Properties().X().Ind = ind
}

// pageMargins sets the body section margins, in centimeters.
func pageMargins(doc *document.Document, top, bottom, left, right float64) {
	doc.BodySection().SetPageMargins(
		measurement.Distance(top)*measurement.Centimeter,
		measurement.Distance(right)*measurement.Centimeter,
		measurement.Distance(bottom)*measurement.Centimeter,
		measurement.Distance(left)*measurement.Centimeter,
		1*measurement.Centimeter,
		1*measurement.Centimeter,
		0)
}

// normalStyle rewrites the Normal style: base font, size, text color,
// paragraph spacing, and an optional line-spacing multiple.
func normalStyle(doc *document.Document, t theme.Theme, size, spaceAfter measurement.Distance, lineSpacing float64) {
	for _, s := range doc.Styles.Styles() {
		if s.StyleID() != "Normal" {
			continue
		}
		rp := s.RunProperties()
		rp.SetFontFamily(t.Font)
		rp.SetSize(size)
		rp.SetColor(hexColor(t.Dark))

		sp := wml.NewCT_Spacing()
		sp.BeforeAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: unioffice.Uint64(0)}
		sp.AfterAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: unioffice.Uint64(uint64(spaceAfter / measurement.Twips))}
		if lineSpacing > 0 {
			// Auto line rule measures in 240ths of a line.
			sp.LineAttr = &wml.ST_SignedTwipsMeasure{Int64: unioffice.Int64(int64(lineSpacing * 240))}
			sp.LineRuleAttr = wml.ST_LineSpacingRuleAuto
		}
		s.ParagraphProperties().X().Spacing = sp
	}
}

// headerBlock renders the shared shaded header: a borderless single-cell
// table holding the centered name, the all-caps title, and the contact
// line with its items joined by the four-space spacer.
func headerBlock(doc *document.Document, t theme.Theme, d core.Document) {
	table := borderlessTable(doc)
	cell := table.AddRow().AddCell()
	shadeCell(cell, t.Primary)
	cellMargins(cell, 14*measurement.Point, 14*measurement.Point, 10*measurement.Point, 10*measurement.Point)

	name := cell.AddParagraph()
	name.Properties().SetAlignment(wml.ST_JcCenter)
	spacing(name, 4*measurement.Point, 2*measurement.Point)
	addRun(name, d.Name, runStyle{bold: true, color: hexColor(t.White), size: 22 * measurement.Point})

	title := cell.AddParagraph()
	title.Properties().SetAlignment(wml.ST_JcCenter)
	spacing(title, 0, 8*measurement.Point)
	addRun(title, d.Title, runStyle{allCaps: true, color: hexColor(t.White), size: 11 * measurement.Point})

	contacts := cell.AddParagraph()
	contacts.Properties().SetAlignment(wml.ST_JcCenter)
	spacing(contacts, 0, 4*measurement.Point)
	for i, contact := range d.Contacts {
		if i > 0 {
			addRun(contacts, contactSpacer, runStyle{color: hexColor(t.White), size: 9 * measurement.Point})
		}
		addRun(contacts, contact, runStyle{color: hexColor(t.White), size: 9 * measurement.Point})
	}
}

// sectionHeading adds the bold colored heading with its underline border.
func sectionHeading(doc *document.Document, t theme.Theme, text string) {
	p := doc.AddParagraph()
	spacing(p, 10*measurement.Point, 6*measurement.Point)
	addRun(p, text, runStyle{bold: true, color: hexColor(t.Primary), size: 12 * measurement.Point})
	bottomBorder(p, t.Primary)
}

// addSpacer inserts a small empty paragraph between blocks.
func addSpacer(doc *document.Document, after measurement.Distance) {
	p := doc.AddParagraph()
	spacing(p, 0, after)
}
