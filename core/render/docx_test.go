package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/mattbfit/docforge/core"
	"github.com/mattbfit/docforge/core/theme"
)

func sampleResume() *core.Resume {
	return &core.Resume{
		Document: core.Document{
			Name:     "Matt Barno",
			Title:    "Fitness Professional",
			Contacts: []string{"San Diego, CA", "(555) 010-0199", "matt@mattbfit.net"},
		},
		Skills: []string{"Program Design", "Strength & Conditioning", "Client Retention"},
		Jobs: []core.Job{
			{
				Title:   "Head Coach",
				Company: "Iron Works Gym",
				Date:    "2019 - Present",
				Bullets: []string{"Built a coaching program serving 120 clients", "Raised retention to 92%"},
			},
			{Title: "Trainer"},
		},
		Military: []core.Job{
			{Title: "Squad Leader", Company: "U.S. Army", Date: "2012 - 2016", Bullets: []string{"Led a nine-soldier squad"}},
		},
		Education: core.Education{
			Left:  []string{"B.S. Kinesiology State University, 2016"},
			Right: []string{"CSCS - NSCA", "CPR/AED Certified"},
		},
	}
}

func sampleLetter() *core.CoverLetter {
	return &core.CoverLetter{
		Document: core.Document{
			Name:     "Matt Barno",
			Title:    "Fitness Professional",
			Contacts: []string{"San Diego, CA", "matt@mattbfit.net"},
		},
		Date:       "March 4, 2026",
		Badge:      "NEUROWORKS",
		Recipient:  []string{"Hiring Team", "NeuroWorks Health", "450 Innovation Way"},
		Salutation: "Dear Hiring Team,",
		Paragraphs: []string{"First paragraph.", "Second paragraph."},
		Closing: core.Closing{
			Regards:    "Warm regards,",
			Signature:  "Matt Barno",
			Credential: "CSCS, Certified Personal Trainer",
		},
	}
}

// cellParagraphs flattens every paragraph inside every table of the document.
func cellParagraphs(doc *document.Document) []document.Paragraph {
	var paras []document.Paragraph
	for _, tbl := range doc.Tables() {
		for _, row := range tbl.Rows() {
			for _, cell := range row.Cells() {
				paras = append(paras, cell.Paragraphs()...)
			}
		}
	}
	return paras
}

func paragraphText(p document.Paragraph) string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// docText joins every run in the document body and its tables.
func docText(doc *document.Document) string {
	var b strings.Builder
	for _, p := range doc.Paragraphs() {
		b.WriteString(paragraphText(p))
		b.WriteString("\n")
	}
	for _, p := range cellParagraphs(doc) {
		b.WriteString(paragraphText(p))
		b.WriteString("\n")
	}
	return b.String()
}

// bulletParagraphs returns body paragraphs carrying a hanging indent.
func bulletParagraphs(doc *document.Document) []document.Paragraph {
	var out []document.Paragraph
	for _, p := range doc.Paragraphs() {
		if ppr := p.X().PPr; ppr != nil && ppr.Ind != nil {
			out = append(out, p)
		}
	}
	return out
}

func TestResumeDOCXStructure(t *testing.T) {
	rec := sampleResume()
	doc := NewResumeDOCX(theme.Default()).build(rec)

	// Header, skills, three job rows, education.
	tables := doc.Tables()
	require.Len(t, tables, 6)

	// Header cell: name, title, contact line.
	header := tables[0]
	require.Len(t, header.Rows(), 1)
	cells := header.Rows()[0].Cells()
	require.Len(t, cells, 1)
	paras := cells[0].Paragraphs()
	require.Len(t, paras, 3)
	assert.Equal(t, "Matt Barno", paragraphText(paras[0]))

	nameRun := paras[0].Runs()[0]
	assert.NotNil(t, nameRun.X().RPr.B, "name run should be bold")

	titleRun := paras[1].Runs()[0]
	assert.Equal(t, "Fitness Professional", titleRun.Text())
	assert.NotNil(t, titleRun.X().RPr.Caps, "title run should be all-caps")

	// Contacts joined by the spacer: N items means N-1 spacer runs.
	contactRuns := paras[2].Runs()
	require.Len(t, contactRuns, 2*len(rec.Contacts)-1)
	assert.Equal(t, "San Diego, CA", contactRuns[0].Text())
	assert.Equal(t, contactSpacer, contactRuns[1].Text())
	assert.Equal(t, "(555) 010-0199", contactRuns[2].Text())

	// Skills grid: ceil(3/2) rows, two cells each.
	skills := tables[1]
	require.Len(t, skills.Rows(), 2)
	require.Len(t, skills.Rows()[0].Cells(), 2)
	assert.Equal(t, checkGlyph+" Program Design", paragraphText(skills.Rows()[0].Cells()[0].Paragraphs()[0]))
	// Odd count: last cell stays empty.
	assert.Empty(t, paragraphText(skills.Rows()[1].Cells()[1].Paragraphs()[0]))
}

func TestResumeDOCXJobs(t *testing.T) {
	rec := sampleResume()
	doc := NewResumeDOCX(theme.Default()).build(rec)
	tables := doc.Tables()

	// First job row: Title | Company left, date right.
	job := tables[2].Rows()[0]
	left := job.Cells()[0].Paragraphs()[0]
	assert.Equal(t, "Head Coach | Iron Works Gym", paragraphText(left))
	right := job.Cells()[1].Paragraphs()[0]
	assert.Equal(t, "2019 - Present", paragraphText(right))
	require.NotNil(t, right.X().PPr.Jc)
	assert.Equal(t, wml.ST_JcRight, right.X().PPr.Jc.ValAttr)

	// Company-less job renders a single run, no separator.
	bare := tables[3].Rows()[0].Cells()[0].Paragraphs()[0]
	require.Len(t, bare.Runs(), 1)
	assert.Equal(t, "Trainer", paragraphText(bare))

	// Bullets: hanging-indent paragraphs in source order.
	bullets := bulletParagraphs(doc)
	require.Len(t, bullets, 3)
	assert.Equal(t, bulletGlyph+" Built a coaching program serving 120 clients", paragraphText(bullets[0]))
	assert.Equal(t, bulletGlyph+" Raised retention to 92%", paragraphText(bullets[1]))
	assert.Equal(t, bulletGlyph+" Led a nine-soldier squad", paragraphText(bullets[2]))
}

func TestResumeDOCXEducation(t *testing.T) {
	doc := NewResumeDOCX(theme.Default()).build(sampleResume())
	tables := doc.Tables()

	edu := tables[len(tables)-1].Rows()[0]
	leftCell := edu.Cells()[0]
	require.Len(t, leftCell.Paragraphs(), 2)
	assert.Equal(t, "Education", paragraphText(leftCell.Paragraphs()[0]))
	assert.Equal(t, "B.S. Kinesiology State University, 2016", paragraphText(leftCell.Paragraphs()[1]))

	rightCell := edu.Cells()[1]
	require.Len(t, rightCell.Paragraphs(), 3)
	assert.Equal(t, "Certifications", paragraphText(rightCell.Paragraphs()[0]))
}

func TestResumeDOCXSectionHeadings(t *testing.T) {
	doc := NewResumeDOCX(theme.Default()).build(sampleResume())

	var headings []string
	for _, p := range doc.Paragraphs() {
		if ppr := p.X().PPr; ppr != nil && ppr.PBdr != nil && ppr.PBdr.Bottom != nil {
			headings = append(headings, paragraphText(p))
		}
	}
	assert.Equal(t, []string{
		"KEY SKILLS",
		"PROFESSIONAL EXPERIENCE",
		"MILITARY SERVICE",
		"EDUCATION & CERTIFICATIONS",
	}, headings)
}

func TestLetterDOCX(t *testing.T) {
	rec := sampleLetter()
	doc := NewLetterDOCX(theme.Default()).build(rec)

	// The header block is the only table in a letter.
	require.Len(t, doc.Tables(), 1)

	text := docText(doc)
	for _, want := range []string{
		"March 4, 2026",
		"NEUROWORKS",
		"Hiring Team",
		"NeuroWorks Health",
		"Dear Hiring Team,",
		"First paragraph.",
		"Second paragraph.",
		"Warm regards,",
		"CSCS, Certified Personal Trainer",
		"View Resume: ",
		"mattbfit.net/resume.html",
	} {
		assert.Contains(t, text, want)
	}

	// First recipient line is bold, the rest are not.
	var recipientRuns []document.Run
	for _, p := range doc.Paragraphs() {
		for _, line := range rec.Recipient {
			if paragraphText(p) == line {
				recipientRuns = append(recipientRuns, p.Runs()[0])
			}
		}
	}
	require.Len(t, recipientRuns, 3)
	assert.NotNil(t, recipientRuns[0].X().RPr.B)
	assert.Nil(t, recipientRuns[1].X().RPr.B)
	assert.Nil(t, recipientRuns[2].X().RPr.B)

	// Body paragraphs are justified.
	for _, p := range doc.Paragraphs() {
		if paragraphText(p) == "First paragraph." {
			require.NotNil(t, p.X().PPr.Jc)
			assert.Equal(t, wml.ST_JcBoth, p.X().PPr.Jc.ValAttr)
		}
	}
}

func TestLetterDOCXNoBadge(t *testing.T) {
	rec := sampleLetter()
	rec.Badge = ""
	doc := NewLetterDOCX(theme.Default()).build(rec)
	assert.NotContains(t, docText(doc), "NEUROWORKS")
}

func TestLetterDOCXFooterLinks(t *testing.T) {
	th := theme.Default()
	th.FooterLinks = []theme.FooterLink{
		{Label: "Portfolio", URL: "example.com/portfolio"},
		{Label: "Videos", URL: "example.com/videos"},
	}
	doc := NewLetterDOCX(th).build(sampleLetter())

	text := docText(doc)
	assert.Contains(t, text, "Portfolio: example.com/portfolio")
	assert.Contains(t, text, linkSeparator)
	assert.NotContains(t, text, "mattbfit.net/resume.html")
}
