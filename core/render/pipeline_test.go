package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattbfit/docforge/core/extract"
	"github.com/mattbfit/docforge/core/theme"
)

// End-to-end: minimal well-formed HTML through extraction and DOCX
// building, checking header styling and bullet layout survive the trip.
const janeHTML = `<html><body>
<div class="header">
  <h1>Jane Doe</h1>
  <div class="title">Operations Lead</div>
  <div class="contact-row">
    <span>Portland, OR</span>
    <span>(555) 010-0142</span>
    <span>jane@example.com</span>
  </div>
</div>
<div class="skills-grid"></div>
<div class="section">
  <div class="section-title">Professional Experience</div>
  <div class="job">
    <div class="job-header">
      <span class="job-title">Operations Lead</span>
      <span class="job-company">Acme Logistics</span>
      <span class="job-date">2021 - Present</span>
    </div>
    <ul class="job-bullets">
      <li>Cut fulfillment latency by 40%</li>
      <li>Scaled the ops team from 4 to 11</li>
    </ul>
  </div>
</div>
</body></html>`

func TestResumeEndToEnd(t *testing.T) {
	rec, err := extract.NewResume().Extract(janeHTML)
	require.NoError(t, err)
	require.Len(t, rec.Contacts, 3)

	doc := NewResumeDOCX(theme.Default()).build(rec)

	// Header cell carries the name; the title run is styled all-caps.
	header := doc.Tables()[0].Rows()[0].Cells()[0]
	assert.Equal(t, "Jane Doe", paragraphText(header.Paragraphs()[0]))
	titleRun := header.Paragraphs()[1].Runs()[0]
	assert.Equal(t, "Operations Lead", titleRun.Text())
	assert.NotNil(t, titleRun.X().RPr.Caps)

	// Both bullets arrive as separate hanging-indent paragraphs.
	bullets := bulletParagraphs(doc)
	require.Len(t, bullets, 2)
	assert.Equal(t, bulletGlyph+" Cut fulfillment latency by 40%", paragraphText(bullets[0]))
	assert.Equal(t, bulletGlyph+" Scaled the ops team from 4 to 11", paragraphText(bullets[1]))
}
