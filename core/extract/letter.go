package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/mattbfit/docforge/core"
)

// LetterExtractor parses cover-letter HTML into a core.CoverLetter.
type LetterExtractor struct{}

// NewLetter creates a LetterExtractor.
func NewLetter() *LetterExtractor {
	return &LetterExtractor{}
}

// Extract produces the cover-letter record. The company badge is the
// only optional element; every other named block is required.
func (e *LetterExtractor) Extract(rawHTML string) (*core.CoverLetter, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	header, err := parseHeader(doc)
	if err != nil {
		return nil, err
	}

	content, err := require(doc.Selection, "div.content")
	if err != nil {
		return nil, err
	}
	date, err := require(content, "div.date")
	if err != nil {
		return nil, err
	}
	recipient, err := require(content, "div.recipient")
	if err != nil {
		return nil, err
	}
	salutation, err := require(content, "div.salutation")
	if err != nil {
		return nil, err
	}
	body, err := require(content, "div.body")
	if err != nil {
		return nil, err
	}
	closing, err := require(content, "div.closing")
	if err != nil {
		return nil, err
	}
	regards, err := require(closing, "div.regards")
	if err != nil {
		return nil, err
	}
	signature, err := require(closing, "div.signature")
	if err != nil {
		return nil, err
	}
	credential, err := require(closing, "div.credential")
	if err != nil {
		return nil, err
	}

	letter := &core.CoverLetter{
		Document:   header,
		Date:       collapse(date.Text()),
		Badge:      collapse(recipient.Find("span.company-badge").First().Text()),
		Recipient:  recipientLines(recipient),
		Salutation: collapse(salutation.Text()),
		Closing: core.Closing{
			Regards:    collapse(regards.Text()),
			Signature:  collapse(signature.Text()),
			Credential: collapse(credential.Text()),
		},
	}

	body.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := collapse(p.Text()); t != "" {
			letter.Paragraphs = append(letter.Paragraphs, t)
		}
	})

	letter.SourceHTML = sourceHTML(doc)
	return letter, nil
}

// recipientLines walks the recipient block's direct children, skipping
// the badge span and line breaks, and collects the address lines.
func recipientLines(recipient *goquery.Selection) []string {
	var lines []string
	recipient.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "br" || c.HasClass("company-badge") {
			return
		}
		if t := collapse(c.Text()); t != "" {
			lines = append(lines, t)
		}
	})
	return lines
}
