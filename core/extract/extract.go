// Package extract implements the Extractor interfaces.
// It locates the fixed class-named elements of the two document templates
// and produces plain record structures. A required structural element
// that is absent makes the whole extraction fail; no partial records are
// ever returned.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mattbfit/docforge/core"
)

// ErrMalformed is wrapped by every missing-required-element failure.
var ErrMalformed = errors.New("malformed document structure")

// noiseSelectors are elements stripped from the content container before
// it is kept for the Markdown preview. They carry no document content.
var noiseSelectors = []string{"script", "style", "noscript"}

func parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// require returns the first match of selector under sel, or an
// ErrMalformed failure naming the missing element.
func require(sel *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformed, selector)
	}
	return found, nil
}

// collapse trims and whitespace-collapses extracted text.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// spacedText extracts text like collapse, but guarantees a separating
// space between adjacent nested elements even when the markup has none.
func spacedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := collapse(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// childTexts collects the non-empty text of a container's direct
// children, including bare text nodes, in source order.
func childTexts(sel *goquery.Selection) []string {
	var texts []string
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		if t := collapse(c.Text()); t != "" {
			texts = append(texts, t)
		}
	})
	return texts
}

// parseHeader extracts the shared header block. The header container,
// name, title, and contact row are all required.
func parseHeader(doc *goquery.Document) (core.Document, error) {
	header, err := require(doc.Selection, "div.header")
	if err != nil {
		return core.Document{}, err
	}
	name, err := require(header, "h1")
	if err != nil {
		return core.Document{}, err
	}
	title, err := require(header, "div.title")
	if err != nil {
		return core.Document{}, err
	}
	contactRow, err := require(header, "div.contact-row")
	if err != nil {
		return core.Document{}, err
	}

	return core.Document{
		Name:     collapse(name.Text()),
		Title:    collapse(title.Text()),
		Contacts: childTexts(contactRow),
	}, nil
}

// parseJob extracts a single job entry. Missing title/company/date spans
// yield empty strings rather than failure.
func parseJob(sel *goquery.Selection) core.Job {
	header := sel.Find("div.job-header").First()
	job := core.Job{
		Title:   collapse(header.Find("span.job-title").First().Text()),
		Company: collapse(header.Find("span.job-company").First().Text()),
		Date:    collapse(header.Find("span.job-date").First().Text()),
	}
	sel.Find("ul.job-bullets li").Each(func(_ int, li *goquery.Selection) {
		if t := collapse(li.Text()); t != "" {
			job.Bullets = append(job.Bullets, t)
		}
	})
	return job
}

// sourceHTML returns the content container markup with noise removed.
// Called after field extraction since the removal mutates the document.
func sourceHTML(doc *goquery.Document) string {
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}
	container := doc.Find("div.content").First()
	if container.Length() == 0 {
		container = doc.Find("body").First()
	}
	if container.Length() == 0 {
		return ""
	}
	out, err := goquery.OuterHtml(container)
	if err != nil {
		return ""
	}
	return out
}
