// Package render — Markdown preview renderers.
// These convert the document's content markup (kept on the record at
// extraction time) into a plain Markdown preview, for quick review or
// ATS-friendly text submission.
package render

import (
	"github.com/mattbfit/docforge/core"
)

// ResumeMarkdown renders the résumé's content markup as Markdown.
type ResumeMarkdown struct {
	normalizer core.Normalizer
}

// NewResumeMarkdown creates a ResumeMarkdown using the given normalizer.
func NewResumeMarkdown(n core.Normalizer) *ResumeMarkdown {
	return &ResumeMarkdown{normalizer: n}
}

// Render converts the record's source markup into Markdown bytes.
func (r *ResumeMarkdown) Render(rec *core.Resume) ([]byte, error) {
	md, err := r.normalizer.Normalize(rec.SourceHTML)
	if err != nil {
		return nil, err
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown output.
func (r *ResumeMarkdown) Extension() string {
	return ".md"
}

// LetterMarkdown renders the cover letter's content markup as Markdown.
type LetterMarkdown struct {
	normalizer core.Normalizer
}

// NewLetterMarkdown creates a LetterMarkdown using the given normalizer.
func NewLetterMarkdown(n core.Normalizer) *LetterMarkdown {
	return &LetterMarkdown{normalizer: n}
}

// Render converts the record's source markup into Markdown bytes.
func (r *LetterMarkdown) Render(rec *core.CoverLetter) ([]byte, error) {
	md, err := r.normalizer.Normalize(rec.SourceHTML)
	if err != nil {
		return nil, err
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown output.
func (r *LetterMarkdown) Extension() string {
	return ".md"
}
