// Package core defines the record types and pipeline interfaces for docforge.
// Each stage of the pipeline is a clean, testable interface.
package core

// SourceFile holds the raw HTML and path of a loaded input file.
type SourceFile struct {
	Path string
	HTML string
}

// Document holds the fields shared by both document types: the shaded
// header block content, plus the content container markup kept for the
// Markdown preview renderer.
type Document struct {
	Name     string
	Title    string
	Contacts []string

	// SourceHTML is the content container markup with scripts and
	// styles removed.
	SourceHTML string
}

// Job is one employment or military-service record. Missing sub-fields
// are empty strings, never absent, so renderers skip null checks.
type Job struct {
	Title   string
	Company string
	Date    string
	Bullets []string
}

// Education holds the two labeled columns of the education and
// certifications section, in source order.
type Education struct {
	Left  []string
	Right []string
}

// Resume is the fully extracted résumé record.
type Resume struct {
	Document
	Skills    []string
	Jobs      []Job
	Military  []Job
	Education Education
}

// Closing holds the sign-off block of a cover letter.
type Closing struct {
	Regards    string
	Signature  string
	Credential string
}

// CoverLetter is the fully extracted cover-letter record. The first
// recipient line is always the emphasized one.
type CoverLetter struct {
	Document
	Date       string
	Badge      string
	Recipient  []string
	Salutation string
	Paragraphs []string
	Closing    Closing
}

// Loader reads a source HTML file from disk.
type Loader interface {
	Load(path string) (*SourceFile, error)
}

// ResumeExtractor parses class-tagged résumé HTML into a Resume record.
type ResumeExtractor interface {
	Extract(html string) (*Resume, error)
}

// LetterExtractor parses class-tagged cover-letter HTML into a CoverLetter record.
type LetterExtractor interface {
	Extract(html string) (*CoverLetter, error)
}

// ResumeRenderer produces an output document from a Resume record.
type ResumeRenderer interface {
	Render(r *Resume) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".docx").
	Extension() string
}

// LetterRenderer produces an output document from a CoverLetter record.
type LetterRenderer interface {
	Render(l *CoverLetter) ([]byte, error)
	Extension() string
}

// Normalizer converts an HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}
