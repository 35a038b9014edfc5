package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/mattbfit/docforge/core"
)

// Section titles that drive dispatch while walking div.section blocks.
const (
	sectionExperience = "Professional Experience"
	sectionMilitary   = "Military Service"
	sectionEducation  = "Education & Certifications"
)

// ResumeExtractor parses résumé HTML into a core.Resume.
type ResumeExtractor struct{}

// NewResume creates a ResumeExtractor.
func NewResume() *ResumeExtractor {
	return &ResumeExtractor{}
}

// Extract produces the résumé record, or fails with an ErrMalformed
// wrap when a required structural element is absent.
func (e *ResumeExtractor) Extract(rawHTML string) (*core.Resume, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	header, err := parseHeader(doc)
	if err != nil {
		return nil, err
	}

	skillsGrid, err := require(doc.Selection, "div.skills-grid")
	if err != nil {
		return nil, err
	}
	var skills []string
	skillsGrid.Find("div.skill-item").Each(func(_ int, s *goquery.Selection) {
		if t := collapse(s.Text()); t != "" {
			skills = append(skills, t)
		}
	})

	resume := &core.Resume{
		Document: header,
		Skills:   skills,
	}

	doc.Find("div.section").Each(func(_ int, section *goquery.Selection) {
		title := section.Find("div.section-title").First()
		if title.Length() == 0 {
			return
		}
		switch collapse(title.Text()) {
		case sectionExperience:
			section.Find("div.job").Each(func(_ int, job *goquery.Selection) {
				resume.Jobs = append(resume.Jobs, parseJob(job))
			})
		case sectionMilitary:
			section.Find("div.job").Each(func(_ int, job *goquery.Selection) {
				resume.Military = append(resume.Military, parseJob(job))
			})
		case sectionEducation:
			resume.Education = parseEducation(section)
		}
	})

	resume.SourceHTML = sourceHTML(doc)
	return resume, nil
}

// parseEducation splits the two-column block into its two immediate
// child columns and collects cert-item text from each independently.
func parseEducation(section *goquery.Selection) core.Education {
	var edu core.Education
	columns := section.Find("div.two-column").First().Children()
	columns.Eq(0).Find("div.cert-item").Each(func(_ int, item *goquery.Selection) {
		edu.Left = append(edu.Left, spacedText(item))
	})
	columns.Eq(1).Find("div.cert-item").Each(func(_ int, item *goquery.Selection) {
		edu.Right = append(edu.Right, spacedText(item))
	})
	return edu
}
