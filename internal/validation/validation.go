// Package validation checks rendered portfolio documents for structural
// problems before they are served or exported.
package validation

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Violation describes one structural problem found in a rendered document.
type Violation struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Section, v.Message)
}

// requiredSections must be present in every rendered portfolio regardless of
// template. Optional sections (projects, certifications, ...) are allowed to
// be absent.
var requiredSections = []string{"basic-info", "about", "skills", "experience", "education"}

// CheckDocument parses a rendered portfolio and returns every structural
// violation found. A nil slice means the document is well-formed.
func CheckDocument(htmlContent string) ([]Violation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &DocumentParseError{Cause: err}
	}

	var violations []Violation

	for _, id := range requiredSections {
		if doc.Find("#" + id).Length() == 0 {
			violations = append(violations, Violation{
				Section: id,
				Message: "required section is missing",
			})
		}
	}

	if name := strings.TrimSpace(doc.Find("#basic-info .name").Text()); name == "" {
		violations = append(violations, Violation{
			Section: "basic-info",
			Message: "name heading is empty",
		})
	}

	if doc.Find("#skills .skill").Length() == 0 {
		violations = append(violations, Violation{
			Section: "skills",
			Message: "no skills rendered",
		})
	}
	if doc.Find("#experience .entry").Length() == 0 {
		violations = append(violations, Violation{
			Section: "experience",
			Message: "no experience entries rendered",
		})
	}
	if doc.Find("#education .entry").Length() == 0 {
		violations = append(violations, Violation{
			Section: "education",
			Message: "no education entries rendered",
		})
	}

	return violations, nil
}
