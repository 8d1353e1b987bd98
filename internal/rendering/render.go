package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"sort"
	"strings"

	"github.com/jonathan/portfolio-studio/internal/types"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

// TemplateIDs returns the ids of every registered portfolio template in
// alphabetical order.
func TemplateIDs() []string {
	var ids []string
	for _, t := range templates.Templates() {
		name := t.Name()
		if !strings.HasSuffix(name, ".gohtml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".gohtml"))
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether a template with the given id is registered.
func Has(templateID string) bool {
	return templates.Lookup(templateID+".gohtml") != nil
}

// Render executes the template identified by templateID against the given
// portfolio data and returns the resulting HTML document.
func Render(templateID string, data types.TemplateData) (string, error) {
	tmpl := templates.Lookup(templateID + ".gohtml")
	if tmpl == nil {
		return "", &UnknownTemplateError{TemplateID: templateID}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &RenderError{TemplateID: templateID, Cause: err}
	}
	return buf.String(), nil
}
