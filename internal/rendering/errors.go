// Package rendering turns synthesized portfolio data into HTML documents.
package rendering

import "fmt"

// UnknownTemplateError indicates that the requested template id does not
// match any registered portfolio template.
type UnknownTemplateError struct {
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown portfolio template: %q", e.TemplateID)
}

// RenderError indicates that template execution failed.
type RenderError struct {
	TemplateID string
	Cause      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering template %q: %v", e.TemplateID, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
