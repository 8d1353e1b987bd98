package validation

import "fmt"

// DocumentParseError indicates that the rendered output could not be parsed
// as HTML.
type DocumentParseError struct {
	Cause error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("parsing rendered document: %v", e.Cause)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Cause
}
