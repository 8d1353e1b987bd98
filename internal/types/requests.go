package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents the simulated-login request. There is no password:
// the session is local and authentication is out of scope.
type LoginRequest struct {
	Name  string `json:"name" validate:"required,min=1"`
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse represents the login response with the session token and the
// loaded (or freshly created) profile.
type LoginResponse struct {
	Profile *Profile `json:"profile"`
	Token   string   `json:"token"`
}

// FieldChangedRequest reports that a profile section was edited in the UI.
type FieldChangedRequest struct {
	Section string `json:"section" validate:"required"`
}

// NavigateRequest asks the controller to move to another page, or to a tab
// inside the profile editor.
type NavigateRequest struct {
	Page    string `json:"page" validate:"required"`
	Tab     string `json:"tab,omitempty"`
	Guarded bool   `json:"guarded,omitempty"`
}

// ResolveNavigationRequest carries the user's decision for a pending
// navigation confirmation. For a save decision, Profile optionally carries
// the editor's latest unsaved content.
type ResolveNavigationRequest struct {
	Decision string   `json:"decision" validate:"required,oneof=save discard cancel"`
	Profile  *Profile `json:"profile,omitempty"`
}

// SelectTemplateRequest switches the active portfolio template.
type SelectTemplateRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
}

// PreviewModeRequest toggles preview (sample data) rendering.
type PreviewModeRequest struct {
	Enabled bool `json:"enabled"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the FieldChangedRequest using the validator.
func (r *FieldChangedRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the NavigateRequest using the validator.
func (r *NavigateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResolveNavigationRequest using the validator.
func (r *ResolveNavigationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SelectTemplateRequest using the validator.
func (r *SelectTemplateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
