package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/portfolio-studio/internal/export"
	"github.com/jonathan/portfolio-studio/internal/rendering"
	"github.com/jonathan/portfolio-studio/internal/session"
	"github.com/jonathan/portfolio-studio/internal/types"
	"github.com/jonathan/portfolio-studio/internal/validation"
)

// decodeJSON decodes a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ErrValidation{Message: "invalid request body", Cause: err}
	}
	return nil
}

// handleLogin starts a session for the given identity and returns the loaded
// or freshly created profile together with a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failWith(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: "invalid login request", Cause: err})
		return
	}

	profile, err := s.controller.Login(r.Context(), req.Name, req.Email)
	if err != nil {
		s.failWith(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(s.controller.UserID())
	if err != nil {
		s.failWith(w, fmt.Errorf("generating session token: %w", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{Profile: profile, Token: token})
}

// handleLogout ends the session. Unsaved edits are dropped; the UI routes
// logout through the navigation guard first.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}
	s.controller.Logout()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// handleState returns the controller snapshot the UI renders from.
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

// handleFieldChanged records that a profile section was edited.
func (s *Server) handleFieldChanged(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	var req types.FieldChangedRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failWith(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: "invalid field-changed request", Cause: err})
		return
	}

	if err := s.controller.FieldChanged(req.Section); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

// handleNavigate asks the controller to move to another page or tab. When the
// guard intercepts the move the response carries the pending confirmation
// instead of a page change.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	var req types.NavigateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failWith(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: "invalid navigate request", Cause: err})
		return
	}

	moved, err := s.controller.Navigate(session.Destination{
		Page:    req.Page,
		Tab:     req.Tab,
		Guarded: req.Guarded,
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"navigated": moved,
		"state":     s.controller.Snapshot(),
	})
}

// handleResolveNavigation applies the user's save/discard/cancel decision to
// the pending navigation confirmation.
func (s *Server) handleResolveNavigation(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	var req types.ResolveNavigationRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failWith(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: "invalid resolve request", Cause: err})
		return
	}

	if err := s.controller.ResolveNavigation(r.Context(), req.Decision, req.Profile); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

// handleGetProfile returns the working profile for the active session.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	profile := s.controller.Profile()
	if profile == nil {
		s.failWith(w, &ErrUnauthorized{Message: "no active session"})
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleSaveProfile persists the editor's profile state.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	var profile types.Profile
	if err := decodeJSON(r, &profile); err != nil {
		s.failWith(w, err)
		return
	}

	if err := s.controller.SaveProfile(r.Context(), &profile); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

// handleSelectTemplate switches the active portfolio template.
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	var req types.SelectTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failWith(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: "invalid template request", Cause: err})
		return
	}
	if !rendering.Has(req.TemplateID) {
		s.failWith(w, &rendering.UnknownTemplateError{TemplateID: req.TemplateID})
		return
	}

	s.controller.SelectTemplate(req.TemplateID)
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

// handlePreviewMode toggles between sample-data preview and live rendering.
func (s *Server) handlePreviewMode(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	var req types.PreviewModeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failWith(w, err)
		return
	}

	s.controller.SetPreviewMode(req.Enabled)
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

// handleTemplates lists the registered portfolio templates.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": rendering.TemplateIDs()})
}

// handleRender returns the active portfolio as HTML.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	data := s.controller.TemplateData()
	if data == nil {
		s.failWith(w, &ErrNothingToRender{})
		return
	}

	html, err := rendering.Render(s.controller.TemplateID(), *data)
	if err != nil {
		s.failWith(w, err)
		return
	}

	if violations, err := validation.CheckDocument(html); err == nil {
		for _, v := range violations {
			log.Printf("render violation: %s", v)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleExportPDF prints the active portfolio to PDF and caches the result.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	data := s.controller.TemplateData()
	if data == nil {
		s.failWith(w, &ErrNothingToRender{})
		return
	}

	templateID := s.controller.TemplateID()
	pdf, err := export.ToPDF(r.Context(), templateID, *data)
	if err != nil {
		s.failWith(w, err)
		return
	}

	if err := s.store.SaveExport(r.Context(), s.controller.UserID(), templateID, export.FormatPDF, pdf); err != nil {
		// The export itself succeeded; caching is best effort.
		log.Printf("caching export: %v", err)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "portfolio-"+templateID+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleAssistAbout drafts an "about" blurb from the working profile.
func (s *Server) handleAssistAbout(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.failWith(w, err)
		return
	}

	profile := s.controller.Profile()
	if profile == nil {
		s.failWith(w, &ErrUnauthorized{Message: "no active session"})
		return
	}

	suggestion, err := s.suggester.SuggestAbout(r.Context(), profile)
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"about": suggestion})
}
