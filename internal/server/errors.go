package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/portfolio-studio/internal/app"
	"github.com/jonathan/portfolio-studio/internal/rendering"
	"github.com/jonathan/portfolio-studio/internal/session"
	"github.com/jonathan/portfolio-studio/internal/store"
)

// ErrUnauthorized indicates a missing or invalid session token
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
	Cause   error
}

func (e *ErrValidation) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ErrValidation) Unwrap() error {
	return e.Cause
}

// ErrNothingToRender indicates there is no active portfolio data: the
// session is in live mode and the profile is not complete yet.
type ErrNothingToRender struct{}

func (e *ErrNothingToRender) Error() string {
	return "no portfolio data to render: complete the profile or enable preview mode"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unauthorized    *ErrUnauthorized
		validation      *ErrValidation
		nothingToRender *ErrNothingToRender
		unknownTemplate *rendering.UnknownTemplateError
	)

	switch {
	case errors.As(err, &unauthorized), errors.Is(err, app.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.As(err, &validation), errors.As(err, &unknownTemplate):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNavigationPending), errors.Is(err, session.ErrNoPendingNavigation):
		return http.StatusConflict
	case errors.As(err, &nothingToRender):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
