// Package store provides durable local persistence for profile records.
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound indicates no durable record exists for the requested user.
var ErrNotFound = errors.New("profile not found")

// CorruptRecordError indicates a durable record exists but cannot be read
// back as a valid profile. Callers treat it as absence: errors.Is reports
// ErrNotFound so the session can fall back to a fresh profile while the
// underlying cause stays available for logging.
type CorruptRecordError struct {
	UserID uuid.UUID
	Cause  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt profile record for user %s: %v", e.UserID, e.Cause)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Cause
}

// Is reports ErrNotFound so corrupt records match the not-found path.
func (e *CorruptRecordError) Is(target error) bool {
	return target == ErrNotFound
}
