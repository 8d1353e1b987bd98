package session

import "errors"

// ErrNavigationPending indicates a navigation request arrived while another
// is already awaiting confirmation. The outstanding decision must be
// resolved first.
var ErrNavigationPending = errors.New("a navigation confirmation is already pending")

// ErrNoPendingNavigation indicates a confirm/cancel transition was invoked
// while the guard was Idle.
var ErrNoPendingNavigation = errors.New("no navigation confirmation is pending")
