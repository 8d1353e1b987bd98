package session

// PageEditor is the page id of the profile editor, the only page whose exits
// are guarded.
const PageEditor = "profile-editor"

// Destination identifies where a navigation wants to go: another page, or a
// tab inside the profile editor. Guarded marks an editor-internal destination
// that still requires confirmation when dirty.
type Destination struct {
	Page    string `json:"page"`
	Tab     string `json:"tab,omitempty"`
	Guarded bool   `json:"guarded,omitempty"`
}

// NavigationRequest is a pending destination plus the dirty-section snapshot
// taken at the moment the request was made. At most one is outstanding.
type NavigationRequest struct {
	Destination   Destination `json:"destination"`
	DirtySections []string    `json:"dirty_sections"`
}

// State identifies the guard's current state.
type State int

const (
	// StateIdle means no navigation is awaiting confirmation.
	StateIdle State = iota
	// StatePendingConfirmation means a navigation is blocked on the user.
	StatePendingConfirmation
)

func (s State) String() string {
	switch s {
	case StatePendingConfirmation:
		return "pending-confirmation"
	default:
		return "idle"
	}
}

// DirtyState is the tracker surface the guard depends on. ConfirmDiscard
// clears it; *Tracker satisfies it.
type DirtyState interface {
	IsDirty() bool
	Sections() []string
	Clear()
}

// Guard is the navigation state machine. It cycles between Idle and
// PendingConfirmation for the lifetime of the session; there is no terminal
// state and no timeout on a pending confirmation.
type Guard struct {
	dirty   DirtyState
	state   State
	pending *NavigationRequest
}

// NewGuard creates a guard in the Idle state over the given dirty state.
func NewGuard(dirty DirtyState) *Guard {
	return &Guard{dirty: dirty, state: StateIdle}
}

// State returns the guard's current state.
func (g *Guard) State() State {
	return g.state
}

// Pending returns a copy of the outstanding request, or nil when Idle.
func (g *Guard) Pending() *NavigationRequest {
	if g.pending == nil {
		return nil
	}
	snapshot := *g.pending
	snapshot.DirtySections = append([]string{}, g.pending.DirtySections...)
	return &snapshot
}

// RequestNavigation decides whether a navigation from currentPage to dest may
// proceed immediately. It returns (true, nil) when the caller should honor
// the navigation now, and (false, nil) when the guard captured it as a
// pending confirmation. A request while one is already pending is a caller
// contract violation and returns ErrNavigationPending: honoring it would
// risk losing the user's pending decision.
func (g *Guard) RequestNavigation(currentPage string, dest Destination) (bool, error) {
	if g.state == StatePendingConfirmation {
		return false, ErrNavigationPending
	}

	if !g.needsConfirmation(currentPage, dest) {
		return true, nil
	}

	g.pending = &NavigationRequest{
		Destination:   dest,
		DirtySections: g.dirty.Sections(),
	}
	g.state = StatePendingConfirmation
	return false, nil
}

// needsConfirmation gates only exits from a dirty editor: leaving the editor
// page entirely, or moving within it to a destination tagged as guarded.
// Switching tabs inside the editor does not clear dirt and does not prompt.
func (g *Guard) needsConfirmation(currentPage string, dest Destination) bool {
	if !g.dirty.IsDirty() {
		return false
	}
	if currentPage != PageEditor {
		return false
	}
	return dest.Page != PageEditor || dest.Guarded
}

// ConfirmSave completes a pending navigation after the caller has performed
// the actual save (store write plus tracker clear). It returns the
// destination to honor.
func (g *Guard) ConfirmSave() (Destination, error) {
	return g.resolve()
}

// ConfirmDiscard abandons the unsaved edits: the dirty set is cleared and
// the pending destination is returned to be honored without saving.
func (g *Guard) ConfirmDiscard() (Destination, error) {
	dest, err := g.resolve()
	if err != nil {
		return Destination{}, err
	}
	g.dirty.Clear()
	return dest, nil
}

// Cancel drops the pending destination. No navigation occurs and the editor
// state, dirty set included, is untouched.
func (g *Guard) Cancel() error {
	if g.state != StatePendingConfirmation {
		return ErrNoPendingNavigation
	}
	g.pending = nil
	g.state = StateIdle
	return nil
}

func (g *Guard) resolve() (Destination, error) {
	if g.state != StatePendingConfirmation || g.pending == nil {
		return Destination{}, ErrNoPendingNavigation
	}
	dest := g.pending.Destination
	g.pending = nil
	g.state = StateIdle
	return dest, nil
}
