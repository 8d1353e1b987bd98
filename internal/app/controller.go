// Package app wires the profile store, the synthesizer and the navigation
// guard into one controller owning the active session's state. The UI layer
// emits intents; the controller decides what actually happens.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-studio/internal/session"
	"github.com/jonathan/portfolio-studio/internal/store"
	"github.com/jonathan/portfolio-studio/internal/synthesis"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// Page identifiers. PageEditor is defined in the session package because the
// guard needs it; the rest only matter to the controller and the UI.
const (
	PageHome      = "home"
	PageEditor    = session.PageEditor
	PageTemplates = "templates"
	PagePortfolio = "portfolio"
)

// Decisions for resolving a pending navigation confirmation.
const (
	DecisionSave    = "save"
	DecisionDiscard = "discard"
	DecisionCancel  = "cancel"
)

// ErrNotLoggedIn indicates an intent that needs an active profile arrived
// before login.
var ErrNotLoggedIn = errors.New("no active session")

// Snapshot is the controller state exposed to the rendering layer.
type Snapshot struct {
	Page          string                      `json:"page"`
	Tab           string                      `json:"tab,omitempty"`
	LoggedIn      bool                        `json:"logged_in"`
	UserID        uuid.UUID                   `json:"user_id,omitempty"`
	TemplateID    string                      `json:"template_id"`
	PreviewMode   bool                        `json:"preview_mode"`
	Completion    types.CompletionState       `json:"completion"`
	DirtySections []string                    `json:"dirty_sections"`
	Pending       *session.NavigationRequest `json:"pending_confirmation,omitempty"`
	TemplateData  *types.TemplateData         `json:"template_data,omitempty"`
}

// Controller owns the current page, user, working profile, template
// selection and preview/live mode for the active session. All intents are
// serialized through one mutex: the core is a single logical thread of
// control, and a second save for the same user must not begin before the
// first completes.
type Controller struct {
	mu    sync.Mutex
	store *store.Store

	dirty *session.Tracker
	guard *session.Guard

	page        string
	tab         string
	loggedIn    bool
	userID      uuid.UUID
	profile     *types.Profile
	templateID  string
	previewMode bool

	// Derived; regenerated as a whole value, never patched in place.
	templateData *types.TemplateData
}

// New creates a controller for a fresh session on the home page with the
// default template in live mode.
func New(st *store.Store) *Controller {
	tracker := session.NewTracker()
	return &Controller{
		store:      st,
		dirty:      tracker,
		guard:      session.NewGuard(tracker),
		page:       PageHome,
		templateID: synthesis.TemplateModern,
	}
}

// UserIDForEmail derives the stable user id for an email address. Login is
// simulated, so the email is the identity: the same address always maps to
// the same durable record.
func UserIDForEmail(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email))
}

// Login starts a session for the given identity. An existing durable record
// is loaded; a missing or unreadable one starts a fresh empty profile. Any
// in-memory state from a previous session is discarded.
func (c *Controller) Login(ctx context.Context, name, email string) (*types.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	userID := UserIDForEmail(email)

	profile, err := c.store.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("loading profile on login: %w", err)
		}
		profile = types.NewProfile(userID, name, email)
	}

	c.loggedIn = true
	c.userID = userID
	c.profile = profile
	c.dirty = session.NewTracker()
	c.guard = session.NewGuard(c.dirty)
	c.page = PageHome
	c.tab = ""
	c.refreshTemplateData()

	return profile.Clone(), nil
}

// Logout ends the session. In-memory state is dropped; the durable record is
// untouched, so unsaved edits are lost by design (the UI routes logout
// through the navigation guard before calling this).
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loggedIn = false
	c.userID = uuid.Nil
	c.profile = nil
	c.dirty = session.NewTracker()
	c.guard = session.NewGuard(c.dirty)
	c.page = PageHome
	c.tab = ""
	c.refreshTemplateData()
}

// FieldChanged records that a profile section was edited in the UI.
func (c *Controller) FieldChanged(sectionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loggedIn {
		return ErrNotLoggedIn
	}
	c.dirty.MarkDirty(sectionID)
	return nil
}

// Navigate asks the guard whether the move may happen now. It returns true
// when the page changed, false when the guard captured the request as a
// pending confirmation. ErrNavigationPending surfaces when a confirmation is
// already outstanding.
func (c *Controller) Navigate(dest session.Destination) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proceed, err := c.guard.RequestNavigation(c.page, dest)
	if err != nil {
		return false, err
	}
	if !proceed {
		return false, nil
	}
	c.moveTo(dest)
	return true, nil
}

// ResolveNavigation applies the user's decision to the pending confirmation.
// For DecisionSave, updated may carry the editor's latest profile state; nil
// saves the current working copy. For DecisionDiscard the working copy is
// reloaded from the durable record so the in-progress edits vanish.
func (c *Controller) ResolveNavigation(ctx context.Context, decision string, updated *types.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch decision {
	case DecisionSave:
		if !c.loggedIn {
			return ErrNotLoggedIn
		}
		if updated != nil {
			if err := c.adoptProfile(updated); err != nil {
				return err
			}
		}
		if err := c.store.Save(ctx, c.profile); err != nil {
			return fmt.Errorf("saving profile before navigation: %w", err)
		}
		c.dirty.Clear()
		dest, err := c.guard.ConfirmSave()
		if err != nil {
			return err
		}
		c.refreshTemplateData()
		c.moveTo(dest)
		return nil

	case DecisionDiscard:
		dest, err := c.guard.ConfirmDiscard()
		if err != nil {
			return err
		}
		c.reloadProfile(ctx)
		c.refreshTemplateData()
		c.moveTo(dest)
		return nil

	case DecisionCancel:
		return c.guard.Cancel()

	default:
		return fmt.Errorf("unknown navigation decision %q", decision)
	}
}

// SaveProfile persists the profile handed over by the editor, clears the
// dirty set and refreshes any active live template data.
func (c *Controller) SaveProfile(ctx context.Context, updated *types.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loggedIn {
		return ErrNotLoggedIn
	}
	if err := c.adoptProfile(updated); err != nil {
		return err
	}
	if err := c.store.Save(ctx, c.profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	c.dirty.Clear()
	c.refreshTemplateData()
	return nil
}

// SelectTemplate switches the active template. The data source is never
// implicitly swapped: preview stays preview, live stays live, but the data
// is regenerated for the new template id.
func (c *Controller) SelectTemplate(templateID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.templateID = templateID
	c.refreshTemplateData()
}

// SetPreviewMode toggles between sample-data preview and live rendering.
func (c *Controller) SetPreviewMode(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.previewMode = enabled
	c.refreshTemplateData()
}

// Snapshot returns the state the rendering layer needs, as copies.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Page:          c.page,
		Tab:           c.tab,
		LoggedIn:      c.loggedIn,
		UserID:        c.userID,
		TemplateID:    c.templateID,
		PreviewMode:   c.previewMode,
		Completion:    synthesis.Completion(c.profile),
		DirtySections: c.dirty.Sections(),
		Pending:       c.guard.Pending(),
	}
	if c.templateData != nil {
		data := *c.templateData
		snap.TemplateData = &data
	}
	return snap
}

// Profile returns a clone of the working profile, or nil before login.
func (c *Controller) Profile() *types.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.Clone()
}

// TemplateData returns a copy of the active template data, or nil when there
// is nothing to render (live mode with an incomplete profile).
func (c *Controller) TemplateData() *types.TemplateData {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.templateData == nil {
		return nil
	}
	data := *c.templateData
	return &data
}

// TemplateID returns the active template selection.
func (c *Controller) TemplateID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.templateID
}

// UserID returns the active user id, or uuid.Nil before login.
func (c *Controller) UserID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

// adoptProfile takes the editor's profile as the new working copy, pinning
// the identity fields the UI must not change.
func (c *Controller) adoptProfile(updated *types.Profile) error {
	if updated == nil {
		return fmt.Errorf("profile is nil")
	}
	adopted := updated.Clone()
	adopted.ID = c.userID
	adopted.Normalize()
	c.profile = adopted
	return nil
}

// reloadProfile restores the working copy from the durable record, falling
// back to a fresh empty profile when none exists.
func (c *Controller) reloadProfile(ctx context.Context) {
	if !c.loggedIn {
		return
	}
	profile, err := c.store.Load(ctx, c.userID)
	if err != nil {
		name, email := "", ""
		if c.profile != nil {
			name, email = c.profile.Name, c.profile.Email
		}
		profile = types.NewProfile(c.userID, name, email)
	}
	c.profile = profile
}

// refreshTemplateData rebuilds the derived projection according to the mode
// invariant: preview always renders dummy data for the active template; live
// renders the profile only when complete, and is absent otherwise.
func (c *Controller) refreshTemplateData() {
	if c.previewMode {
		data := synthesis.DummyData(c.templateID)
		c.templateData = &data
		return
	}
	if c.loggedIn && synthesis.IsComplete(c.profile) {
		data := synthesis.FromProfile(c.profile)
		c.templateData = &data
		return
	}
	c.templateData = nil
}

func (c *Controller) moveTo(dest session.Destination) {
	c.page = dest.Page
	c.tab = dest.Tab
}
