// Package session tracks unsaved profile edits and guards navigation away
// from them. It holds no reference to storage or rendering: the controller
// wires the pieces together.
package session

// Tracker accumulates the set of profile sections modified since the last
// successful save. Insertion order is preserved so "what changed" displays
// list sections first-edited-first.
type Tracker struct {
	order []string
	seen  map[string]struct{}
}

// NewTracker creates an empty dirty-state tracker.
func NewTracker() *Tracker {
	return &Tracker{
		order: []string{},
		seen:  map[string]struct{}{},
	}
}

// MarkDirty records that a section was edited. Marking the same section
// twice is a no-op; dirtiness persists until Clear.
func (t *Tracker) MarkDirty(sectionID string) {
	if sectionID == "" {
		return
	}
	if _, ok := t.seen[sectionID]; ok {
		return
	}
	t.seen[sectionID] = struct{}{}
	t.order = append(t.order, sectionID)
}

// Clear empties the dirty set. Clearing is all-or-nothing: there is no way
// to clear a single section.
func (t *Tracker) Clear() {
	t.order = t.order[:0]
	for k := range t.seen {
		delete(t.seen, k)
	}
}

// IsDirty reports whether any section has been edited since the last save.
func (t *Tracker) IsDirty() bool {
	return len(t.order) > 0
}

// Sections returns a snapshot of the dirty sections in insertion order.
func (t *Tracker) Sections() []string {
	return append([]string{}, t.order...)
}
