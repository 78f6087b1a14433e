// Package focus tracks which interactive widget currently holds focus
// across commits, including the pending-focus side register described
// for cross-frame focus requests.
package focus

import "github.com/zireael-ui/zireael/vtree"

// State holds the active and pending focus across commits. The zero
// value is a valid empty state (nothing focused).
type State struct {
	activeID  string
	pendingID string
	hasActive bool
	hasPend   bool
}

// New returns an empty focus state.
func New() *State { return &State{} }

// Active returns the currently focused widget id, if any.
func (s *State) Active() (string, bool) { return s.activeID, s.hasActive }

// RequestFocus queues id as the next focus target. A later call
// supersedes an earlier unresolved one, matching the "rapid sequential
// pending requests resolve in issue order, later supersedes earlier"
// rule.
func (s *State) RequestFocus(id string) {
	s.pendingID = id
	s.hasPend = true
}

// ClearPending drops any outstanding pending focus request without
// resolving it.
func (s *State) ClearPending() {
	s.pendingID = ""
	s.hasPend = false
}

// SetActive forces the active focus directly, used by the router for
// Tab-cycling and mouse-driven focus changes. It never touches the
// pending register.
func (s *State) SetActive(id string) {
	s.activeID = id
	s.hasActive = id != ""
}

// ApplyPendingFocusChange promotes a pending request once the tree
// that contains it has been committed. If the pending id is not in
// focusIDs, the request is dropped and focus falls back to the first
// focusable entry (or none, if focusIDs is empty). If there is no
// pending request, the currently active id is revalidated against the
// new focus list using the same fallback rule, so a focused widget
// that disappeared across a commit does not leave a dangling focus.
func (s *State) ApplyPendingFocusChange(focusIDs []string) {
	if s.hasPend {
		id := s.pendingID
		s.ClearPending()
		if contains(focusIDs, id) {
			s.SetActive(id)
			return
		}
		s.fallbackToFirst(focusIDs)
		return
	}

	if s.hasActive && contains(focusIDs, s.activeID) {
		return
	}
	s.fallbackToFirst(focusIDs)
}

func (s *State) fallbackToFirst(focusIDs []string) {
	if len(focusIDs) == 0 {
		s.activeID = ""
		s.hasActive = false
		return
	}
	s.SetActive(focusIDs[0])
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// CollectFocusIDs is a convenience wrapper over a committed tree's
// already-computed focus list, kept here so callers only need to
// import focus, not reach back into vtree for this one field.
func CollectFocusIDs(t *vtree.Tree) []string {
	if t == nil {
		return nil
	}
	return t.FocusIDs
}
