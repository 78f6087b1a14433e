// Package router maps parsed input events onto focus/pressed-state
// transitions and at most one application-facing action per event,
// deterministically and without performing any I/O (C6).
package router

import (
	"github.com/zireael-ui/zireael/zrev"
)

// Action is emitted at most once per routed event.
type Action struct {
	ID    string
	Name  string // "press" | "input" | "codeEdit"; the app runtime also emits "scroll"
	Extra map[string]any
}

// FocusQuery is the read-only state the router consults for a given
// routing decision; it never mutates these maps.
type FocusQuery struct {
	FocusList []string
	Focused   string // "" means nothing focused
	Enabled   map[string]bool
	Pressable map[string]bool
	Pressed   string // "" means nothing pressed
}

// Result carries the router's output for one event: at most one
// focus change, one pressed-state change, and one action. A nil
// pointer means "unchanged"; explicitly clearing focus/pressed is
// represented by a pointer to the empty string.
type Result struct {
	NextFocused *string
	NextPressed *string
	Action      *Action
}

func strPtr(s string) *string { return &s }

// HandleKey implements the key-event rules of §4.6: Tab/Shift+Tab
// cycling, Enter/Space press, and Escape layer-close notification.
// layerCloseOnEscape/hasOnClose describe the topmost layer, if any;
// when escapeClose is true the caller should invoke that layer's
// onClose callback — the router itself never calls it.
func HandleKey(ev zrev.Event, q FocusQuery, layerCloseOnEscape, hasOnClose bool) (res Result, escapeClose bool) {
	if ev.Kind != zrev.KindKey || ev.Action != zrev.KeyDown {
		return Result{}, false
	}

	switch ev.Key {
	case KeyTab:
		next := cycleFocus(q.FocusList, q.Focused, ev.Mods&zrev.ModShift != 0)
		if next != "" {
			res.NextFocused = strPtr(next)
		}
		return res, false

	case KeyEnter, keySpace:
		if q.Focused != "" && q.Enabled[q.Focused] && q.Pressable[q.Focused] {
			res.Action = &Action{ID: q.Focused, Name: "press"}
		}
		return res, false

	case KeyEscape:
		if layerCloseOnEscape && hasOnClose {
			return Result{}, true
		}
		return Result{}, false
	}

	return Result{}, false
}

func cycleFocus(list []string, current string, reverse bool) string {
	if len(list) == 0 {
		return ""
	}
	idx := -1
	for i, id := range list {
		if id == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		return list[0]
	}
	if reverse {
		idx = (idx - 1 + len(list)) % len(list)
	} else {
		idx = (idx + 1) % len(list)
	}
	return list[idx]
}

// HandleMouse implements the mouse rules of §4.6. hitTargetID is the
// id under the cursor (empty if none); hit-testing itself is a layout
// concern performed by the caller.
func HandleMouse(ev zrev.Event, q FocusQuery, hitTargetID string) Result {
	if ev.Kind != zrev.KindMouse {
		return Result{}
	}

	switch ev.MouseKind {
	case 3: // down
		var res Result
		if hitTargetID != "" && q.Enabled[hitTargetID] {
			res.NextFocused = strPtr(hitTargetID)
			if q.Pressable[hitTargetID] {
				res.NextPressed = strPtr(hitTargetID)
			} else {
				res.NextPressed = strPtr("")
			}
		}
		return res

	case 4: // up
		var res Result
		if q.Pressed != "" && q.Pressed == hitTargetID && q.Enabled[q.Pressed] && q.Pressable[q.Pressed] {
			res.Action = &Action{ID: q.Pressed, Name: "press"}
		}
		res.NextPressed = strPtr("")
		return res
	}

	return Result{}
}
