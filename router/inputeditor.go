package router

import "github.com/zireael-ui/zireael/zrev"

// InputState is the immutable value/cursor record a single-line input
// widget routes key/text/paste events against. Cursor and selection
// bounds are rune offsets, not byte offsets.
type InputState struct {
	Value        string
	Cursor       int
	HasSelection bool
	SelAnchor    int
}

const ctrlA = uint32('a')

// HandleInputKey applies one event to state and returns the next state
// plus, when the edit should be surfaced to the application, an
// "input" action carrying id, the new value, and cursor. id identifies
// the focused widget the same way hitTargetID does for HandleMouse.
func HandleInputKey(ev zrev.Event, id string, state InputState) (InputState, *Action) {
	runes := []rune(state.Value)

	switch ev.Kind {
	case zrev.KindText:
		next := replaceSelection(runes, state, []rune{rune(ev.Codepoint)})
		return emitInput(id, next)

	case zrev.KindPaste:
		next := replaceSelection(runes, state, []rune(string(ev.Bytes)))
		return emitInput(id, next)

	case zrev.KindKey:
		if ev.Action != zrev.KeyDown && ev.Action != zrev.KeyRepeat {
			return state, nil
		}
		ctrl := ev.Mods&zrev.ModCtrl != 0

		switch ev.Key {
		case KeyBackspace:
			if state.HasSelection {
				return emitInput(id, replaceSelection(runes, state, nil))
			}
			if state.Cursor == 0 {
				return state, nil
			}
			start := state.Cursor - 1
			if ctrl {
				start = wordLeft(runes, state.Cursor)
			}
			next := append(append([]rune{}, runes[:start]...), runes[state.Cursor:]...)
			return emitInput(id, InputState{Value: string(next), Cursor: start})

		case KeyDelete:
			if state.HasSelection {
				return emitInput(id, replaceSelection(runes, state, nil))
			}
			if state.Cursor >= len(runes) {
				return state, nil
			}
			end := state.Cursor + 1
			if ctrl {
				end = wordRight(runes, state.Cursor)
			}
			next := append(append([]rune{}, runes[:state.Cursor]...), runes[end:]...)
			return emitInput(id, InputState{Value: string(next), Cursor: state.Cursor})

		case KeyLeft:
			pos := state.Cursor - 1
			if ctrl {
				pos = wordLeft(runes, state.Cursor)
			}
			if pos < 0 {
				pos = 0
			}
			return InputState{Value: state.Value, Cursor: pos}, nil

		case KeyRight:
			pos := state.Cursor + 1
			if ctrl {
				pos = wordRight(runes, state.Cursor)
			}
			if pos > len(runes) {
				pos = len(runes)
			}
			return InputState{Value: state.Value, Cursor: pos}, nil

		case KeyHome:
			return InputState{Value: state.Value, Cursor: 0}, nil

		case KeyEnd:
			return InputState{Value: state.Value, Cursor: len(runes)}, nil

		case ctrlA:
			if ctrl {
				return InputState{Value: state.Value, Cursor: len(runes), HasSelection: len(runes) > 0, SelAnchor: 0}, nil
			}
		}
	}

	return state, nil
}

func emitInput(id string, next InputState) (InputState, *Action) {
	return next, &Action{ID: id, Name: "input", Extra: map[string]any{"value": next.Value, "cursor": next.Cursor}}
}

// replaceSelection deletes the current selection (if any) and splices
// inserted at the resulting cursor position.
func replaceSelection(runes []rune, state InputState, inserted []rune) InputState {
	lo, hi := state.Cursor, state.Cursor
	if state.HasSelection {
		lo, hi = state.SelAnchor, state.Cursor
		if lo > hi {
			lo, hi = hi, lo
		}
	}
	next := make([]rune, 0, len(runes)-(hi-lo)+len(inserted))
	next = append(next, runes[:lo]...)
	next = append(next, inserted...)
	next = append(next, runes[hi:]...)
	return InputState{Value: string(next), Cursor: lo + len(inserted)}
}

func wordLeft(runes []rune, from int) int {
	i := from
	for i > 0 && isSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !isSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordRight(runes []rune, from int) int {
	i := from
	for i < len(runes) && isSpace(runes[i]) {
		i++
	}
	for i < len(runes) && !isSpace(runes[i]) {
		i++
	}
	return i
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
