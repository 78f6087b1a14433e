package router

import (
	"strconv"
	"strings"

	"github.com/zireael-ui/zireael/zrev"
)

// CodeCursor is a line/column position, both zero-based.
type CodeCursor struct {
	Line, Col int
}

// CodeEditorState is the structured value a code editor widget routes
// events against: lines of text, a cursor, an optional selection
// anchor, and the topmost visible line.
type CodeEditorState struct {
	Lines        []string
	Cursor       CodeCursor
	HasSelection bool
	SelAnchor    CodeCursor
	ScrollTop    int

	undoStack []codeSnapshot
	redoStack []codeSnapshot
}

type codeSnapshot struct {
	lines  []string
	cursor CodeCursor
}

// GutterWidth is the line-number column width in cells: the number of
// digits in the largest line number, plus one for the separator.
func GutterWidth(lineCount int) int {
	return len(strconv.Itoa(maxInt(1, lineCount))) + 1
}

func (s CodeEditorState) snapshot() codeSnapshot {
	cp := make([]string, len(s.Lines))
	copy(cp, s.Lines)
	return codeSnapshot{lines: cp, cursor: s.Cursor}
}

func (s CodeEditorState) pushUndo() CodeEditorState {
	s.undoStack = append(s.undoStack, s.snapshot())
	s.redoStack = nil
	return s
}

// HandleCodeEditorKey applies one key event to state, returning the
// next state and, when content changed, a "codeEdit" action.
func HandleCodeEditorKey(ev zrev.Event, state CodeEditorState, viewport int) (CodeEditorState, *Action) {
	if ev.Kind != zrev.KindKey || (ev.Action != zrev.KeyDown && ev.Action != zrev.KeyRepeat) {
		return state, nil
	}
	ctrl := ev.Mods&zrev.ModCtrl != 0
	shift := ev.Mods&zrev.ModShift != 0

	switch ev.Key {
	case KeyEnter:
		return codeEdit(insertNewline(state.pushUndo()))

	case KeyBackspace:
		return codeEdit(deleteBefore(state.pushUndo()))

	case KeyDelete:
		return codeEdit(deleteAfter(state.pushUndo()))

	case KeyTab:
		if shift {
			return codeEdit(dedentLine(state.pushUndo()))
		}
		return codeEdit(indentLine(state.pushUndo()))

	case KeyUp:
		return moveCursor(state, state.Cursor.Line-1, state.Cursor.Col, shift), nil

	case KeyDown:
		return moveCursor(state, state.Cursor.Line+1, state.Cursor.Col, shift), nil

	case KeyLeft:
		return moveLeft(state, shift), nil

	case KeyRight:
		return moveRight(state, shift), nil

	case KeyHome:
		return moveCursor(state, state.Cursor.Line, 0, shift), nil

	case KeyEnd:
		return moveCursor(state, state.Cursor.Line, len([]rune(currentLine(state))), shift), nil

	case KeyPageUp:
		return moveCursor(state, state.Cursor.Line-viewport, state.Cursor.Col, shift), nil

	case KeyPageDown:
		return moveCursor(state, state.Cursor.Line+viewport, state.Cursor.Col, shift), nil

	case uint32('z'):
		if ctrl {
			return undo(state), nil
		}

	case uint32('y'):
		if ctrl {
			return redo(state), nil
		}
	}

	return state, nil
}

func codeEdit(s CodeEditorState) (CodeEditorState, *Action) {
	return s, &Action{Name: "codeEdit", Extra: map[string]any{"lines": append([]string{}, s.Lines...), "cursor": s.Cursor}}
}

func currentLine(s CodeEditorState) string {
	if s.Cursor.Line < 0 || s.Cursor.Line >= len(s.Lines) {
		return ""
	}
	return s.Lines[s.Cursor.Line]
}

func clampCursor(s CodeEditorState, line, col int) CodeCursor {
	if len(s.Lines) == 0 {
		return CodeCursor{}
	}
	if line < 0 {
		line = 0
	}
	if line > len(s.Lines)-1 {
		line = len(s.Lines) - 1
	}
	lineLen := len([]rune(s.Lines[line]))
	if col < 0 {
		col = 0
	}
	if col > lineLen {
		col = lineLen
	}
	return CodeCursor{Line: line, Col: col}
}

// moveCursor relocates the cursor to line/col. extend grows the
// selection from its existing (or newly anchored) start instead of
// collapsing it, matching Shift+arrow selection-aware movement.
func moveCursor(s CodeEditorState, line, col int, extend bool) CodeEditorState {
	if extend && !s.HasSelection {
		s.SelAnchor = s.Cursor
	}
	s.HasSelection = extend
	s.Cursor = clampCursor(s, line, col)
	return s
}

func moveLeft(s CodeEditorState, extend bool) CodeEditorState {
	if s.Cursor.Col > 0 {
		return moveCursor(s, s.Cursor.Line, s.Cursor.Col-1, extend)
	}
	if s.Cursor.Line > 0 {
		prevLen := len([]rune(s.Lines[s.Cursor.Line-1]))
		return moveCursor(s, s.Cursor.Line-1, prevLen, extend)
	}
	return moveCursor(s, s.Cursor.Line, s.Cursor.Col, extend)
}

func moveRight(s CodeEditorState, extend bool) CodeEditorState {
	lineLen := len([]rune(currentLine(s)))
	if s.Cursor.Col < lineLen {
		return moveCursor(s, s.Cursor.Line, s.Cursor.Col+1, extend)
	}
	if s.Cursor.Line < len(s.Lines)-1 {
		return moveCursor(s, s.Cursor.Line+1, 0, extend)
	}
	return moveCursor(s, s.Cursor.Line, s.Cursor.Col, extend)
}

// selectionBounds returns the selection's low/high cursors in document
// order, or ok=false if there is no active selection.
func selectionBounds(s CodeEditorState) (lo, hi CodeCursor, ok bool) {
	if !s.HasSelection || s.SelAnchor == s.Cursor {
		return CodeCursor{}, CodeCursor{}, false
	}
	lo, hi = s.SelAnchor, s.Cursor
	if lo.Line > hi.Line || (lo.Line == hi.Line && lo.Col > hi.Col) {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// deleteSelection removes the text between the selection bounds,
// leaving the cursor at the seam with no active selection.
func deleteSelection(s CodeEditorState) CodeEditorState {
	lo, hi, ok := selectionBounds(s)
	if !ok {
		s.HasSelection = false
		return s
	}

	head := []rune(s.Lines[lo.Line])[:lo.Col]
	tail := []rune(s.Lines[hi.Line])[hi.Col:]
	merged := string(head) + string(tail)

	lines := make([]string, 0, len(s.Lines)-(hi.Line-lo.Line))
	lines = append(lines, s.Lines[:lo.Line]...)
	lines = append(lines, merged)
	lines = append(lines, s.Lines[hi.Line+1:]...)

	s.Lines = lines
	s.Cursor = lo
	s.HasSelection = false
	return s
}

func insertNewline(s CodeEditorState) CodeEditorState {
	if _, _, ok := selectionBounds(s); ok {
		s = deleteSelection(s)
	}
	line := currentLine(s)
	runes := []rune(line)
	col := s.Cursor.Col
	indent := leadingWhitespace(line)

	before := string(runes[:col])
	after := indent + string(runes[col:])

	lines := make([]string, 0, len(s.Lines)+1)
	lines = append(lines, s.Lines[:s.Cursor.Line]...)
	lines = append(lines, before, after)
	lines = append(lines, s.Lines[s.Cursor.Line+1:]...)
	s.Lines = lines
	s.Cursor = CodeCursor{Line: s.Cursor.Line + 1, Col: len([]rune(indent))}
	return s
}

func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

func deleteBefore(s CodeEditorState) CodeEditorState {
	if _, _, ok := selectionBounds(s); ok {
		return deleteSelection(s)
	}
	if s.Cursor.Col > 0 {
		runes := []rune(currentLine(s))
		next := string(runes[:s.Cursor.Col-1]) + string(runes[s.Cursor.Col:])
		s.Lines[s.Cursor.Line] = next
		s.Cursor.Col--
		return s
	}
	if s.Cursor.Line > 0 {
		prevLen := len([]rune(s.Lines[s.Cursor.Line-1]))
		merged := s.Lines[s.Cursor.Line-1] + s.Lines[s.Cursor.Line]
		lines := append(append([]string{}, s.Lines[:s.Cursor.Line-1]...), merged)
		lines = append(lines, s.Lines[s.Cursor.Line+1:]...)
		s.Lines = lines
		s.Cursor = CodeCursor{Line: s.Cursor.Line - 1, Col: prevLen}
	}
	return s
}

func deleteAfter(s CodeEditorState) CodeEditorState {
	if _, _, ok := selectionBounds(s); ok {
		return deleteSelection(s)
	}
	runes := []rune(currentLine(s))
	if s.Cursor.Col < len(runes) {
		next := string(runes[:s.Cursor.Col]) + string(runes[s.Cursor.Col+1:])
		s.Lines[s.Cursor.Line] = next
		return s
	}
	if s.Cursor.Line < len(s.Lines)-1 {
		merged := s.Lines[s.Cursor.Line] + s.Lines[s.Cursor.Line+1]
		lines := append(append([]string{}, s.Lines[:s.Cursor.Line]...), merged)
		lines = append(lines, s.Lines[s.Cursor.Line+2:]...)
		s.Lines = lines
	}
	return s
}

const indentUnit = "  "

func indentLine(s CodeEditorState) CodeEditorState {
	s.Lines[s.Cursor.Line] = indentUnit + s.Lines[s.Cursor.Line]
	s.Cursor.Col += len(indentUnit)
	return s
}

func dedentLine(s CodeEditorState) CodeEditorState {
	line := s.Lines[s.Cursor.Line]
	trimmed := strings.TrimPrefix(line, indentUnit)
	removed := len(line) - len(trimmed)
	s.Lines[s.Cursor.Line] = trimmed
	if s.Cursor.Col >= removed {
		s.Cursor.Col -= removed
	} else {
		s.Cursor.Col = 0
	}
	return s
}

func undo(s CodeEditorState) CodeEditorState {
	if len(s.undoStack) == 0 {
		return s
	}
	top := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, s.snapshot())
	s.Lines, s.Cursor = top.lines, top.cursor
	return s
}

func redo(s CodeEditorState) CodeEditorState {
	if len(s.redoStack) == 0 {
		return s
	}
	top := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = append(s.undoStack, s.snapshot())
	s.Lines, s.Cursor = top.lines, top.cursor
	return s
}
