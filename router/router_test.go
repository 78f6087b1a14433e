package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zireael-ui/zireael/router"
	"github.com/zireael-ui/zireael/zrev"
)

func keyDown(key uint32, mods uint32) zrev.Event {
	return zrev.Event{Kind: zrev.KindKey, Key: key, Mods: mods, Action: zrev.KeyDown}
}

func TestTabCyclingScenarioS5(t *testing.T) {
	q := router.FocusQuery{FocusList: []string{"a", "b", "c"}, Focused: "a"}

	res, _ := router.HandleKey(keyDown(router.KeyTab, 0), q, false, false)
	assert.Equal(t, "b", *res.NextFocused)
	q.Focused = *res.NextFocused

	res, _ = router.HandleKey(keyDown(router.KeyTab, zrev.ModShift), q, false, false)
	assert.Equal(t, "a", *res.NextFocused)
	q.Focused = *res.NextFocused

	res, _ = router.HandleKey(keyDown(router.KeyTab, zrev.ModShift), q, false, false)
	assert.Equal(t, "c", *res.NextFocused)
}

func TestEnterPressesFocusedPressableEnabled(t *testing.T) {
	q := router.FocusQuery{
		FocusList: []string{"btn"}, Focused: "btn",
		Enabled:   map[string]bool{"btn": true},
		Pressable: map[string]bool{"btn": true},
	}
	res, _ := router.HandleKey(keyDown(router.KeyEnter, 0), q, false, false)
	assert.NotNil(t, res.Action)
	assert.Equal(t, "btn", res.Action.ID)
	assert.Equal(t, "press", res.Action.Name)
}

func TestEnterNoOpWhenDisabled(t *testing.T) {
	q := router.FocusQuery{
		FocusList: []string{"btn"}, Focused: "btn",
		Enabled:   map[string]bool{"btn": false},
		Pressable: map[string]bool{"btn": true},
	}
	res, _ := router.HandleKey(keyDown(router.KeyEnter, 0), q, false, false)
	assert.Nil(t, res.Action)
}

func TestEscapeClosesTopmostLayerWithOnClose(t *testing.T) {
	_, closed := router.HandleKey(keyDown(router.KeyEscape, 0), router.FocusQuery{}, true, true)
	assert.True(t, closed)

	_, closed = router.HandleKey(keyDown(router.KeyEscape, 0), router.FocusQuery{}, false, true)
	assert.False(t, closed)
}

func TestVirtualListHomeEndScenarioS6(t *testing.T) {
	start := router.ScrollState{SelectedIndex: 50, ScrollTop: 50}

	end := router.HandleVirtualListKey(keyDown(router.KeyEnd, 0), 100, 1, 10, start)
	assert.Equal(t, 99, end.SelectedIndex)
	assert.Equal(t, 90, end.ScrollTop)

	home := router.HandleVirtualListKey(keyDown(router.KeyHome, 0), 100, 1, 10, start)
	assert.Equal(t, 0, home.SelectedIndex)
	assert.Equal(t, 0, home.ScrollTop)
}

func TestVirtualListArrowDownScrollsWhenPastViewport(t *testing.T) {
	state := router.ScrollState{SelectedIndex: 9, ScrollTop: 0}
	next := router.HandleVirtualListKey(keyDown(router.KeyDown, 0), 100, 1, 10, state)
	assert.Equal(t, 10, next.SelectedIndex)
	assert.Equal(t, 1, next.ScrollTop)
}

func TestMouseDownSetsFocusAndPressed(t *testing.T) {
	q := router.FocusQuery{Enabled: map[string]bool{"btn": true}, Pressable: map[string]bool{"btn": true}}
	ev := zrev.Event{Kind: zrev.KindMouse, MouseKind: 3}
	res := router.HandleMouse(ev, q, "btn")
	assert.Equal(t, "btn", *res.NextFocused)
	assert.Equal(t, "btn", *res.NextPressed)
}

func TestMouseUpEmitsPressWhenTargetsMatch(t *testing.T) {
	q := router.FocusQuery{
		Pressed:   "btn",
		Enabled:   map[string]bool{"btn": true},
		Pressable: map[string]bool{"btn": true},
	}
	ev := zrev.Event{Kind: zrev.KindMouse, MouseKind: 4}
	res := router.HandleMouse(ev, q, "btn")
	assert.NotNil(t, res.Action)
	assert.Equal(t, "btn", res.Action.ID)
	assert.Equal(t, "", *res.NextPressed)
}

func TestInputEditorInsertAndBackspace(t *testing.T) {
	state := router.InputState{Value: "hllo", Cursor: 1}
	state, action := router.HandleInputKey(zrev.Event{Kind: zrev.KindText, Codepoint: 'e'}, "name", state)
	assert.Equal(t, "hello", state.Value)
	assert.Equal(t, 2, state.Cursor)
	assert.Equal(t, "name", action.ID)
	assert.Equal(t, "input", action.Name)

	state, _ = router.HandleInputKey(keyDown(router.KeyBackspace, 0), "name", state)
	assert.Equal(t, "hllo", state.Value)
	assert.Equal(t, 1, state.Cursor)
}

func TestCodeEditorGutterWidth(t *testing.T) {
	assert.Equal(t, 2, router.GutterWidth(9))
	assert.Equal(t, 3, router.GutterWidth(10))
	assert.Equal(t, 4, router.GutterWidth(100))
}

func TestCodeEditorNewlineAutoIndent(t *testing.T) {
	state := router.CodeEditorState{Lines: []string{"  foo"}, Cursor: router.CodeCursor{Line: 0, Col: 5}}
	state, action := router.HandleCodeEditorKey(keyDown(router.KeyEnter, 0), state, 10)
	assert.Equal(t, []string{"  foo", "  "}, state.Lines)
	assert.Equal(t, router.CodeCursor{Line: 1, Col: 2}, state.Cursor)
	assert.Equal(t, "codeEdit", action.Name)
}
