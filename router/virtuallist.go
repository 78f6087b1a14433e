package router

import "github.com/zireael-ui/zireael/zrev"

// ScrollState is the immutable selection/scroll record a virtual list
// routes key events against.
type ScrollState struct {
	SelectedIndex int
	ScrollTop     int
}

// HandleVirtualListKey computes the next selection and scroll position
// for ArrowUp/Down/PageUp/PageDown/Home/End, clamping scrollTop to
// [0, totalHeight-viewport] and keeping the selected row on-screen.
// itemCount/itemHeight describe uniform-height rows; viewport is the
// visible height in the same units. Non-matching keys return state
// unchanged.
func HandleVirtualListKey(ev zrev.Event, itemCount, itemHeight, viewport int, state ScrollState) ScrollState {
	if ev.Kind != zrev.KindKey || ev.Action != zrev.KeyDown || itemCount <= 0 {
		return state
	}

	selected := state.SelectedIndex
	switch ev.Key {
	case KeyUp:
		selected--
	case KeyDown:
		selected++
	case KeyPageUp:
		selected -= maxInt(1, viewport/maxInt(1, itemHeight))
	case KeyPageDown:
		selected += maxInt(1, viewport/maxInt(1, itemHeight))
	case KeyHome:
		selected = 0
	case KeyEnd:
		selected = itemCount - 1
	default:
		return state
	}

	if selected < 0 {
		selected = 0
	}
	if selected > itemCount-1 {
		selected = itemCount - 1
	}

	totalHeight := itemCount * itemHeight
	maxScroll := totalHeight - viewport
	if maxScroll < 0 {
		maxScroll = 0
	}

	scrollTop := state.ScrollTop
	selectedTop := selected * itemHeight
	selectedBottom := selectedTop + itemHeight
	if selectedTop < scrollTop {
		scrollTop = selectedTop
	} else if selectedBottom > scrollTop+viewport {
		scrollTop = selectedBottom - viewport
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if scrollTop > maxScroll {
		scrollTop = maxScroll
	}

	return ScrollState{SelectedIndex: selected, ScrollTop: scrollTop}
}

// HandleWheelScroll translates a mouse wheel event into a scroll-top
// delta of 3 lines per wheel tick, clamped to [0, totalHeight-viewport].
func HandleWheelScroll(ev zrev.Event, itemCount, itemHeight, viewport int, scrollTop int) int {
	if ev.Kind != zrev.KindMouse || ev.MouseKind != 5 {
		return scrollTop
	}
	const linesPerTick = 3
	delta := int(ev.WheelY) * linesPerTick * itemHeight
	next := scrollTop + delta

	maxScroll := itemCount*itemHeight - viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	if next < 0 {
		next = 0
	}
	if next > maxScroll {
		next = maxScroll
	}
	return next
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
