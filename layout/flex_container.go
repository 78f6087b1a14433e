package layout

import (
	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/vtree"
)

func parseJustify(s string) Justify {
	switch s {
	case "end":
		return JustifyEnd
	case "center":
		return JustifyCenter
	case "between":
		return JustifyBetween
	case "evenly":
		return JustifyEvenly
	case "around":
		return JustifyAround
	default:
		return JustifyStart
	}
}

func parseAlign(s string) AlignCross {
	switch s {
	case "end":
		return AlignEnd
	case "center":
		return AlignCenter
	case "start":
		return AlignStart
	default:
		return AlignStretch
	}
}

// layoutFlexChildren resolves and positions the children of a row or
// column container, following §4.4: fixed-size children are measured
// first, remaining main-axis space is distributed across flexible
// children via DistributeFlex, and leftover space is turned into
// leading/interior gaps via JustifyOffsets.
func (e *Engine) layoutFlexChildren(inst *vtree.Instance, rect Rect, dir Direction, baseLayer int) []*Tree {
	children := inst.Children
	n := len(children)
	if n == 0 {
		return nil
	}

	mainSize, crossSize := rect.W, rect.H
	if dir == Column {
		mainSize, crossSize = rect.H, rect.W
	}

	gap := inst.Props.Gap
	totalGaps := 0
	if n > 1 {
		totalGaps = gap * (n - 1)
	}

	mainOf := make([]int, n)
	flexIdx := make([]int, 0, n)
	var flexItems []FlexItem
	fixedTotal := 0

	for i, c := range children {
		cons := c.Props.Constraints
		if cons.Flex > 0 {
			min, _ := cons.MainMin(dir == Row).ResolveAgainst(mainSize)
			max, maxOK := cons.MainMax(dir == Row).ResolveAgainst(mainSize)
			if !maxOK {
				max = MaxUnbounded
			}
			flexIdx = append(flexIdx, i)
			flexItems = append(flexItems, FlexItem{Flex: cons.Flex, Min: min, Max: max})
			continue
		}
		size := e.resolveMainSize(c, dir, mainSize)
		mainOf[i] = size
		fixedTotal += size
	}

	remaining := mainSize - fixedTotal - totalGaps
	if remaining < 0 {
		remaining = 0
	}
	alloc := DistributeFlex(remaining, flexItems)
	for k, i := range flexIdx {
		mainOf[i] = alloc[k]
	}

	contentMain := fixedTotal + totalGaps
	for _, i := range flexIdx {
		contentMain += mainOf[i]
	}
	extra := mainSize - contentMain
	if extra < 0 {
		extra = 0
	}

	leading, justifyGaps := JustifyOffsets(parseJustify(inst.Props.Justify), n, extra)
	align := parseAlign(inst.Props.Align)

	out := make([]*Tree, n)
	cursor := leading
	for i, c := range children {
		size := mainOf[i]
		crossDim := crossConstraint(c.Props.Constraints, dir)
		var crossSz int
		var crossOK bool
		if crossDim.IsSet() {
			crossSz, crossOK = crossDim.ResolveAgainst(crossSize)
		}
		if !crossOK {
			if align == AlignStretch {
				crossSz = crossSize
			} else {
				crossSz = e.intrinsicCross(c, dir)
			}
		}
		crossOffset := crossOffsetFor(align, crossSize, crossSz)

		var childRect Rect
		if dir == Row {
			childRect = Rect{X: rect.X + cursor, Y: rect.Y + crossOffset, W: size, H: crossSz}
		} else {
			childRect = Rect{X: rect.X + crossOffset, Y: rect.Y + cursor, W: crossSz, H: size}
		}

		out[i] = e.layoutNode(c, childRect, baseLayer, i)

		cursor += size
		if i < n-1 {
			cursor += gap + justifyGaps[i]
		}
	}

	return out
}

func crossOffsetFor(align AlignCross, crossSize, itemCross int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemCross
	case AlignCenter:
		return (crossSize - itemCross) / 2
	default:
		return 0
	}
}

func (e *Engine) resolveMainSize(c *vtree.Instance, dir Direction, mainSize int) int {
	cons := c.Props.Constraints
	dim := cons.MainDim(dir == Row)
	if v, ok := dim.ResolveAgainst(mainSize); ok {
		return clampDim(v, cons.MainMin(dir == Row), cons.MainMax(dir == Row), mainSize)
	}
	var intrinsic int
	if dir == Row {
		intrinsic = e.intrinsicWidth(c)
	} else {
		intrinsic = e.intrinsicHeight(c)
	}
	return clampDim(intrinsic, cons.MainMin(dir == Row), cons.MainMax(dir == Row), mainSize)
}

func (e *Engine) intrinsicCross(c *vtree.Instance, dir Direction) int {
	if dir == Row {
		return e.intrinsicHeight(c)
	}
	return e.intrinsicWidth(c)
}

func crossConstraint(cons vnode.Constraints, dir Direction) vnode.Dim {
	if dir == Row {
		return cons.Height
	}
	return cons.Width
}
