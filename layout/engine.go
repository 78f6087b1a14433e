package layout

import (
	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/vtree"
)

// Engine measures and positions a committed instance tree.
type Engine struct {
	theme Theme
}

// NewEngine builds an Engine holding theme. Gaps are resolved in cells;
// the theme's SpacingUnit is not applied to them.
func NewEngine(theme Theme) *Engine {
	return &Engine{theme: theme}
}

// Layout lays out root within rootRect and returns the parallel
// LayoutTree. root may be nil, producing a nil Tree.
func (e *Engine) Layout(root *vtree.Instance, rootRect Rect) *Tree {
	if root == nil {
		return nil
	}
	return e.layoutNode(root, rootRect, 0, 0)
}

func (e *Engine) layoutNode(inst *vtree.Instance, rect Rect, baseLayer, siblingIndex int) *Tree {
	t := &Tree{InstanceID: inst.ID, Rect: rect, ZIndex: clampZIndex(baseLayer, siblingIndex)}

	if dir, isFlex := containerDirection(inst.Kind); isFlex {
		t.Children = e.layoutFlexChildren(inst, rect, dir, baseLayer)
		return t
	}

	// Non-flex containers (box, modal, layer, and widget kinds not yet
	// given dedicated layout algorithms) stack every child across the
	// full available rect, each inset by its own constraints.
	for i, c := range inst.Children {
		childRect := e.resolveBoxChildRect(c, rect)
		t.Children = append(t.Children, e.layoutNode(c, childRect, baseLayer, i))
	}
	return t
}

func clampZIndex(baseLayer, siblingIndex int) int {
	z := baseLayer*1_000_000 + siblingIndex
	const safeMax = 1<<53 - 1 // safe-integer ceiling shared across language targets
	if z > safeMax {
		return safeMax
	}
	return z
}

func (e *Engine) resolveBoxChildRect(c *vtree.Instance, parent Rect) Rect {
	cons := c.Props.Constraints
	w := parent.W
	h := parent.H
	if v, ok := cons.Width.ResolveAgainst(parent.W); ok {
		w = v
	} else if cons.Width.Kind == vnode.DimAuto {
		w = e.intrinsicWidth(c)
	}
	if v, ok := cons.Height.ResolveAgainst(parent.H); ok {
		h = v
	} else if cons.Height.Kind == vnode.DimAuto {
		h = e.intrinsicHeight(c)
	}
	w = clampDim(w, cons.MinWidth, cons.MaxWidth, parent.W)
	h = clampDim(h, cons.MinHeight, cons.MaxHeight, parent.H)
	if cons.AspectRatio > 0 {
		if cons.Width.IsSet() && !cons.Height.IsSet() {
			h = int(float64(w) / cons.AspectRatio)
		} else if cons.Height.IsSet() && !cons.Width.IsSet() {
			w = int(float64(h) * cons.AspectRatio)
		}
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: parent.X, Y: parent.Y, W: w, H: h}
}

func clampDim(v int, min, max vnode.Dim, parent int) int {
	if mn, ok := min.ResolveAgainst(parent); ok && v < mn {
		v = mn
	}
	if mx, ok := max.ResolveAgainst(parent); ok && v > mx {
		v = mx
	}
	return v
}

// intrinsicWidth computes a leaf's natural content width. Containers
// fall back to summing (row) or maxing (column) their own children,
// recursively, matching how an "auto" axis propagates through nesting.
func (e *Engine) intrinsicWidth(inst *vtree.Instance) int {
	switch inst.Kind {
	case vnode.KindText, vnode.KindButton, vnode.KindDivider:
		return StringWidth(inst.Props.Text)
	case vnode.KindSpacer:
		return 0
	}
	if dir, isFlex := containerDirection(inst.Kind); isFlex {
		if dir == Row {
			total := 0
			for _, c := range inst.Children {
				total += e.intrinsicWidth(c)
			}
			return total + inst.Props.Gap*maxInt(0, len(inst.Children)-1)
		}
		max := 0
		for _, c := range inst.Children {
			if w := e.intrinsicWidth(c); w > max {
				max = w
			}
		}
		return max
	}
	max := 0
	for _, c := range inst.Children {
		if w := e.intrinsicWidth(c); w > max {
			max = w
		}
	}
	return max
}

func (e *Engine) intrinsicHeight(inst *vtree.Instance) int {
	switch inst.Kind {
	case vnode.KindText, vnode.KindButton, vnode.KindDivider, vnode.KindSpacer:
		return 1
	}
	if dir, isFlex := containerDirection(inst.Kind); isFlex {
		if dir == Column {
			total := 0
			for _, c := range inst.Children {
				total += e.intrinsicHeight(c)
			}
			return total + inst.Props.Gap*maxInt(0, len(inst.Children)-1)
		}
		max := 0
		for _, c := range inst.Children {
			if h := e.intrinsicHeight(c); h > max {
				max = h
			}
		}
		return max
	}
	max := 0
	for _, c := range inst.Children {
		if h := e.intrinsicHeight(c); h > max {
			max = h
		}
	}
	return max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
