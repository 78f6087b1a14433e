// Package layout implements the layout engine (C4): measuring and
// positioning a committed instance tree under size constraints,
// including flex distribution, percentage resolution, and
// Unicode-width-aware intrinsic content measurement.
package layout

import (
	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/vtree"
)

// Rect is an absolute, non-negative integer rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Tree mirrors the committed instance tree, one Tree node per
// Instance, each holding its resolved rectangle. Produced fresh every
// frame; never mutated after it is returned from Layout.
type Tree struct {
	InstanceID vtree.InstanceID
	Rect       Rect
	Children   []*Tree
	ZIndex     int
}

// Direction is the main axis of a flex container.
type Direction int

const (
	Row Direction = iota
	Column
)

// Justify controls leftover-space distribution along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifyBetween
	JustifyEvenly
	JustifyAround
)

// AlignCross controls placement along the cross axis.
type AlignCross int

const (
	AlignStart AlignCross = iota
	AlignEnd
	AlignCenter
	AlignStretch
)

// FlexItem is one child's flex-relevant sizing input for DistributeFlex.
type FlexItem struct {
	Flex int
	Min  int
	Max  int // use MaxUnbounded for "no cap"
}

// MaxUnbounded stands in for an unconstrained maximum.
const MaxUnbounded = int(^uint(0) >> 1)

// Theme carries a spacing scale; nothing else about visual styling is
// in scope here. The Engine stores it but does not apply it: Props.Gap
// is laid out as a plain cell count.
type Theme struct {
	SpacingUnit int // cells per spacing step
}

// DefaultTheme uses a 1-cell spacing unit.
func DefaultTheme() Theme { return Theme{SpacingUnit: 1} }

func containerDirection(k vnode.Kind) (Direction, bool) {
	switch k {
	case vnode.KindRow:
		return Row, true
	case vnode.KindColumn:
		return Column, true
	}
	return Row, false
}
