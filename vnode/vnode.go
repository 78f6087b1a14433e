// Package vnode defines the declarative, immutable widget tree that
// application view functions produce every frame.
package vnode

// Kind discriminates the tagged sum of widget variants a VNode may be.
type Kind string

const (
	KindText                Kind = "text"
	KindRichText             Kind = "richText"
	KindBox                  Kind = "box"
	KindRow                  Kind = "row"
	KindColumn               Kind = "column"
	KindSpacer               Kind = "spacer"
	KindDivider              Kind = "divider"
	KindButton               Kind = "button"
	KindInput                Kind = "input"
	KindCheckbox             Kind = "checkbox"
	KindRadioGroup           Kind = "radioGroup"
	KindSelect               Kind = "select"
	KindVirtualList          Kind = "virtualList"
	KindTable                Kind = "table"
	KindTree                 Kind = "tree"
	KindField                Kind = "field"
	KindModal                Kind = "modal"
	KindDropdown             Kind = "dropdown"
	KindLayer                Kind = "layer"
	KindLayers               Kind = "layers"
	KindFocusZone            Kind = "focusZone"
	KindFocusTrap            Kind = "focusTrap"
	KindSplitPane            Kind = "splitPane"
	KindPanelGroup           Kind = "panelGroup"
	KindResizablePanel       Kind = "resizablePanel"
	KindFilePicker           Kind = "filePicker"
	KindFileTreeExplorer     Kind = "fileTreeExplorer"
	KindCodeEditor           Kind = "codeEditor"
	KindDiffViewer           Kind = "diffViewer"
	KindLogsConsole          Kind = "logsConsole"
	KindCommandPalette       Kind = "commandPalette"
	KindToastContainer       Kind = "toastContainer"
	KindToolApprovalDialog   Kind = "toolApprovalDialog"
)

// interactiveKinds is consulted by the reconciler (vtree) when
// collecting ids eligible for duplicate-id checking. The focus list is
// built separately: buttons, inputs, and nodes with Focusable set.
var interactiveKinds = map[Kind]bool{
	KindButton:             true,
	KindInput:              true,
	KindCheckbox:           true,
	KindRadioGroup:         true,
	KindSelect:             true,
	KindVirtualList:        true,
	KindTable:              true,
	KindTree:               true,
	KindField:              true,
	KindDropdown:           true,
	KindFilePicker:         true,
	KindFileTreeExplorer:   true,
	KindCodeEditor:         true,
	KindDiffViewer:         true,
	KindLogsConsole:        true,
	KindCommandPalette:     true,
	KindToolApprovalDialog: true,
}

// IsInteractive reports whether instances of this kind participate in
// the duplicate-id check.
func (k Kind) IsInteractive() bool { return interactiveKinds[k] }

// Rgb is an immutable 0-255 color triple.
type Rgb struct {
	R, G, B uint8
}

// TextStyle carries optional color and attribute overrides. A zero
// value means "inherit everything".
type TextStyle struct {
	Fg            *Rgb
	Bg            *Rgb
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Inverse       bool
	Strikethrough bool
	Overline      bool
	Blink         bool
}

// Constraints describes the sizing hints a node contributes to layout.
// Width/Height/MinWidth/... use Dim, where an unset Dim means "no
// constraint on this axis".
type Constraints struct {
	Width       Dim
	Height      Dim
	MinWidth    Dim
	MaxWidth    Dim
	MinHeight   Dim
	MaxHeight   Dim
	Flex        int
	AspectRatio float64 // 0 means unset
}

// MainDim, MainMin and MainMax pick the axis-appropriate Dim for a row
// (main axis = width) or column (main axis = height) container,
// letting the layout engine stay direction-agnostic. isRow is true
// for Row containers.
func (c Constraints) MainDim(isRow bool) Dim {
	if isRow {
		return c.Width
	}
	return c.Height
}

func (c Constraints) MainMin(isRow bool) Dim {
	if isRow {
		return c.MinWidth
	}
	return c.MinHeight
}

func (c Constraints) MainMax(isRow bool) Dim {
	if isRow {
		return c.MaxWidth
	}
	return c.MaxHeight
}

// Props is a widget's declared attributes. Kind-specific fields are
// explicit; Extra carries arbitrary pass-through attributes the way
// §9 of the expanded spec describes for widgets that genuinely forward
// style props they don't interpret themselves.
type Props struct {
	ID          string // interactive identity; must be globally unique
	Key         string // sibling disambiguation for reconciliation
	Text        string
	Style       TextStyle
	Constraints Constraints
	Focusable   bool
	Enabled     bool
	Pressable   bool

	// Flex-container-only layout props, consulted by the layout
	// engine when this node's Kind is row or column.
	Justify string // "start" (default) | "end" | "center" | "between" | "evenly" | "around"
	Align   string // "start" | "end" | "center" | "stretch" (default)
	Gap     int

	Extra map[string]any
}

// DefaultProps returns Props with Enabled true, matching the implicit
// default every widget kind in the original widget set assumes.
func DefaultProps() Props {
	return Props{Enabled: true}
}

// VNode is one immutable node in the virtual tree a view function
// returns. Children are borrowed: a VNode never claims ownership over
// a child it did not itself allocate, and the same child value may
// legally appear unchanged across frames.
type VNode struct {
	Kind     Kind
	Props    Props
	Children []VNode
}

// Text builds a leaf text node.
func Text(s string) VNode {
	p := DefaultProps()
	p.Text = s
	return VNode{Kind: KindText, Props: p}
}

// Box builds a container node with no layout direction of its own.
func Box(props Props, children ...VNode) VNode {
	return VNode{Kind: KindBox, Props: props, Children: children}
}

// Row builds a horizontal flex container.
func Row(props Props, children ...VNode) VNode {
	return VNode{Kind: KindRow, Props: props, Children: children}
}

// Column builds a vertical flex container.
func Column(props Props, children ...VNode) VNode {
	return VNode{Kind: KindColumn, Props: props, Children: children}
}

// Button builds an interactive, pressable leaf.
func Button(id, label string) VNode {
	p := DefaultProps()
	p.ID = id
	p.Text = label
	p.Focusable = true
	p.Pressable = true
	return VNode{Kind: KindButton, Props: p}
}
