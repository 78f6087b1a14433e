// Package debugsnap CBOR-encodes a read-only projection of a committed
// instance tree and its paired layout tree, for golden-file tests and
// crash dumps. It is never on the hot path of a frame and never
// participates in ZREV/ZRDL.
package debugsnap

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/zireael-ui/zireael/layout"
	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/vtree"
)

// node is the projected, CBOR-tagged shape of one paired
// instance/layout node. Unexported instance-local bookkeeping
// (prevID, the allocator, the reconciler's store) never appears here.
type node struct {
	InstanceID uint64         `cbor:"id"`
	Kind       string         `cbor:"kind"`
	Props      map[string]any `cbor:"props,omitempty"`
	Rect       rect           `cbor:"rect"`
	ZIndex     int            `cbor:"zIndex,omitempty"`
	Children   []node         `cbor:"children,omitempty"`
}

type rect struct {
	X int `cbor:"x"`
	Y int `cbor:"y"`
	W int `cbor:"w"`
	H int `cbor:"h"`
}

// Snapshot encodes tree paired against its layout into CBOR bytes. The
// two trees must come from the same frame: Layout is walked by child
// index, the same pairing render() uses when building a drawlist.
func Snapshot(tree *vtree.Instance, layoutTree *layout.Tree) ([]byte, error) {
	n, err := project(tree, layoutTree)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(n)
}

func project(inst *vtree.Instance, lt *layout.Tree) (node, error) {
	if inst == nil || lt == nil {
		return node{}, fmt.Errorf("debugsnap: nil instance or layout node")
	}

	n := node{
		InstanceID: uint64(inst.ID),
		Kind:       string(inst.Kind),
		Props:      projectProps(inst.Props),
		Rect:       rect{X: lt.Rect.X, Y: lt.Rect.Y, W: lt.Rect.W, H: lt.Rect.H},
		ZIndex:     lt.ZIndex,
	}

	count := len(inst.Children)
	if len(lt.Children) < count {
		count = len(lt.Children)
	}
	if count == 0 {
		return n, nil
	}
	n.Children = make([]node, count)
	for i := 0; i < count; i++ {
		child, err := project(inst.Children[i], lt.Children[i])
		if err != nil {
			return node{}, err
		}
		n.Children[i] = child
	}
	return n, nil
}

// projectProps keeps only the fields a golden file or crash dump needs
// to be useful, deliberately dropping Extra's arbitrary pass-through
// values since those are renderer-specific and not CORE state.
func projectProps(p vnode.Props) map[string]any {
	m := map[string]any{}
	if p.ID != "" {
		m["id"] = p.ID
	}
	if p.Key != "" {
		m["key"] = p.Key
	}
	if p.Text != "" {
		m["text"] = p.Text
	}
	if p.Focusable {
		m["focusable"] = true
	}
	if p.Pressable {
		m["pressable"] = true
	}
	m["enabled"] = p.Enabled
	return m
}
