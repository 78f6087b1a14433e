package app

import (
	"github.com/zireael-ui/zireael/layout"
	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/vtree"
	"github.com/zireael-ui/zireael/zrdl"
)

// render walks the paired instance/layout trees and emits the ZRDL
// commands for every leaf with visible content. Containers contribute
// no command of their own; their children are already positioned in
// absolute coordinates by the layout engine.
func render(b *zrdl.Builder, inst *vtree.Instance, lt *layout.Tree) error {
	if inst == nil || lt == nil {
		return nil
	}

	switch inst.Kind {
	case vnode.KindText, vnode.KindButton, vnode.KindDivider:
		if inst.Props.Text != "" {
			color := zrdl.Rgb{}
			if inst.Props.Style.Fg != nil {
				color = zrdl.Rgb{R: inst.Props.Style.Fg.R, G: inst.Props.Style.Fg.G, B: inst.Props.Style.Fg.B}
			}
			if err := b.DrawText(int32(lt.Rect.X), int32(lt.Rect.Y), []byte(inst.Props.Text), color); err != nil {
				return err
			}
		}
	}

	for i, c := range inst.Children {
		if i >= len(lt.Children) {
			break
		}
		if err := render(b, c, lt.Children[i]); err != nil {
			return err
		}
	}
	return nil
}
