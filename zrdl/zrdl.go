// Package zrdl implements the ZRDL v1 outbound drawlist builder (C3):
// an append-only command stream plus a blob table, finalized into one
// contiguous byte sequence per frame.
package zrdl

import (
	"github.com/zireael-ui/zireael/zrerr"
	"github.com/zireael-ui/zireael/zrwire"
)

const (
	magic   uint32 = 0x4C44525A // "ZRDL" little-endian
	// Version is the ZRDL wire version, independent of the ZREV
	// version constant by design (see the expanded spec's open
	// questions).
	Version uint32 = 1
)

// Opcode tags one command in the stream.
type Opcode uint8

const (
	OpClear      Opcode = 1
	OpClearColor Opcode = 2
	OpFillRect   Opcode = 3
	OpDrawText   Opcode = 4
	OpDrawTextRun Opcode = 5
	OpPushClip   Opcode = 6
	OpPopClip    Opcode = 7
)

// Rect is an absolute integer rectangle in cell coordinates.
type Rect struct{ X, Y, W, H int32 }

// Rgb mirrors vnode.Rgb without importing it, keeping the wire layer
// free of any dependency on the widget data model.
type Rgb struct{ R, G, B uint8 }

// Builder accumulates ZRDL v1 commands and a blob table for one frame.
// Reset makes it reusable for another frame without reallocating.
type Builder struct {
	maxBytes     int
	cmds         *zrwire.Writer
	blobs        [][]byte
	built        bool
	commandCount int
}

// NewBuilder creates a Builder capped at maxBytes for the command
// stream (the blob table is accounted separately at Build time).
func NewBuilder(maxBytes int) *Builder {
	return &Builder{maxBytes: maxBytes, cmds: zrwire.NewWriter(maxBytes)}
}

func (b *Builder) checkNotBuilt() error {
	if b.built {
		return zrerr.New(zrerr.CodeDrawlistInternal, "builder already built this frame; call Reset first")
	}
	return nil
}

func (b *Builder) opHeader(op Opcode) error {
	if err := b.cmds.WriteU8(uint8(op)); err != nil {
		return tooLarge(err)
	}
	for i := 0; i < 3; i++ {
		if err := b.cmds.WriteU8(0); err != nil {
			return tooLarge(err)
		}
	}
	b.commandCount++
	return nil
}

func tooLarge(err error) error {
	if zerr, ok := err.(*zrerr.Error); ok && zerr.Code == zrerr.CodeLimit {
		return zrerr.At(zrerr.CodeDrawlistTooLarge, zerr.Offset, zerr.Detail)
	}
	return err
}

func (b *Builder) writeRect(r Rect) error {
	for _, v := range []int32{r.X, r.Y, r.W, r.H} {
		if err := b.cmds.WriteI32(v); err != nil {
			return tooLarge(err)
		}
	}
	return nil
}

// Clear emits a full-buffer clear to the terminal default background.
func (b *Builder) Clear() error {
	if err := b.checkNotBuilt(); err != nil {
		return err
	}
	return b.opHeader(OpClear)
}

// ClearColor emits a full-buffer clear to a specific color.
func (b *Builder) ClearColor(c Rgb) error {
	if err := b.checkNotBuilt(); err != nil {
		return err
	}
	if err := b.opHeader(OpClearColor); err != nil {
		return err
	}
	return b.writeColor(c)
}

func (b *Builder) writeColor(c Rgb) error {
	if err := b.cmds.WriteU8(c.R); err != nil {
		return tooLarge(err)
	}
	if err := b.cmds.WriteU8(c.G); err != nil {
		return tooLarge(err)
	}
	if err := b.cmds.WriteU8(c.B); err != nil {
		return tooLarge(err)
	}
	return tooLarge(b.cmds.WriteU8(0)) // pad byte keeping the command 4-byte aligned
}

// FillRect paints rect with color.
func (b *Builder) FillRect(rect Rect, color Rgb) error {
	if err := b.checkNotBuilt(); err != nil {
		return err
	}
	if err := b.opHeader(OpFillRect); err != nil {
		return err
	}
	if err := b.writeRect(rect); err != nil {
		return err
	}
	return b.writeColor(color)
}

// AddBlob appends raw bytes (e.g. a UTF-8 text run) to the blob table
// and returns its index for later reference by DrawTextRun.
func (b *Builder) AddBlob(data []byte) (uint32, error) {
	if err := b.checkNotBuilt(); err != nil {
		return 0, err
	}
	idx := uint32(len(b.blobs))
	cp := make([]byte, len(data))
	copy(cp, data)
	b.blobs = append(b.blobs, cp)
	return idx, nil
}

// AddTextRunBlob is an alias of AddBlob kept distinct at the API level
// to mirror the two named blob-producing commands in the wire format's
// design-level command list; both populate the same table.
func (b *Builder) AddTextRunBlob(data []byte) (uint32, error) {
	return b.AddBlob(data)
}

// DrawText emits an inline (non-blob) text command at (x, y).
func (b *Builder) DrawText(x, y int32, text []byte, style Rgb) error {
	if err := b.checkNotBuilt(); err != nil {
		return err
	}
	if err := b.opHeader(OpDrawText); err != nil {
		return err
	}
	if err := b.cmds.WriteI32(x); err != nil {
		return tooLarge(err)
	}
	if err := b.cmds.WriteI32(y); err != nil {
		return tooLarge(err)
	}
	if err := b.writeColor(style); err != nil {
		return err
	}
	if err := b.cmds.WriteU32(uint32(len(text))); err != nil {
		return tooLarge(err)
	}
	if err := b.cmds.WriteBytes(text); err != nil {
		return tooLarge(err)
	}
	return tooLarge(b.cmds.PadTo4())
}

// DrawTextRun emits a command referencing a previously added blob.
func (b *Builder) DrawTextRun(x, y int32, blobIndex uint32, style Rgb) error {
	if err := b.checkNotBuilt(); err != nil {
		return err
	}
	if blobIndex >= uint32(len(b.blobs)) {
		return zrerr.New(zrerr.CodeDrawlistInternal, "blob index out of range")
	}
	if err := b.opHeader(OpDrawTextRun); err != nil {
		return err
	}
	if err := b.cmds.WriteI32(x); err != nil {
		return tooLarge(err)
	}
	if err := b.cmds.WriteI32(y); err != nil {
		return tooLarge(err)
	}
	if err := b.writeColor(style); err != nil {
		return err
	}
	return tooLarge(b.cmds.WriteU32(blobIndex))
}

// PushClip narrows subsequent drawing to rect until the matching PopClip.
func (b *Builder) PushClip(rect Rect) error {
	if err := b.checkNotBuilt(); err != nil {
		return err
	}
	if err := b.opHeader(OpPushClip); err != nil {
		return err
	}
	return b.writeRect(rect)
}

// PopClip restores the previous clip rectangle.
func (b *Builder) PopClip() error {
	if err := b.checkNotBuilt(); err != nil {
		return err
	}
	return b.opHeader(OpPopClip)
}

// Build finalizes the command stream and blob table into one
// contiguous byte sequence, including the ZRDL header. Calling Build
// twice without an intervening Reset fails with ZRDL_INTERNAL.
func (b *Builder) Build() ([]byte, error) {
	if err := b.checkNotBuilt(); err != nil {
		return nil, err
	}
	b.built = true

	cmdBytes := b.cmds.Finish()

	out := zrwire.NewWriter(b.maxBytes)
	if err := out.WriteU32(magic); err != nil {
		return nil, tooLarge(err)
	}
	if err := out.WriteU32(Version); err != nil {
		return nil, tooLarge(err)
	}
	if err := out.WriteU32(uint32(b.commandCount)); err != nil {
		return nil, tooLarge(err)
	}
	if err := out.WriteU32(uint32(len(b.blobs))); err != nil {
		return nil, tooLarge(err)
	}
	if err := out.WriteBytes(cmdBytes); err != nil {
		return nil, tooLarge(err)
	}
	for _, blob := range b.blobs {
		if err := out.WriteU32(uint32(len(blob))); err != nil {
			return nil, tooLarge(err)
		}
		if err := out.WriteBytes(blob); err != nil {
			return nil, tooLarge(err)
		}
		if err := out.PadTo4(); err != nil {
			return nil, tooLarge(err)
		}
	}
	return out.Finish(), nil
}

// Reset clears all accumulated commands and blobs, allowing the
// Builder to be reused for the next frame without reallocating.
func (b *Builder) Reset() {
	b.cmds.Reset()
	b.blobs = b.blobs[:0]
	b.built = false
	b.commandCount = 0
}
