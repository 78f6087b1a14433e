// Package zrev parses the ZREV v1 inbound event-batch wire format into
// typed event records (C2).
package zrev

import (
	"github.com/zireael-ui/zireael/zrerr"
	"github.com/zireael-ui/zireael/zrwire"
)

const (
	magic          uint32 = 0x5645525A // "ZREV" little-endian
	version        uint32 = 1
	headerSize            = 24
	flagTruncation uint32 = 1 << 0
)

// RecordKind discriminates the seven event record payloads.
type RecordKind uint32

const (
	KindKey    RecordKind = 1
	KindText   RecordKind = 2
	KindPaste  RecordKind = 3
	KindMouse  RecordKind = 4
	KindResize RecordKind = 5
	KindTick   RecordKind = 6
	KindUser   RecordKind = 7
)

// KeyAction is the action field of a key record.
type KeyAction uint32

const (
	KeyDown   KeyAction = 0
	KeyUp     KeyAction = 1
	KeyRepeat KeyAction = 2
)

// Modifier bits shared by key and mouse records.
const (
	ModShift uint32 = 1 << 0
	ModCtrl  uint32 = 1 << 1
	ModAlt   uint32 = 1 << 2
	ModMeta  uint32 = 1 << 3
)

// Event is a parsed record carrying exactly one populated payload,
// discriminated by Kind.
type Event struct {
	Kind   RecordKind
	TimeMs uint32

	// key
	Key    uint32
	Mods   uint32
	Action KeyAction

	// text
	Codepoint uint32

	// paste / user: a view into the parser's input buffer, valid only
	// until the caller releases the owning batch.
	Bytes []byte
	Tag   uint32 // user only

	// mouse
	X, Y      uint32
	MouseKind uint32
	Buttons   uint32
	WheelX    int32
	WheelY    int32

	// resize
	Cols, Rows uint32

	// tick
	DtMs uint32
}

// Batch is the fully parsed ZREV v1 payload.
type Batch struct {
	Flags  uint32
	Events []Event
}

// Truncated reports whether the engine-side truncation bit is set.
func (b Batch) Truncated() bool { return b.Flags&flagTruncation != 0 }

// Limits bounds how much a single batch may contain; these mirror
// Config's maxEvents/maxPasteBytes/maxUserPayloadBytes.
type Limits struct {
	MaxEvents           int
	MaxPasteBytes       int
	MaxUserPayloadBytes int
}

// DefaultLimits matches Config's documented defaults.
func DefaultLimits() Limits {
	return Limits{MaxEvents: 4096, MaxPasteBytes: 256 * 1024, MaxUserPayloadBytes: 256 * 1024}
}

// Parse decodes one ZREV v1 batch from buf. buf is borrowed: paste and
// user event payloads alias it directly.
func Parse(buf []byte, limits Limits) (Batch, error) {
	r := zrwire.NewReader(buf)

	if len(buf) < headerSize {
		return Batch{}, zrerr.At(zrerr.CodeTruncated, 0, "buffer shorter than 24-byte header")
	}

	gotMagic, err := r.ReadU32()
	if err != nil {
		return Batch{}, err
	}
	if gotMagic != magic {
		return Batch{}, zrerr.At(zrerr.CodeBadMagic, 0, "expected ZREV magic")
	}

	gotVersion, err := r.ReadU32()
	if err != nil {
		return Batch{}, err
	}
	if gotVersion != version {
		return Batch{}, zrerr.At(zrerr.CodeUnsupportedVersion, 4, "unsupported ZREV version")
	}

	totalSize, err := r.ReadU32()
	if err != nil {
		return Batch{}, err
	}
	if int(totalSize) != len(buf) {
		return Batch{}, zrerr.At(zrerr.CodeSizeMismatch, 24, "totalSize does not match buffer length")
	}

	eventCount, err := r.ReadU32()
	if err != nil {
		return Batch{}, err
	}
	if limits.MaxEvents > 0 && int(eventCount) > limits.MaxEvents {
		return Batch{}, zrerr.At(zrerr.CodeLimit, 12, "eventCount exceeds maxEvents")
	}

	flags, err := r.ReadU32()
	if err != nil {
		return Batch{}, err
	}

	if _, err := r.ReadU32(); err != nil { // reserved
		return Batch{}, err
	}

	events := make([]Event, 0, eventCount)
	for i := uint32(0); i < eventCount; i++ {
		ev, err := parseRecord(r, limits)
		if err != nil {
			return Batch{}, err
		}
		events = append(events, ev)
	}

	return Batch{Flags: flags, Events: events}, nil
}

func parseRecord(r *zrwire.Reader, limits Limits) (Event, error) {
	recOffset := r.Pos()

	kindRaw, err := r.ReadU32()
	if err != nil {
		return Event{}, err
	}
	recordSize, err := r.ReadU32()
	if err != nil {
		return Event{}, err
	}
	if recordSize%4 != 0 {
		return Event{}, zrerr.At(zrerr.CodeMisaligned, int64(recOffset), "recordSize not a multiple of 4")
	}
	timeMs, err := r.ReadU32()
	if err != nil {
		return Event{}, err
	}
	if _, err := r.ReadU32(); err != nil { // reserved
		return Event{}, err
	}

	kind := RecordKind(kindRaw)
	payloadBytes := int(recordSize) - 16 // header already consumed
	if payloadBytes < 0 || r.Remaining() < payloadBytes {
		return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "record payload shorter than declared size")
	}

	ev := Event{Kind: kind, TimeMs: timeMs}

	switch kind {
	case KindKey:
		if payloadBytes < 12 {
			return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "key record too short")
		}
		ev.Key, _ = r.ReadU32()
		ev.Mods, _ = r.ReadU32()
		actionRaw, _ := r.ReadU32()
		ev.Action = KeyAction(actionRaw)

	case KindText:
		if payloadBytes < 4 {
			return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "text record too short")
		}
		ev.Codepoint, _ = r.ReadU32()

	case KindPaste:
		n, perr := readLenPrefixedBytes(r, recOffset)
		if perr != nil {
			return Event{}, perr
		}
		if limits.MaxPasteBytes > 0 && len(n) > limits.MaxPasteBytes {
			return Event{}, zrerr.At(zrerr.CodeLimit, int64(recOffset+16), "paste exceeds maxPasteBytes")
		}
		ev.Bytes = n

	case KindMouse:
		if payloadBytes < 28 {
			return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "mouse record too short")
		}
		ev.X, _ = r.ReadU32()
		ev.Y, _ = r.ReadU32()
		ev.MouseKind, _ = r.ReadU32()
		if ev.MouseKind < 1 || ev.MouseKind > 5 {
			return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "mouseKind out of range 1..=5")
		}
		ev.Mods, _ = r.ReadU32()
		ev.Buttons, _ = r.ReadU32()
		wx, _ := r.ReadI32()
		wy, _ := r.ReadI32()
		ev.WheelX, ev.WheelY = wx, wy

	case KindResize:
		if payloadBytes < 8 {
			return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "resize record too short")
		}
		ev.Cols, _ = r.ReadU32()
		ev.Rows, _ = r.ReadU32()

	case KindTick:
		if payloadBytes < 4 {
			return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "tick record too short")
		}
		ev.DtMs, _ = r.ReadU32()

	case KindUser:
		tag, err := r.ReadU32()
		if err != nil {
			return Event{}, err
		}
		ev.Tag = tag
		n, perr := readLenPrefixedBytes(r, recOffset)
		if perr != nil {
			return Event{}, perr
		}
		if limits.MaxUserPayloadBytes > 0 && len(n) > limits.MaxUserPayloadBytes {
			return Event{}, zrerr.At(zrerr.CodeLimit, int64(recOffset+16), "user payload exceeds maxUserPayloadBytes")
		}
		ev.Bytes = n

	default:
		return Event{}, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "unknown recordKind")
	}

	// skip the remainder of the declared record (trailing pad) so the
	// next record starts at its boundary; padding bytes need not be zero.
	consumed := r.Pos() - recOffset
	if rest := int(recordSize) - consumed; rest > 0 {
		if err := r.Skip(rest); err != nil {
			return Event{}, err
		}
	}

	return ev, nil
}

func readLenPrefixedBytes(r *zrwire.Reader, recOffset int) ([]byte, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, zrerr.At(zrerr.CodeInvalidRecord, int64(recOffset), "declared byte length exceeds payload")
	}
	return b, nil
}
