// Package zrwire implements the bounds-checked, little-endian,
// 4-byte-aligned cursor I/O shared by the ZREV parser and the ZRDL
// builder. Reader operates on a borrowed byte slice and never copies
// it; ReadBytes returns views into it. Writer owns its own
// capacity-bounded buffer, and Finish returns a copy of it.
package zrwire

import (
	"encoding/binary"

	"github.com/zireael-ui/zireael/zrerr"
)

// Reader walks a borrowed byte slice with an internal cursor. On any
// failure the cursor does not advance past the point of failure, so a
// caller that inspects the offset after an error sees the same cursor
// a retry would.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for reading. buf is borrowed, not copied.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) fail(code zrerr.Code, detail string) error {
	return zrerr.At(code, int64(r.pos), detail)
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (byte, error) {
	if r.Remaining() < 1 {
		return 0, r.fail(zrerr.CodeTruncated, "need 1 byte for u8")
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// EnsureAligned4 fails unless the cursor sits on a 4-byte boundary.
func (r *Reader) EnsureAligned4() error {
	if r.pos%4 != 0 {
		return r.fail(zrerr.CodeMisaligned, "cursor not 4-byte aligned")
	}
	return nil
}

// ReadU32 reads a little-endian uint32. The cursor must be 4-byte aligned.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.EnsureAligned4(); err != nil {
		return 0, err
	}
	if r.Remaining() < 4 {
		return 0, r.fail(zrerr.CodeTruncated, "need 4 bytes for u32")
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadI32 reads a little-endian int32. The cursor must be 4-byte aligned.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadBytes returns a view of the next n bytes sharing the backing
// storage of the wrapped slice. Callers must not retain it past the
// lifetime of that storage.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, r.fail(zrerr.CodeInvalidRecord, "negative byte count")
	}
	if r.Remaining() < n {
		return nil, r.fail(zrerr.CodeTruncated, "short read for byte view")
	}
	v := r.buf[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return r.fail(zrerr.CodeInvalidRecord, "negative skip count")
	}
	if r.Remaining() < n {
		return r.fail(zrerr.CodeTruncated, "short skip")
	}
	r.pos += n
	return nil
}

// SkipPad4 advances past zero-padding up to the next 4-byte boundary,
// assuming n unpadded bytes were just consumed.
func (r *Reader) SkipPad4(n int) error {
	pad := (4 - (n % 4)) % 4
	return r.Skip(pad)
}
