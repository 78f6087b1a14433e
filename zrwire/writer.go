package zrwire

import (
	"encoding/binary"

	"github.com/zireael-ui/zireael/zrerr"
)

// Writer accumulates bytes into a capacity-bounded buffer. Capacity is
// fixed at construction; writes past it fail with ZR_LIMIT and the
// buffer is left exactly as it was before the failing call.
type Writer struct {
	buf []byte
	cap int
}

// NewWriter allocates a Writer with room for up to capacity bytes.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity), cap: capacity}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Cap returns the configured capacity.
func (w *Writer) Cap() int { return w.cap }

func (w *Writer) checkRoom(n int) error {
	if len(w.buf)+n > w.cap {
		return zrerr.At(zrerr.CodeLimit, int64(len(w.buf)), "write would exceed capacity")
	}
	return nil
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v byte) error {
	if err := w.checkRoom(1); err != nil {
		return err
	}
	w.buf = append(w.buf, v)
	return nil
}

// WriteU32 appends a little-endian uint32. The cursor must land on a
// 4-byte boundary afterward to preserve the alignment invariant, which
// holds automatically as long as callers only mix 4-byte writes with
// PadTo4-terminated byte runs.
func (w *Writer) WriteU32(v uint32) error {
	if err := w.checkRoom(4); err != nil {
		return err
	}
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
	return nil
}

// WriteI32 appends a little-endian int32.
func (w *Writer) WriteI32(v int32) error {
	return w.WriteU32(uint32(v))
}

// WriteBytes appends raw bytes verbatim.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.checkRoom(len(b)); err != nil {
		return err
	}
	w.buf = append(w.buf, b...)
	return nil
}

// PadTo4 appends explicit zero bytes until Len() is a multiple of 4.
// It never leaves stale buffer contents in the padding region.
func (w *Writer) PadTo4() error {
	pad := (4 - (len(w.buf) % 4)) % 4
	if pad == 0 {
		return nil
	}
	if err := w.checkRoom(pad); err != nil {
		return err
	}
	for i := 0; i < pad; i++ {
		w.buf = append(w.buf, 0)
	}
	return nil
}

// Finish returns the accumulated bytes. The Writer may continue to be
// used afterward; Finish does not reset state.
func (w *Writer) Finish() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}

// Reset empties the buffer for reuse, keeping the allocated capacity.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}
