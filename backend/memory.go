package backend

import (
	"context"
	"sync"

	"github.com/zireael-ui/zireael/zrwire"
)

// Memory is an in-process Backend fake, grounded on the shape of a
// headless/framebuffer test target: it never touches a real terminal,
// captures every requested frame for assertions, and lets tests push
// raw ZREV batches (well-formed or deliberately malformed) directly
// into the inbound stream.
type Memory struct {
	caps TerminalCaps

	mu       sync.Mutex
	inbound  chan EventBatch
	frames   [][]byte
	stopN    int
	disposeN int
	started  bool
}

// NewMemory returns a Memory backend advertising caps.
func NewMemory(caps TerminalCaps) *Memory {
	return &Memory{caps: caps, inbound: make(chan EventBatch, 64)}
}

func (m *Memory) Start(ctx context.Context) error {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
	return nil
}

func (m *Memory) Stop(ctx context.Context) error {
	m.mu.Lock()
	m.stopN++
	m.mu.Unlock()
	return nil
}

func (m *Memory) Dispose() {
	m.mu.Lock()
	m.disposeN++
	m.mu.Unlock()
}

func (m *Memory) RequestFrame(ctx context.Context, drawlist []byte) error {
	m.mu.Lock()
	cp := append([]byte(nil), drawlist...)
	m.frames = append(m.frames, cp)
	m.mu.Unlock()
	return nil
}

func (m *Memory) PollEvents(ctx context.Context) (EventBatch, error) {
	select {
	case b := <-m.inbound:
		return b, nil
	case <-ctx.Done():
		return EventBatch{}, ctx.Err()
	}
}

func (m *Memory) PostUserEvent(tag uint32, payload []byte) {
	m.PushBatch(encodeUserBatch(tag, payload))
}

func (m *Memory) GetCaps() TerminalCaps { return m.caps }

// PushBatch enqueues raw bytes as the next batch PollEvents yields.
// Tests use this to inject both well-formed and malformed buffers.
func (m *Memory) PushBatch(raw []byte) {
	m.inbound <- EventBatch{Bytes: raw, Release: func() {}}
}

// Frames returns every drawlist submitted via RequestFrame, in order.
func (m *Memory) Frames() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]byte(nil), m.frames...)
}

// StopCount reports how many times Stop was called.
func (m *Memory) StopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopN
}

// DisposeCount reports how many times Dispose was called.
func (m *Memory) DisposeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disposeN
}

// encodeUserBatch builds a single-event ZREV v1 batch wrapping one
// user record, matching the wire layout zrev.Parse expects.
func encodeUserBatch(tag uint32, payload []byte) []byte {
	pad := (4 - len(payload)%4) % 4
	recordSize := 16 + 4 + 4 + len(payload) + pad // header + tag + len + bytes + pad
	total := 24 + recordSize

	w := zrwire.NewWriter(total)
	w.WriteU32(0x5645525A) // magic
	w.WriteU32(1)          // version
	w.WriteU32(uint32(total))
	w.WriteU32(1) // eventCount
	w.WriteU32(0) // flags
	w.WriteU32(0) // reserved

	w.WriteU32(7) // recordKind = user
	w.WriteU32(uint32(recordSize))
	w.WriteU32(0) // timeMs
	w.WriteU32(0) // reserved
	w.WriteU32(tag)
	w.WriteU32(uint32(len(payload)))
	w.WriteBytes(payload)
	w.PadTo4()

	return w.Finish()
}
