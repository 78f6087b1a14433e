// Package backend defines the abstraction boundary between the CORE
// runtime and a concrete terminal driver (§6), plus an in-memory fake
// used by app-runtime tests.
package backend

import "context"

// ColorMode enumerates the terminal color depths a Backend may report.
type ColorMode int

const (
	ColorNone ColorMode = iota
	Color16
	Color256
	ColorTruecolor
)

// TerminalCaps is a read-only capability record the CORE consults but
// never mutates (§4.9).
type TerminalCaps struct {
	ColorMode                 ColorMode
	SupportsMouse             bool
	SupportsBracketedPaste    bool
	SupportsFocusEvents       bool
	SupportsOsc52             bool
	SupportsSyncUpdate        bool
	SupportsScrollRegion      bool
	SupportsCursorShape       bool
	SupportsOutputWaitWritable bool
	SupportsUnderlineStyles   bool
	SupportsColoredUnderlines bool
	SupportsHyperlinks        bool
	SgrAttrsSupported         uint32
}

// EventBatch is one inbound ZREV v1 payload plus bookkeeping about
// loss detected below the CORE. Release must be called exactly once
// per batch once the CORE is done reading Bytes.
type EventBatch struct {
	Bytes          []byte
	DroppedBatches int
	Release        func()
}

// Backend is the CORE's sole I/O boundary. Every method may be called
// from the app runtime's single driving goroutine; Start/Stop/Dispose
// additionally tolerate being called from Dispose's idempotent retry
// path. Implementations must not block the calling goroutine outside
// RequestFrame/PollEvents.
type Backend interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Dispose()
	RequestFrame(ctx context.Context, drawlist []byte) error
	PollEvents(ctx context.Context) (EventBatch, error)
	PostUserEvent(tag uint32, payload []byte)
	GetCaps() TerminalCaps
}
