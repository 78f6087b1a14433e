package app

import (
	"github.com/zireael-ui/zireael/backend"
	"github.com/zireael-ui/zireael/router"
	"github.com/zireael-ui/zireael/zrerr"
	"github.com/zireael-ui/zireael/zrev"
)

// EventKind discriminates the synthetic and passthrough events an app
// subscriber may observe.
type EventKind string

const (
	EventOverrun EventKind = "overrun"
	EventCaps    EventKind = "caps"
	EventInput   EventKind = "input"
	EventAction  EventKind = "action"
	EventFatal   EventKind = "fatal"
)

// FatalInfo describes an unrecoverable runtime failure.
type FatalInfo struct {
	Code   zrerr.Code
	Detail string
}

// Event is the single type delivered to every OnEvent subscriber.
// Exactly the field(s) matching Kind are populated.
type Event struct {
	Kind   EventKind
	Raw    *zrev.Event
	Caps   *backend.TerminalCaps
	Action *router.Action
	Fatal  *FatalInfo
}

// EventHandler observes engine events, router actions, and the
// terminal fatal event, in subscription order.
type EventHandler func(Event)

// KeyMap lets an application name its own bindings; the router itself
// works directly off zrev key codes and does not consult KeyMap, so
// this is purely an app-facing convenience surfaced back through
// Keys() for documentation/introspection purposes.
type KeyMap map[string]string

