// Package zireael is the root-facing surface of the runtime: a thin
// facade over app, config, and backend so callers write
// zireael.NewApp(...) against one import instead of reaching into the
// subpackages that actually implement the state machine, config
// validation, and backend contract.
package zireael

import (
	"github.com/zireael-ui/zireael/app"
	"github.com/zireael-ui/zireael/backend"
	"github.com/zireael-ui/zireael/config"
)

// App is the running handle returned by NewApp.
type App[S any] = app.App[S]

// ViewFunc produces a fresh declarative tree from the current state.
type ViewFunc[S any] = app.ViewFunc[S]

// DrawFunc imperatively paints the current state into a drawlist builder.
type DrawFunc[S any] = app.DrawFunc[S]

// Updater is a queued state transition.
type Updater[S any] = app.Updater[S]

// Event is the single type delivered to every OnEvent subscriber.
type Event = app.Event

// EventHandler observes engine events, router actions, and the fatal event.
type EventHandler = app.EventHandler

// EventKind discriminates the events an App may emit.
type EventKind = app.EventKind

// FatalInfo describes an unrecoverable runtime failure.
type FatalInfo = app.FatalInfo

// KeyMap names an application's own bindings for introspection.
type KeyMap = app.KeyMap

// ConfigOption configures an App at construction time.
type ConfigOption = config.Option

// Backend is the host integration boundary an App drives.
type Backend = backend.Backend

const (
	EventOverrun = app.EventOverrun
	EventCaps    = app.EventCaps
	EventInput   = app.EventInput
	EventAction  = app.EventAction
	EventFatal   = app.EventFatal
)

// RuntimeState re-exports the App lifecycle states.
type RuntimeState = app.RuntimeState

const (
	StateCreated  = app.StateCreated
	StateRunning  = app.StateRunning
	StateStopped  = app.StateStopped
	StateFaulted  = app.StateFaulted
	StateDisposed = app.StateDisposed
)

// NewApp constructs an App bound to b and seeded with initialState. The
// returned App still requires View or Draw before Start will succeed.
func NewApp[S any](b backend.Backend, initialState S, opts ...ConfigOption) (*App[S], error) {
	return app.New[S](b, initialState, opts...)
}

// WithFPSCap re-exports config.WithFPSCap for callers that only import
// the root package.
var (
	WithFPSCap              = config.WithFPSCap
	WithMaxDrawlistBytes    = config.WithMaxDrawlistBytes
	WithMaxFramesInFlight   = config.WithMaxFramesInFlight
	WithMaxEventBytes       = config.WithMaxEventBytes
	WithMaxEvents           = config.WithMaxEvents
	WithMaxPasteBytes       = config.WithMaxPasteBytes
	WithMaxUserPayloadBytes = config.WithMaxUserPayloadBytes
)
