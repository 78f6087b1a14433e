// Package app implements the App runtime and state machine (C8): the
// lifecycle, the per-turn frame pipeline, mode locking, frame
// coalescing, and the ordered fatal-error surface.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/zireael-ui/zireael/backend"
	"github.com/zireael-ui/zireael/config"
	"github.com/zireael-ui/zireael/focus"
	"github.com/zireael-ui/zireael/layout"
	"github.com/zireael-ui/zireael/queue"
	"github.com/zireael-ui/zireael/router"
	"github.com/zireael-ui/zireael/scheduler"
	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/vtree"
	"github.com/zireael-ui/zireael/zrdl"
	"github.com/zireael-ui/zireael/zrerr"
	"github.com/zireael-ui/zireael/zrev"
)

// ViewFunc produces a fresh declarative tree from the current state.
type ViewFunc[S any] func(state S) vnode.VNode

// DrawFunc imperatively paints the current state into b.
type DrawFunc[S any] func(state S, b *zrdl.Builder) error

// Updater is a queued state transition: a direct replacement or a
// pure function of the previous state.
type Updater[S any] = queue.Update[S]

// App owns the runtime state machine, the committed tree, and the
// backend connection for one running instance.
type App[S any] struct {
	backend backend.Backend
	cfg     *config.Config

	// mu guards exactly the two genuinely shared collections touched
	// from arbitrary goroutines (subscribers and the update queue),
	// matching the "single-threaded discipline elsewhere" policy.
	mu          sync.Mutex
	subscribers []EventHandler
	updates     *queue.Queue[S]

	state S
	mode  Mode
	// runtimeState is read/written only from the driving goroutine and
	// from Start/Stop/Dispose, which callers are expected to serialize
	// themselves — per the concurrency model, only the subscriber list
	// and update queue are mutex-guarded.
	runtimeState RuntimeState
	viewFn       ViewFunc[S]
	drawFn       DrawFunc[S]

	sched        *scheduler.Scheduler
	reconciler   *vtree.Reconciler
	layoutEngine *layout.Engine
	focusState   *focus.State
	lastTree     *vtree.Tree
	lastLayout   *layout.Tree
	lastDrawlist []byte
	viewport     layout.Rect

	enabled   map[string]bool
	pressable map[string]bool
	pressedID string

	// widgets and instanceByID are rebuilt every commit so the router
	// can dispatch on a focused widget's kind and a hit-test can
	// resolve a layout node back to its owning id.
	widgets      map[string]*vtree.Instance
	instanceByID map[vtree.InstanceID]*vtree.Instance

	// renderReq coalesces render requests from any goroutine into the
	// single driving goroutine: a full buffer means a render is already
	// queued, so a redundant request is simply dropped ("latest-wins,
	// not per-update").
	renderReq chan struct{}

	stopOnce sync.Once
	keyMap   KeyMap

	cancelPump context.CancelFunc
	driverWG   sync.WaitGroup
}

// New constructs an App in the Created state, bound to b and seeded
// with initial. The returned App still requires View or Draw before
// Start will succeed.
func New[S any](b backend.Backend, initial S, opts ...config.Option) (*App[S], error) {
	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}
	return &App[S]{
		backend:      b,
		cfg:          cfg,
		state:        initial,
		runtimeState: StateCreated,
		updates:      queue.New[S](),
		sched:        scheduler.New(),
		reconciler:   vtree.NewReconciler(),
		layoutEngine: layout.NewEngine(layout.DefaultTheme()),
		focusState:   focus.New(),
		enabled:      map[string]bool{},
		pressable:    map[string]bool{},
		widgets:      map[string]*vtree.Instance{},
		instanceByID: map[vtree.InstanceID]*vtree.Instance{},
		viewport:     layout.Rect{W: 80, H: 24},
	}, nil
}

// View sets the declarative render function. It fails with
// ZRUI_MODE_CONFLICT if Draw was already set, and with
// ZRUI_INVALID_STATE if the app is Running.
func (a *App[S]) View(fn ViewFunc[S]) error {
	if err := a.checkModeSettable(); err != nil {
		return err
	}
	if a.mode == ModeDraw {
		return zrerr.New(zrerr.CodeModeConflict, "draw mode already set")
	}
	a.mode = ModeView
	a.viewFn = fn
	return nil
}

// Draw sets the imperative render callback. Symmetric to View.
func (a *App[S]) Draw(fn DrawFunc[S]) error {
	if err := a.checkModeSettable(); err != nil {
		return err
	}
	if a.mode == ModeView {
		return zrerr.New(zrerr.CodeModeConflict, "view mode already set")
	}
	a.mode = ModeDraw
	a.drawFn = fn
	return nil
}

func (a *App[S]) checkModeSettable() error {
	switch a.runtimeState {
	case StateRunning:
		return zrerr.New(zrerr.CodeInvalidState, "cannot change render mode while running")
	case StateFaulted, StateDisposed:
		return zrerr.New(zrerr.CodeInvalidState, fmt.Sprintf("cannot change render mode from state %s", a.runtimeState))
	}
	return nil
}

// Keys records the application's own named bindings for introspection;
// the router works directly off raw key codes regardless of this map.
func (a *App[S]) Keys(bindings KeyMap) { a.keyMap = bindings }

// Update enqueues u for application at the start of the next frame.
// Safe to call from any goroutine. Fails with ZRUI_INVALID_STATE once
// the app has Faulted or been Disposed, since neither state will ever
// drain the queue again.
func (a *App[S]) Update(u Updater[S]) error {
	if a.runtimeState == StateFaulted || a.runtimeState == StateDisposed {
		return zrerr.New(zrerr.CodeInvalidState, fmt.Sprintf("cannot update from state %s", a.runtimeState))
	}
	a.mu.Lock()
	a.updates.Push(u)
	a.mu.Unlock()
	a.requestRender()
	return nil
}

// OnEvent subscribes handler to every event this app emits, in
// subscription order, returning an unsubscribe function. A handler
// unsubscribed mid-dispatch still observes the event currently being
// dispatched.
func (a *App[S]) OnEvent(handler EventHandler) (unsubscribe func()) {
	a.mu.Lock()
	a.subscribers = append(a.subscribers, handler)
	idx := len(a.subscribers) - 1
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if idx < len(a.subscribers) {
			a.subscribers[idx] = nil
		}
	}
}

func (a *App[S]) notify(ev Event) {
	a.mu.Lock()
	handlers := append([]EventHandler(nil), a.subscribers...)
	a.mu.Unlock()
	for _, h := range handlers {
		if h != nil {
			h(ev)
		}
	}
}

// Start transitions Created/Stopped → Running, starts the backend,
// and begins pumping events.
func (a *App[S]) Start(ctx context.Context) error {
	if a.runtimeState != StateCreated && a.runtimeState != StateStopped {
		return zrerr.New(zrerr.CodeInvalidState, fmt.Sprintf("cannot start from state %s", a.runtimeState))
	}
	if a.mode == ModeNone {
		return zrerr.New(zrerr.CodeNoRenderMode, "neither View nor Draw was called before Start")
	}
	if err := a.backend.Start(ctx); err != nil {
		return err
	}
	a.runtimeState = StateRunning

	caps := a.backend.GetCaps()
	a.notify(Event{Kind: EventCaps, Caps: &caps})

	a.renderReq = make(chan struct{}, 1)
	pumpCtx, cancel := context.WithCancel(context.Background())
	a.cancelPump = cancel

	msgs := make(chan pumpMsg)
	a.driverWG.Add(2)
	go a.pollLoop(pumpCtx, msgs)
	go a.driveLoop(pumpCtx, msgs)

	a.requestRender()
	return nil
}

// Stop transitions Running → Stopped and gracefully halts the backend.
func (a *App[S]) Stop(ctx context.Context) error {
	if a.runtimeState != StateRunning {
		return zrerr.New(zrerr.CodeInvalidState, fmt.Sprintf("cannot stop from state %s", a.runtimeState))
	}
	if a.cancelPump != nil {
		a.cancelPump()
		a.driverWG.Wait()
	}
	if err := a.backend.Stop(ctx); err != nil {
		return err
	}
	a.runtimeState = StateStopped
	return nil
}

// Dispose releases all resources. Idempotent from any state.
func (a *App[S]) Dispose() {
	if a.runtimeState == StateDisposed {
		return
	}
	if a.cancelPump != nil {
		a.cancelPump()
		a.driverWG.Wait()
	}
	a.backend.Dispose()
	a.runtimeState = StateDisposed
}

// pumpMsg carries either a successfully polled batch or a terminal
// poll error from pollLoop to driveLoop.
type pumpMsg struct {
	batch backend.EventBatch
	err   error
}

// pollLoop is the only goroutine that calls backend.PollEvents; it
// never touches App state directly, keeping every state mutation
// confined to driveLoop.
func (a *App[S]) pollLoop(ctx context.Context, out chan<- pumpMsg) {
	defer a.driverWG.Done()
	for {
		batch, err := a.backend.PollEvents(ctx)
		if err != nil {
			if ctx.Err() == nil {
				select {
				case out <- pumpMsg{err: err}:
				case <-ctx.Done():
				}
			}
			return
		}
		select {
		case out <- pumpMsg{batch: batch}:
		case <-ctx.Done():
			if batch.Release != nil {
				batch.Release()
			}
			return
		}
	}
}

// driveLoop is the single driving goroutine: it is the only place that
// mutates tree/focus/render state, satisfying the "one logical
// execution context per turn" model while still allowing Update/OnEvent
// to be called from arbitrary goroutines.
func (a *App[S]) driveLoop(ctx context.Context, msgs <-chan pumpMsg) {
	defer a.driverWG.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-msgs:
			if m.err != nil {
				if ctx.Err() == nil {
					a.fail(zrerr.CodeProtocolError, m.err.Error())
				}
				return
			}
			a.handleBatch(m.batch)
			if a.runtimeState == StateFaulted {
				return
			}
		case <-a.renderReq:
			a.scheduleRenderFromDriver()
		}
	}
}

func (a *App[S]) handleBatch(batch backend.EventBatch) {
	defer func() {
		if r := recover(); r != nil {
			a.fail(zrerr.CodeDrawlistBuildError, fmt.Sprintf("panic in event dispatch: %v", r))
		}
		if batch.Release != nil {
			batch.Release()
		}
	}()

	parsed, err := zrev.Parse(batch.Bytes, zrev.Limits{
		MaxEvents:           a.cfg.MaxEvents,
		MaxPasteBytes:       a.cfg.MaxPasteBytes,
		MaxUserPayloadBytes: a.cfg.MaxUserPayloadBytes,
	})
	if err != nil {
		zerr, _ := err.(*zrerr.Error)
		detail := err.Error()
		if zerr != nil {
			detail = zerr.Detail
		}
		a.fail(zrerr.CodeProtocolError, detail)
		return
	}

	if parsed.Truncated() || batch.DroppedBatches > 0 {
		a.notify(Event{Kind: EventOverrun})
	}

	for i := range parsed.Events {
		ev := parsed.Events[i]
		a.notify(Event{Kind: EventKind(eventKindName(ev.Kind)), Raw: &ev})
		a.routeEvent(ev)
	}

	a.scheduleRenderFromDriver()
}

func eventKindName(k zrev.RecordKind) string {
	switch k {
	case zrev.KindKey:
		return "key"
	case zrev.KindText:
		return "text"
	case zrev.KindPaste:
		return "paste"
	case zrev.KindMouse:
		return "mouse"
	case zrev.KindResize:
		return "resize"
	case zrev.KindTick:
		return "tick"
	case zrev.KindUser:
		return "user"
	default:
		return "unknown"
	}
}

func (a *App[S]) routeEvent(ev zrev.Event) {
	switch ev.Kind {
	case zrev.KindResize:
		a.viewport = layout.Rect{W: int(ev.Cols), H: int(ev.Rows)}
		return

	case zrev.KindText, zrev.KindPaste:
		a.routeToFocusedInput(ev)
		return

	case zrev.KindKey:
		if a.routeKeyToFocusedWidget(ev) {
			return
		}
		a.routeKeyGeneric(ev)
		return

	case zrev.KindMouse:
		a.routeMouse(ev)
		return
	}
}

// routeToFocusedInput forwards a text/paste event to the focused
// widget when it is a single-line input; any other focused kind has
// no text/paste handling and the event is dropped.
func (a *App[S]) routeToFocusedInput(ev zrev.Event) {
	focused, ok := a.focusState.Active()
	if !ok || focused == "" {
		return
	}
	inst := a.widgets[focused]
	if inst == nil || inst.Kind != vnode.KindInput {
		return
	}
	stored, _ := a.reconciler.Store().Get(inst.ID)
	state, _ := stored.(router.InputState)
	next, action := router.HandleInputKey(ev, focused, state)
	a.reconciler.Store().Set(inst.ID, next)
	a.emitAction(action)
}

// routeKeyToFocusedWidget dispatches a key event to the focused
// widget's own handler when it owns one (input, codeEditor,
// virtualList), reporting whether the event was consumed. Tab and
// Escape always fall through to the generic router so focus cycling
// keeps working regardless of what is focused.
func (a *App[S]) routeKeyToFocusedWidget(ev zrev.Event) bool {
	if ev.Key == router.KeyTab || ev.Key == router.KeyEscape {
		return false
	}
	focused, ok := a.focusState.Active()
	if !ok || focused == "" {
		return false
	}
	inst := a.widgets[focused]
	if inst == nil {
		return false
	}

	switch inst.Kind {
	case vnode.KindInput:
		stored, _ := a.reconciler.Store().Get(inst.ID)
		state, _ := stored.(router.InputState)
		next, action := router.HandleInputKey(ev, focused, state)
		a.reconciler.Store().Set(inst.ID, next)
		a.emitAction(action)
		return true

	case vnode.KindCodeEditor:
		stored, _ := a.reconciler.Store().Get(inst.ID)
		state, _ := stored.(router.CodeEditorState)
		viewport := extraInt(inst, "viewport", 20)
		next, action := router.HandleCodeEditorKey(ev, state, viewport)
		a.reconciler.Store().Set(inst.ID, next)
		a.emitAction(action)
		return true

	case vnode.KindVirtualList:
		stored, _ := a.reconciler.Store().Get(inst.ID)
		state, _ := stored.(router.ScrollState)
		itemCount, itemHeight, viewport := virtualListDims(inst)
		next := router.HandleVirtualListKey(ev, itemCount, itemHeight, viewport, state)
		a.reconciler.Store().Set(inst.ID, next)
		a.emitScrollChange(focused, state, next)
		return true
	}

	return false
}

// routeKeyGeneric applies the focus/press key rules (Tab cycling,
// Enter/Space press) shared by every non-text-editing widget. No layer
// state is passed to router.HandleKey, so Escape never closes a layer.
func (a *App[S]) routeKeyGeneric(ev zrev.Event) {
	focused, _ := a.focusState.Active()
	q := router.FocusQuery{
		FocusList: focus.CollectFocusIDs(a.lastTree),
		Focused:   focused,
		Enabled:   a.enabled,
		Pressable: a.pressable,
		Pressed:   a.pressedID,
	}
	res, _ := router.HandleKey(ev, q, false, false)
	a.applyRouterResult(res)
}

// routeMouse resolves the hit target under the cursor and either
// forwards wheel events to the focused virtual list's scroll handler
// or the generic focus/press rules to router.HandleMouse.
func (a *App[S]) routeMouse(ev zrev.Event) {
	hitID := a.hitTest(int(ev.X), int(ev.Y))

	if ev.MouseKind == 5 { // wheel
		inst := a.widgets[hitID]
		if inst == nil || inst.Kind != vnode.KindVirtualList {
			return
		}
		stored, _ := a.reconciler.Store().Get(inst.ID)
		state, _ := stored.(router.ScrollState)
		itemCount, itemHeight, viewport := virtualListDims(inst)
		nextTop := router.HandleWheelScroll(ev, itemCount, itemHeight, viewport, state.ScrollTop)
		next := router.ScrollState{SelectedIndex: state.SelectedIndex, ScrollTop: nextTop}
		a.reconciler.Store().Set(inst.ID, next)
		a.emitScrollChange(hitID, state, next)
		return
	}

	focused, _ := a.focusState.Active()
	q := router.FocusQuery{
		FocusList: focus.CollectFocusIDs(a.lastTree),
		Focused:   focused,
		Enabled:   a.enabled,
		Pressable: a.pressable,
		Pressed:   a.pressedID,
	}
	res := router.HandleMouse(ev, q, hitID)
	a.applyRouterResult(res)
}

func (a *App[S]) applyRouterResult(res router.Result) {
	if res.NextFocused != nil {
		a.focusState.SetActive(*res.NextFocused)
	}
	if res.NextPressed != nil {
		a.pressedID = *res.NextPressed
	}
	a.emitAction(res.Action)
}

func (a *App[S]) emitAction(action *router.Action) {
	if action != nil {
		a.notify(Event{Kind: EventAction, Action: action})
	}
}

// emitScrollChange surfaces a virtual list's scroll/selection change
// as a "scroll" action, since HandleVirtualListKey/HandleWheelScroll
// return only the next state, never an *Action themselves.
func (a *App[S]) emitScrollChange(id string, prev, next router.ScrollState) {
	if next == prev {
		return
	}
	a.emitAction(&router.Action{ID: id, Name: "scroll", Extra: map[string]any{
		"selectedIndex": next.SelectedIndex,
		"scrollTop":     next.ScrollTop,
	}})
}

// virtualListDims reads a virtual list's item count/height/viewport
// out of its Extra props, defaulting itemCount to 0, itemHeight to 1
// and viewport to 0 when absent.
func virtualListDims(inst *vtree.Instance) (itemCount, itemHeight, viewport int) {
	itemCount = extraInt(inst, "itemCount", 0)
	itemHeight = extraInt(inst, "itemHeight", 1)
	if itemHeight <= 0 {
		itemHeight = 1
	}
	viewport = extraInt(inst, "viewport", 0)
	return itemCount, itemHeight, viewport
}

func extraInt(inst *vtree.Instance, key string, def int) int {
	if inst.Props.Extra == nil {
		return def
	}
	if v, ok := inst.Props.Extra[key].(int); ok {
		return v
	}
	return def
}

// hitTest walks the last computed layout tree and returns the id of
// the topmost instance whose rect contains (x, y), or "" if none
// does. Children are visited in sibling order and a later sibling
// wins ties on ZIndex, matching "later siblings with the same
// user-supplied zIndex render on top".
func (a *App[S]) hitTest(x, y int) string {
	if a.lastLayout == nil {
		return ""
	}
	var best *layout.Tree
	var walk func(*layout.Tree)
	walk = func(t *layout.Tree) {
		if t == nil {
			return
		}
		if containsPoint(t.Rect, x, y) {
			if best == nil || t.ZIndex >= best.ZIndex {
				best = t
			}
		}
		for _, c := range t.Children {
			walk(c)
		}
	}
	walk(a.lastLayout)

	if best == nil {
		return ""
	}
	inst := a.instanceByID[best.InstanceID]
	if inst == nil {
		return ""
	}
	return inst.Props.ID
}

func containsPoint(r layout.Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// requestRender signals the driving goroutine that a render is wanted.
// Safe to call from any goroutine (used by Update). The buffered
// channel send is non-blocking: if a render request is already
// pending, this call is a no-op, which is exactly the "latest-wins,
// not per-update" coalescing rule.
func (a *App[S]) requestRender() {
	if a.runtimeState != StateRunning {
		return
	}
	select {
	case a.renderReq <- struct{}{}:
	default:
	}
}

// scheduleRenderFromDriver must only be called from the driving
// goroutine. It runs exactly one turn through the C7 scheduler; any
// further turns that turn's own work enqueues are drained before
// returning, matching the scheduler's microtask semantics.
func (a *App[S]) scheduleRenderFromDriver() {
	a.sched.Enqueue(func(*scheduler.Scheduler) { a.runTurn() })
	a.sched.RunUntilDry()
}

func (a *App[S]) runTurn() {
	defer func() {
		if r := recover(); r != nil {
			a.fail(zrerr.CodeDrawlistBuildError, fmt.Sprintf("panic in frame pipeline: %v", r))
		}
	}()

	a.mu.Lock()
	a.state = a.updates.Drain(a.state)
	a.mu.Unlock()

	if a.runtimeState != StateRunning {
		return
	}
	if err := a.renderFrame(); err != nil {
		zerr, ok := err.(*zrerr.Error)
		if ok {
			a.fail(zerr.Code, zerr.Detail)
		} else {
			a.fail(zrerr.CodeDrawlistBuildError, err.Error())
		}
	}
}

func (a *App[S]) renderFrame() error {
	builder := zrdl.NewBuilder(a.cfg.MaxDrawlistBytes)

	switch a.mode {
	case ModeView:
		root := a.viewFn(a.state)
		tree, err := a.reconciler.Commit(root)
		if err != nil {
			code, detail := firstZrerrCode(err)
			return zrerr.New(code, detail)
		}
		a.lastTree = tree
		a.focusState.ApplyPendingFocusChange(tree.FocusIDs)
		a.refreshInteractiveMaps(tree.Root)

		lt := a.layoutEngine.Layout(tree.Root, a.viewport)
		a.lastLayout = lt
		if err := render(builder, tree.Root, lt); err != nil {
			return err
		}

	case ModeDraw:
		if err := a.drawFn(a.state, builder); err != nil {
			return err
		}
	}

	drawlist, err := builder.Build()
	if err != nil {
		return err
	}
	a.lastDrawlist = drawlist
	return a.backend.RequestFrame(context.Background(), drawlist)
}

func (a *App[S]) refreshInteractiveMaps(root *vtree.Instance) {
	enabled := map[string]bool{}
	pressable := map[string]bool{}
	widgets := map[string]*vtree.Instance{}
	instanceByID := map[vtree.InstanceID]*vtree.Instance{}
	var walk func(*vtree.Instance)
	walk = func(n *vtree.Instance) {
		if n == nil {
			return
		}
		instanceByID[n.ID] = n
		if n.Props.ID != "" {
			enabled[n.Props.ID] = n.Props.Enabled
			pressable[n.Props.ID] = n.Props.Pressable
			widgets[n.Props.ID] = n
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	a.enabled = enabled
	a.pressable = pressable
	a.widgets = widgets
	a.instanceByID = instanceByID
}

// firstZrerrCode unwraps err's underlying *multierror.Error (as
// returned by vtree.Reconciler.Commit) and returns the first wrapped
// *zrerr.Error's code and detail, falling back to CodeDuplicateID for
// any error that doesn't carry a structured code.
func firstZrerrCode(err error) (zrerr.Code, string) {
	if me, ok := err.(*multierror.Error); ok && len(me.Errors) > 0 {
		if zerr, ok := me.Errors[0].(*zrerr.Error); ok {
			return zerr.Code, zerr.Detail
		}
	}
	if zerr, ok := err.(*zrerr.Error); ok {
		return zerr.Code, zerr.Detail
	}
	return zrerr.CodeDuplicateID, err.Error()
}

// fail transitions Running → Faulted, notifies subscribers in
// subscription order, and stops+disposes the backend exactly once.
func (a *App[S]) fail(code zrerr.Code, detail string) {
	if a.runtimeState == StateFaulted || a.runtimeState == StateDisposed {
		return
	}
	a.runtimeState = StateFaulted
	a.notify(Event{Kind: EventFatal, Fatal: &FatalInfo{Code: code, Detail: detail}})
	a.stopOnce.Do(func() {
		_ = a.backend.Stop(context.Background())
		a.backend.Dispose()
	})
}

// LastDrawlist exposes the most recently built frame, for tests and
// an optional debug-snapshot hook.
func (a *App[S]) LastDrawlist() []byte { return a.lastDrawlist }

// LastTree exposes the most recently committed tree, for tests and an
// optional debug-snapshot hook.
func (a *App[S]) LastTree() *vtree.Tree { return a.lastTree }

// LastLayout exposes the most recently computed layout tree, for tests
// and an optional debug-snapshot hook.
func (a *App[S]) LastLayout() *layout.Tree { return a.lastLayout }

// State returns the app's current state value. Safe to call from any
// goroutine.
func (a *App[S]) State() S {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// RuntimeState reports the current lifecycle state.
func (a *App[S]) RuntimeState() RuntimeState { return a.runtimeState }

// Focused exposes the currently focused widget id, for tests and
// introspection.
func (a *App[S]) Focused() (string, bool) { return a.focusState.Active() }
