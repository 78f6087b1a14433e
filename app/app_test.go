package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zireael-ui/zireael/app"
	"github.com/zireael-ui/zireael/backend"
	"github.com/zireael-ui/zireael/config"
	"github.com/zireael-ui/zireael/queue"
	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/zrerr"
)

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestParseFailureIsFatalScenarioS2(t *testing.T) {
	mem := backend.NewMemory(backend.TerminalCaps{})
	a, err := app.New[int](mem, 0)
	require.NoError(t, err)
	require.NoError(t, a.View(func(int) vnode.VNode { return vnode.Text("hi") }))

	fatalCh := make(chan struct{}, 1)
	var gotCode zrerr.Code
	a.OnEvent(func(ev app.Event) {
		if ev.Kind == app.EventFatal {
			gotCode = ev.Fatal.Code
			fatalCh <- struct{}{}
		}
	})

	require.NoError(t, a.Start(context.Background()))
	mem.PushBatch(make([]byte, 24)) // wrong magic

	waitFor(t, fatalCh)
	assert.Equal(t, zrerr.CodeProtocolError, gotCode)
	assert.Equal(t, 1, mem.StopCount())
	assert.Equal(t, 1, mem.DisposeCount())
	assert.Equal(t, app.StateFaulted, a.RuntimeState())
}

func TestStartRendersAnInitialFrame(t *testing.T) {
	mem := backend.NewMemory(backend.TerminalCaps{})
	a, err := app.New[int](mem, 0, config.WithMaxDrawlistBytes(4096))
	require.NoError(t, err)
	require.NoError(t, a.View(func(int) vnode.VNode { return vnode.Text("hello") }))

	require.NoError(t, a.Start(context.Background()))
	assert.Eventually(t, func() bool { return len(mem.Frames()) >= 1 }, time.Second, 10*time.Millisecond)
}

func TestTabCyclingThroughFocusList(t *testing.T) {
	mem := backend.NewMemory(backend.TerminalCaps{})
	a, err := app.New[int](mem, 0)
	require.NoError(t, err)
	require.NoError(t, a.View(func(int) vnode.VNode {
		return vnode.Row(vnode.DefaultProps(),
			vnode.Button("a", "A"),
			vnode.Button("b", "B"),
			vnode.Button("c", "C"),
		)
	}))
	require.NoError(t, a.Start(context.Background()))

	require.Eventually(t, func() bool {
		id, ok := a.Focused()
		return ok && id == "a"
	}, time.Second, 10*time.Millisecond)

	mem.PostUserEvent(0, nil) // ensure pump loop is alive; tab is pushed next as a key batch
	pushKeyBatch(mem, tabKey, 0)

	require.Eventually(t, func() bool {
		id, _ := a.Focused()
		return id == "b"
	}, time.Second, 10*time.Millisecond)
}

func TestUpdateAppliesQueuedUpdaterBeforeNextFrame(t *testing.T) {
	mem := backend.NewMemory(backend.TerminalCaps{})
	a, err := app.New[int](mem, 1)
	require.NoError(t, err)
	require.NoError(t, a.View(func(n int) vnode.VNode { return vnode.Text("x") }))
	require.NoError(t, a.Start(context.Background()))

	require.NoError(t, a.Update(queue.Func(func(prev int) int { return prev + 41 })))

	require.Eventually(t, func() bool { return a.State() == 42 }, time.Second, 10*time.Millisecond)
}

func TestDuplicateSiblingKeyFaultsWithDuplicateKeyCode(t *testing.T) {
	mem := backend.NewMemory(backend.TerminalCaps{})
	a, err := app.New[bool](mem, false)
	require.NoError(t, err)
	require.NoError(t, a.View(func(dup bool) vnode.VNode {
		p1 := vnode.DefaultProps()
		p1.Key = "same"
		p2 := vnode.DefaultProps()
		p2.Key = "same"
		if !dup {
			p2.Key = "other"
		}
		return vnode.Column(vnode.DefaultProps(), vnode.Box(p1), vnode.Box(p2))
	}))

	fatalCh := make(chan struct{}, 1)
	var gotCode zrerr.Code
	a.OnEvent(func(ev app.Event) {
		if ev.Kind == app.EventFatal {
			gotCode = ev.Fatal.Code
			fatalCh <- struct{}{}
		}
	})

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Update(queue.Value(true)))

	waitFor(t, fatalCh)
	assert.Equal(t, zrerr.CodeDuplicateKey, gotCode)
	assert.Equal(t, app.StateFaulted, a.RuntimeState())
}

func TestStateTransitionsBlockedAfterFault(t *testing.T) {
	mem := backend.NewMemory(backend.TerminalCaps{})
	a, err := app.New[int](mem, 0)
	require.NoError(t, err)
	require.NoError(t, a.View(func(int) vnode.VNode { return vnode.Text("hi") }))

	fatalCh := make(chan struct{}, 1)
	a.OnEvent(func(ev app.Event) {
		if ev.Kind == app.EventFatal {
			fatalCh <- struct{}{}
		}
	})

	require.NoError(t, a.Start(context.Background()))
	mem.PushBatch(make([]byte, 24)) // wrong magic
	waitFor(t, fatalCh)

	require.Equal(t, app.StateFaulted, a.RuntimeState())

	err = a.View(func(int) vnode.VNode { return vnode.Text("bye") })
	require.Error(t, err)
	zerr, ok := err.(*zrerr.Error)
	require.True(t, ok)
	assert.Equal(t, zrerr.CodeInvalidState, zerr.Code)

	err = a.Update(queue.Value(1))
	require.Error(t, err)
	zerr, ok = err.(*zrerr.Error)
	require.True(t, ok)
	assert.Equal(t, zrerr.CodeInvalidState, zerr.Code)
}

func TestMouseClickHitTestsIntoSecondWidgetAndRoutesTextToIt(t *testing.T) {
	mem := backend.NewMemory(backend.TerminalCaps{})
	a, err := app.New[string](mem, "")
	require.NoError(t, err)

	mkInput := func(id string) vnode.VNode {
		p := vnode.DefaultProps()
		p.ID = id
		p.Constraints.Width = vnode.Cells(10)
		p.Constraints.Height = vnode.Cells(1)
		return vnode.VNode{Kind: vnode.KindInput, Props: p}
	}
	require.NoError(t, a.View(func(string) vnode.VNode {
		return vnode.Row(vnode.DefaultProps(), mkInput("a"), mkInput("b"))
	}))

	var actions []app.Event
	var mu sync.Mutex
	a.OnEvent(func(ev app.Event) {
		if ev.Kind == app.EventAction {
			mu.Lock()
			actions = append(actions, ev)
			mu.Unlock()
		}
	})

	require.NoError(t, a.Start(context.Background()))
	require.Eventually(t, func() bool {
		return a.LastLayout() != nil && len(a.LastLayout().Children) == 2
	}, time.Second, 10*time.Millisecond)

	// The first focusable widget is focused by default before any
	// click, per the pending-focus fallback rule.
	require.Eventually(t, func() bool {
		id, ok := a.Focused()
		return ok && id == "a"
	}, time.Second, 10*time.Millisecond)

	rectB := a.LastLayout().Children[1].Rect
	pushMouseBatch(mem, uint32(rectB.X), uint32(rectB.Y), 3, 0, 1, 0, 0) // down
	pushMouseBatch(mem, uint32(rectB.X), uint32(rectB.Y), 4, 0, 0, 0, 0) // up

	require.Eventually(t, func() bool {
		id, ok := a.Focused()
		return ok && id == "b"
	}, time.Second, 10*time.Millisecond)

	pushTextBatch(mem, 'h')
	pushTextBatch(mem, 'i')

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, ev := range actions {
			if ev.Action.ID == "b" && ev.Action.Name == "input" && ev.Action.Extra["value"] == "hi" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
