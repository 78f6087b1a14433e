package backend_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zireael-ui/zireael/backend"
	"github.com/zireael-ui/zireael/zrev"
)

func TestRequestFrameCapturesBytes(t *testing.T) {
	m := backend.NewMemory(backend.TerminalCaps{})
	require.NoError(t, m.RequestFrame(context.Background(), []byte{1, 2, 3}))
	require.NoError(t, m.RequestFrame(context.Background(), []byte{4, 5}))
	assert.Equal(t, [][]byte{{1, 2, 3}, {4, 5}}, m.Frames())
}

func TestPostUserEventProducesParsableBatch(t *testing.T) {
	m := backend.NewMemory(backend.TerminalCaps{})
	m.PostUserEvent(42, []byte("hi"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	batch, err := m.PollEvents(ctx)
	require.NoError(t, err)

	parsed, err := zrev.Parse(batch.Bytes, zrev.DefaultLimits())
	require.NoError(t, err)
	require.Len(t, parsed.Events, 1)
	assert.Equal(t, zrev.KindUser, parsed.Events[0].Kind)
	assert.Equal(t, uint32(42), parsed.Events[0].Tag)
	assert.Equal(t, "hi", string(parsed.Events[0].Bytes))
}

func TestPushBatchDeliversMalformedBytesVerbatim(t *testing.T) {
	m := backend.NewMemory(backend.TerminalCaps{})
	m.PushBatch(make([]byte, 24)) // zero buffer: wrong magic

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	batch, err := m.PollEvents(ctx)
	require.NoError(t, err)

	_, perr := zrev.Parse(batch.Bytes, zrev.DefaultLimits())
	assert.Error(t, perr)
}

func TestStopAndDisposeCountTracked(t *testing.T) {
	m := backend.NewMemory(backend.TerminalCaps{})
	_ = m.Stop(context.Background())
	m.Dispose()
	m.Dispose()
	assert.Equal(t, 1, m.StopCount())
	assert.Equal(t, 2, m.DisposeCount())
}

func TestPollEventsRespectsContextCancellation(t *testing.T) {
	m := backend.NewMemory(backend.TerminalCaps{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.PollEvents(ctx)
	assert.Error(t, err)
}
