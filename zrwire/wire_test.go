package zrwire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zireael-ui/zireael/zrerr"
	"github.com/zireael-ui/zireael/zrwire"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := zrwire.NewWriter(64)
	require.NoError(t, w.WriteU8(0x7F))
	require.NoError(t, w.PadTo4())
	require.NoError(t, w.WriteU32(0xDEADBEEF))
	require.NoError(t, w.WriteI32(-12345))
	require.NoError(t, w.WriteBytes([]byte("hi")))
	require.NoError(t, w.PadTo4())

	buf := w.Finish()
	r := zrwire.NewReader(buf)

	b, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, byte(0x7F), b)

	require.NoError(t, r.Skip(3)) // consume the pad
	u, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u)

	i, err := r.ReadI32()
	require.NoError(t, err)
	assert.Equal(t, int32(-12345), i)

	view, err := r.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(view))

	require.NoError(t, r.SkipPad4(2))
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderTruncated(t *testing.T) {
	r := zrwire.NewReader([]byte{1, 2, 3})
	_, err := r.ReadU32()
	require.Error(t, err)
	var zerr *zrerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zrerr.CodeTruncated, zerr.Code)
}

func TestReaderMisaligned(t *testing.T) {
	r := zrwire.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	_, err := r.ReadU8()
	require.NoError(t, err)
	_, err = r.ReadU32()
	require.Error(t, err)
	var zerr *zrerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zrerr.CodeMisaligned, zerr.Code)
	assert.EqualValues(t, 1, zerr.Offset)
}

func TestWriterLimit(t *testing.T) {
	w := zrwire.NewWriter(2)
	require.NoError(t, w.WriteU8(1))
	err := w.WriteU32(7)
	require.Error(t, err)
	var zerr *zrerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zrerr.CodeLimit, zerr.Code)
	// failure must not have mutated the buffer
	assert.Equal(t, 1, w.Len())
}

func TestCursorStaysPutAfterFailure(t *testing.T) {
	r := zrwire.NewReader([]byte{1, 2, 3})
	before := r.Pos()
	_, err := r.ReadU32()
	require.Error(t, err)
	assert.Equal(t, before, r.Pos())
}
