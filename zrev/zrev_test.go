package zrev_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zireael-ui/zireael/zrerr"
	"github.com/zireael-ui/zireael/zrev"
)

func putU32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], v)
}

// buildTextBatch assembles a well-formed ZREV v1 buffer with one text
// event (codepoint 65), mirroring scenario S1's engine event.
func buildTextBatch(t *testing.T, flags uint32) []byte {
	t.Helper()
	const headerSize = 24
	const recordSize = 20 // 16-byte record header + 4-byte codepoint, already 4-aligned
	record := make([]byte, recordSize)
	putU32(record, 0, uint32(zrev.KindText))
	putU32(record, 4, recordSize)
	putU32(record, 8, 0)  // timeMs
	putU32(record, 12, 0) // reserved
	putU32(record, 16, 65)

	buf := make([]byte, headerSize+len(record))
	putU32(buf, 0, 0x5645525A)
	putU32(buf, 4, 1)
	putU32(buf, 8, uint32(len(buf)))
	putU32(buf, 12, 1)
	putU32(buf, 16, flags)
	putU32(buf, 20, 0)
	copy(buf[headerSize:], record)
	return buf
}

func TestParseSingleTextEvent(t *testing.T) {
	buf := buildTextBatch(t, 0)
	batch, err := zrev.Parse(buf, zrev.DefaultLimits())
	require.NoError(t, err)
	require.Len(t, batch.Events, 1)
	assert.Equal(t, zrev.KindText, batch.Events[0].Kind)
	assert.EqualValues(t, 65, batch.Events[0].Codepoint)
}

func TestOverrunFlagSurfaced(t *testing.T) {
	buf := buildTextBatch(t, 1)
	batch, err := zrev.Parse(buf, zrev.DefaultLimits())
	require.NoError(t, err)
	assert.True(t, batch.Truncated())
}

func TestBadMagicIsFatalShaped(t *testing.T) {
	buf := make([]byte, 24)
	_, err := zrev.Parse(buf, zrev.DefaultLimits())
	require.Error(t, err)
	var zerr *zrerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zrerr.CodeBadMagic, zerr.Code)
	assert.EqualValues(t, 0, zerr.Offset)
}

func TestSizeMismatch(t *testing.T) {
	buf := buildTextBatch(t, 0)
	putU32(buf, 8, uint32(len(buf)+4))
	_, err := zrev.Parse(buf, zrev.DefaultLimits())
	require.Error(t, err)
	var zerr *zrerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zrerr.CodeSizeMismatch, zerr.Code)
}

func TestEventCountExceedsLimit(t *testing.T) {
	buf := buildTextBatch(t, 0)
	putU32(buf, 12, 999999)
	_, err := zrev.Parse(buf, zrev.DefaultLimits())
	require.Error(t, err)
	var zerr *zrerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zrerr.CodeLimit, zerr.Code)
}

func TestInvalidMouseKindRejected(t *testing.T) {
	const headerSize = 24
	record := make([]byte, 44) // header 16 + 28 payload
	putU32(record, 0, uint32(zrev.KindMouse))
	putU32(record, 4, 44)
	putU32(record, 8, 0)
	putU32(record, 12, 0)
	putU32(record, 16, 10)  // x
	putU32(record, 20, 20)  // y
	putU32(record, 24, 9)   // invalid mouseKind
	putU32(record, 28, 0)   // mods
	putU32(record, 32, 0)   // buttons
	putU32(record, 36, 0)   // wheelX
	putU32(record, 40, 0)   // wheelY

	buf := make([]byte, headerSize+len(record))
	putU32(buf, 0, 0x5645525A)
	putU32(buf, 4, 1)
	putU32(buf, 8, uint32(len(buf)))
	putU32(buf, 12, 1)
	putU32(buf, 16, 0)
	copy(buf[headerSize:], record)

	_, err := zrev.Parse(buf, zrev.DefaultLimits())
	require.Error(t, err)
	var zerr *zrerr.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zrerr.CodeInvalidRecord, zerr.Code)
}

// TestParserNeverPanics exercises property 1: arbitrary short byte
// sequences must return a structured error, never panic.
func TestParserNeverPanics(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{1, 2, 3},
		make([]byte, 24),
		make([]byte, 23),
		append(buildTextBatch(t, 0), 0xFF),
		buildTextBatch(t, 0)[:30],
	}
	for i, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("input %d panicked: %v", i, r)
				}
			}()
			_, _ = zrev.Parse(in, zrev.DefaultLimits())
		}()
	}
}
