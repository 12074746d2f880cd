package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

func encodeAt(t *testing.T, f Frame, base uint32) (*wire.Buffer, *wire.View) {
	t.Helper()
	buf := wire.NewBuffer(1024, 0)
	v := wire.NewView(buf, base)
	n := Encode(v, f)
	require.NoError(t, v.Err())
	require.Equal(t, f.Size(), n)
	return buf, wire.NewView(buf, base)
}

func TestEmptyFrameLayout(t *testing.T) {
	f := Frame{}
	assert.Equal(t, uint32(48), f.Size(), "empty input record is 48 bytes")

	_, v := encodeAt(t, f, 0)
	s := Decode(v)
	require.NoError(t, v.Err())
	assert.Empty(t, s.Keys())
	assert.Equal(t, uint32(0), s.MouseButtons)
}

func TestDecodeKeysAndButtons(t *testing.T) {
	f := Frame{
		CursorX:      12.5,
		CursorY:      -3,
		WheelY:       1,
		Keys:         []int32{KeySpace, KeyUp},
		MouseButtons: []int32{0, 2},
	}
	_, v := encodeAt(t, f, 5)

	s := Decode(v)
	require.NoError(t, v.Err())
	assert.Equal(t, 12.5, s.CursorX)
	assert.Equal(t, -3.0, s.CursorY)
	assert.Equal(t, 1.0, s.WheelY)
	assert.Equal(t, []int32{KeySpace, KeyUp}, s.Keys())
	assert.True(t, s.Pressed(KeySpace))
	assert.False(t, s.Pressed(KeyDown))
	assert.Equal(t, uint32(2), s.MouseButtons)
}

func TestDecodeDropsKeysPastCapacity(t *testing.T) {
	keys := make([]int32, 20)
	for i := range keys {
		keys[i] = int32(100 + i)
	}
	f := Frame{Keys: keys, MouseButtons: []int32{1}}
	_, v := encodeAt(t, f, 0)

	s := Decode(v)
	require.NoError(t, v.Err())
	assert.Len(t, s.Keys(), MaxKeys)
	assert.Equal(t, int32(115), s.Keys()[MaxKeys-1])
	assert.False(t, s.Pressed(119), "keys past capacity are discarded")
	assert.Equal(t, uint32(1), s.MouseButtons, "button count is read past every declared key")
}

func TestDecodeOversizedCountIsRecorded(t *testing.T) {
	buf := wire.NewBuffer(64, 0)
	v := wire.NewView(buf, 0)
	v.PutInt32(offKeyCount, 1000)

	v = wire.NewView(buf, 0)
	Decode(v)
	assert.ErrorIs(t, v.Err(), wire.ErrOutOfRange)
}
