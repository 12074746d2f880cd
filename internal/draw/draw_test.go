package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wasm-arcade/internal/arena"
	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

func TestQuadCommandSize(t *testing.T) {
	assert.Equal(t, 116, QuadCommandSize)
}

func TestQuadVerticesFullScreen(t *testing.T) {
	v := QuadVertices(core.NewRect(0, 0, 320, 240), 320, 240)

	assert.Equal(t, Vertex{X: -1, Y: 1, U: 0, V: 0}, v[0])
	assert.Equal(t, Vertex{X: 1, Y: 1, U: 1, V: 0}, v[1])
	assert.Equal(t, Vertex{X: 1, Y: -1, U: 1, V: 1}, v[2])
	assert.Equal(t, Vertex{X: -1, Y: -1, U: 0, V: 1}, v[3])
}

func TestQuadVerticesGround(t *testing.T) {
	v := QuadVertices(core.NewRect(0, 220, 320, 20), 320, 240)

	assert.InDelta(t, -1.0, v[0].X, 1e-6)
	assert.InDelta(t, 1-220.0/240*2, v[0].Y, 1e-6)
	assert.InDelta(t, 1.0, v[2].X, 1e-6)
	assert.InDelta(t, -1.0, v[2].Y, 1e-6)
}

func newTarget(t *testing.T) (*wire.Buffer, *arena.Arena) {
	t.Helper()
	mem := wire.NewBuffer(64*1024, 0)
	return mem, arena.New(0)
}

func TestWriterEncodesQuads(t *testing.T) {
	mem, a := newTarget(t)
	w := NewWriter(mem, a, 320, 240)

	addr := w.Begin(2)
	w.Quad(core.NewRect(0, 0, 320, 240), core.ColorSky, Opaque)
	w.Quad(core.NewRect(110, 100, 100, 40), core.ColorOverlay, 128)
	require.NoError(t, w.Close())

	assert.Equal(t, uint32(arena.ReservedSize), addr)
	assert.Equal(t, addr+HeaderSize+2*QuadCommandSize, a.Cursor())

	cmds, err := Decode(mem, addr)
	require.NoError(t, err)
	require.Len(t, cmds, 2)

	sky := cmds[0]
	assert.Equal(t, int32(0), sky.ImageID)
	assert.Equal(t, core.ColorSky, sky.Color())
	assert.Equal(t, int32(255), sky.A)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, sky.Indices)
	require.Len(t, sky.Vertices, 4)

	overlay := cmds[1]
	assert.Equal(t, int32(0), overlay.R)
	assert.Equal(t, int32(128), overlay.A)
	minX, minY, maxX, maxY := overlay.Bounds()
	assert.InDelta(t, 110.0/320*2-1, minX, 1e-6)
	assert.InDelta(t, 210.0/320*2-1, maxX, 1e-6)
	assert.InDelta(t, 1-140.0/240*2, minY, 1e-6)
	assert.InDelta(t, 1-100.0/240*2, maxY, 1e-6)
}

func TestWriterCountMismatch(t *testing.T) {
	mem, a := newTarget(t)
	w := NewWriter(mem, a, 320, 240)

	w.Begin(3)
	w.Quad(core.NewRect(0, 0, 1, 1), core.ColorBird, Opaque)

	err := w.Close()
	require.ErrorIs(t, err, ErrCountMismatch)
	assert.Equal(t, int32(1), w.Emitted())
}

func TestWriterOutOfMemory(t *testing.T) {
	mem := wire.NewBuffer(arena.ReservedSize+HeaderSize+QuadCommandSize/2, 0)
	w := NewWriter(mem, arena.New(0), 320, 240)

	w.Begin(1)
	w.Quad(core.NewRect(0, 0, 1, 1), core.ColorBird, Opaque)

	assert.ErrorIs(t, w.Close(), wire.ErrOutOfRange)
}

func TestDecodeVariableLength(t *testing.T) {
	mem := wire.NewBuffer(1024, 0)
	v := wire.NewView(mem, 0)

	// One triangle (3 vertices, 3 indices) followed by one quad.
	v.PutInt32(0, 2)
	off := uint32(HeaderSize)
	v.PutInt32(off, 3)
	v.PutInt32(off+4, 3)
	v.PutInt32(off+8, 7)
	v.PutInt32(off+24, 255)
	for i := uint32(0); i < 3; i++ {
		v.PutFloat32(off+28+i*16, float32(i))
	}
	for i := uint32(0); i < 3; i++ {
		v.PutInt32(off+28+48+i*4, int32(i))
	}
	off += 28 + 48 + 12
	v.PutInt32(off, 4)
	v.PutInt32(off+4, 6)
	v.PutInt32(off+12, 255)
	require.NoError(t, v.Err())

	cmds, err := Decode(mem, 0)
	require.NoError(t, err)
	require.Len(t, cmds, 2)

	assert.Equal(t, int32(7), cmds[0].ImageID)
	assert.Len(t, cmds[0].Vertices, 3)
	assert.Equal(t, float32(2), cmds[0].Vertices[2].X)
	assert.Equal(t, []uint32{0, 1, 2}, cmds[0].Indices)

	assert.Len(t, cmds[1].Vertices, 4)
	assert.Len(t, cmds[1].Indices, 6)
	assert.Equal(t, int32(255), cmds[1].R)
}

func TestDecodeRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(v *wire.View)
	}{
		{"negative command count", func(v *wire.View) { v.PutInt32(0, -1) }},
		{"too many commands", func(v *wire.View) { v.PutInt32(0, MaxCommands+1) }},
		{"negative vertex count", func(v *wire.View) {
			v.PutInt32(0, 1)
			v.PutInt32(HeaderSize, -4)
		}},
		{"truncated command", func(v *wire.View) {
			v.PutInt32(0, 1)
			v.PutInt32(HeaderSize, 100)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := wire.NewBuffer(256, 0)
			tt.setup(wire.NewView(mem, 0))

			_, err := Decode(mem, 0)
			assert.Error(t, err)
		})
	}
}

func TestDecodeEmptyStream(t *testing.T) {
	mem := wire.NewBuffer(16, 0)

	cmds, err := Decode(mem, 0)
	require.NoError(t, err)
	assert.Empty(t, cmds)
}
