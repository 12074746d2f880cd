// Package draw defines the draw command stream a guest returns from its draw
// entry point. The stream is a 4-byte command count followed by commands:
//
//	 0: i32 vertex count (V)
//	 4: i32 index count (I)
//	 8: i32 source image id (0 = untextured fill)
//	12: i32 red   (0-255)
//	16: i32 green (0-255)
//	20: i32 blue  (0-255)
//	24: i32 alpha (0-255)
//	28: f32[V*4] vertices (x, y, u, v) in clip space
//	28+16V: i32[I] indices
//
// The guest only ever emits quads (V=4, I=6), so its commands have a fixed
// size of QuadCommandSize bytes.
package draw

import (
	"github.com/vovakirdan/wasm-arcade/internal/core"
)

// HeaderSize is the size of the command count preceding the commands.
const HeaderSize = 4

// Quad geometry.
const (
	QuadVertexCount = 4
	QuadIndexCount  = 6
)

const (
	offVertexCount = 0
	offIndexCount  = 4
	offImageID     = 8
	offRed         = 12
	offGreen       = 16
	offBlue        = 20
	offAlpha       = 24
	offVertices    = 28

	vertexSize = 16
)

// QuadCommandSize is the encoded size of one quad command.
const QuadCommandSize = offVertices + QuadVertexCount*vertexSize + QuadIndexCount*4

// QuadIndices is the two-triangle fan every quad uses.
var QuadIndices = [QuadIndexCount]int32{0, 1, 2, 0, 2, 3}

// Opaque is the alpha of a fully opaque command.
const Opaque uint8 = 255

// Vertex is one corner in clip space with its texture coordinate.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Command is a decoded draw command.
type Command struct {
	ImageID    int32
	R, G, B, A int32
	Vertices   []Vertex
	Indices    []uint32
}

// Color returns the command's packed RGB colour.
func (c Command) Color() core.RGB {
	return core.NewRGB(uint8(c.R), uint8(c.G), uint8(c.B))
}

// Bounds returns the axis-aligned clip-space box spanned by the vertices.
func (c Command) Bounds() (minX, minY, maxX, maxY float32) {
	if len(c.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = c.Vertices[0].X, c.Vertices[0].Y
	maxX, maxY = minX, minY
	for _, v := range c.Vertices[1:] {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// QuadVertices maps a screen-space rectangle to clip space for a screen of
// the given size. Corners are wound top-left, top-right, bottom-right,
// bottom-left with UVs (0,0), (1,0), (1,1), (0,1).
func QuadVertices(r core.Rect, screenW, screenH float64) [QuadVertexCount]Vertex {
	x0 := float32(r.X/screenW*2 - 1)
	y0 := float32(1 - r.Y/screenH*2)
	x1 := float32(r.Right()/screenW*2 - 1)
	y1 := float32(1 - r.Bottom()/screenH*2)
	return [QuadVertexCount]Vertex{
		{X: x0, Y: y0, U: 0, V: 0},
		{X: x1, Y: y0, U: 1, V: 0},
		{X: x1, Y: y1, U: 1, V: 1},
		{X: x0, Y: y1, U: 0, V: 1},
	}
}
