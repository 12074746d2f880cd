package draw

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// ErrCountMismatch is returned by Writer.Close when the number of quads
// written differs from the count declared in the header.
var ErrCountMismatch = errors.New("draw: command count mismatch")

// Allocator reserves memory for encoded commands.
// *arena.Arena satisfies it.
type Allocator interface {
	Alloc(size uint32) uint32
}

// Writer encodes quad commands into freshly allocated memory.
// Begin must be called once, before the first Quad, because the header is
// written ahead of the commands it counts.
type Writer struct {
	mem     wire.Memory
	alloc   Allocator
	screenW float64
	screenH float64

	header   uint32
	declared int32
	emitted  int32
	err      error
}

// NewWriter returns a writer for a screen of the given size in pixels.
func NewWriter(mem wire.Memory, alloc Allocator, screenW, screenH float64) *Writer {
	return &Writer{mem: mem, alloc: alloc, screenW: screenW, screenH: screenH}
}

// Begin allocates the header, writes the declared command count, and returns
// the header's address. Commands follow it contiguously.
func (w *Writer) Begin(count int32) uint32 {
	w.header = w.alloc.Alloc(HeaderSize)
	w.declared = count
	v := wire.NewView(w.mem, w.header)
	v.PutInt32(0, count)
	w.setErr(v.Err())
	return w.header
}

// Quad writes one untextured quad covering r.
func (w *Writer) Quad(r core.Rect, fill core.RGB, alpha uint8) {
	addr := w.alloc.Alloc(QuadCommandSize)
	v := wire.NewView(w.mem, addr)

	v.PutInt32(offVertexCount, QuadVertexCount)
	v.PutInt32(offIndexCount, QuadIndexCount)
	v.PutInt32(offImageID, 0)
	v.PutInt32(offRed, int32(fill.R()))
	v.PutInt32(offGreen, int32(fill.G()))
	v.PutInt32(offBlue, int32(fill.B()))
	v.PutInt32(offAlpha, int32(alpha))

	off := uint32(offVertices)
	for _, vert := range QuadVertices(r, w.screenW, w.screenH) {
		v.PutFloat32(off, vert.X)
		v.PutFloat32(off+4, vert.Y)
		v.PutFloat32(off+8, vert.U)
		v.PutFloat32(off+12, vert.V)
		off += vertexSize
	}
	for _, idx := range QuadIndices {
		v.PutInt32(off, idx)
		off += 4
	}

	w.emitted++
	w.setErr(v.Err())
}

// Emitted returns the number of quads written so far.
func (w *Writer) Emitted() int32 {
	return w.emitted
}

// Close reports the first memory error, or ErrCountMismatch when the quads
// written do not match the declared count.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.emitted != w.declared {
		return fmt.Errorf("%w: declared %d, emitted %d", ErrCountMismatch, w.declared, w.emitted)
	}
	return nil
}

func (w *Writer) setErr(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}
