package flappy

import (
	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/draw"
)

// QuadCount returns how many quads Render will emit for the current state.
// It must agree with Render exactly, because the count is written before
// the quads.
func (g *Game) QuadCount() int32 {
	n := int32(3) // sky, ground, bird
	for _, p := range g.pipes.Pipes() {
		if p.GapTop > 0 {
			n++
		}
		if p.Lower(g.params).H > 0 {
			n++
		}
	}
	if g.mode == ModeOver {
		n++
	}
	return n
}

// Render writes the frame to w, back to front, and returns the address of
// the command stream header.
func (g *Game) Render(w *draw.Writer) uint32 {
	p := g.params
	addr := w.Begin(g.QuadCount())

	w.Quad(core.NewRect(0, 0, p.ScreenW, p.ScreenH), p.Sky, draw.Opaque)
	w.Quad(core.NewRect(0, p.GroundTop(), p.ScreenW, p.GroundHeight), p.Ground, draw.Opaque)

	for _, pipe := range g.pipes.Pipes() {
		if pipe.GapTop > 0 {
			w.Quad(pipe.Upper(p), p.Pipe, draw.Opaque)
		}
		if lower := pipe.Lower(p); lower.H > 0 {
			w.Quad(lower, p.Pipe, draw.Opaque)
		}
	}

	w.Quad(g.birdRect(), p.Bird, draw.Opaque)

	if g.mode == ModeOver {
		box := core.NewRect((p.ScreenW-p.OverlayW)/2, (p.ScreenH-p.OverlayH)/2, p.OverlayW, p.OverlayH)
		w.Quad(box, p.Overlay, p.OverlayAlpha)
	}

	return addr
}
