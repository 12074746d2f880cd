package flappy

import "github.com/vovakirdan/wasm-arcade/internal/core"

// Pipe is a vertical obstacle with a fixed-height gap.
type Pipe struct {
	X      float64 // Left edge
	GapTop float64 // Y where the gap starts
}

// Rect returns the pipe's full-height column.
func (p Pipe) Rect(params Params) core.Rect {
	return core.NewRect(p.X, 0, params.PipeWidth, params.ScreenH)
}

// Gap returns the passable part of the column.
func (p Pipe) Gap(params Params) core.Rect {
	return core.NewRect(p.X, p.GapTop, params.PipeWidth, params.PipeGap)
}

// Upper returns the segment above the gap.
func (p Pipe) Upper(params Params) core.Rect {
	return core.NewRect(p.X, 0, params.PipeWidth, p.GapTop)
}

// Lower returns the segment between the gap and the ground.
func (p Pipe) Lower(params Params) core.Rect {
	bottom := p.GapTop + params.PipeGap
	return core.NewRect(p.X, bottom, params.PipeWidth, params.GroundTop()-bottom)
}

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right order.
type PipeManager struct {
	params Params
	pipes  core.Bounded[Pipe]
	timer  int32 // frames since the last spawn
}

// NewPipeManager creates an empty pipe manager.
func NewPipeManager(params Params) *PipeManager {
	return &PipeManager{
		params: params,
		pipes:  core.NewBounded[Pipe](params.MaxPipes),
	}
}

// Reset clears all pipes and the spawn timer.
func (pm *PipeManager) Reset() {
	pm.pipes.Clear()
	pm.timer = 0
}

// Tick advances the spawn timer and spawns a pipe at the right edge once
// the interval has elapsed. The timer only resets when a spawn happens, so a
// full manager retries on every later frame.
func (pm *PipeManager) Tick(seed int32) bool {
	pm.timer++
	if pm.timer < pm.params.SpawnInterval || pm.pipes.Full() {
		return false
	}
	pm.timer = 0
	gapTop := pm.params.TopMargin + pseudoRandom(seed)*pm.params.gapRange()
	return pm.pipes.Push(Pipe{X: pm.params.ScreenW, GapTop: gapTop})
}

// Advance moves every pipe left and returns how many trailing edges crossed
// from at-or-right-of lineX to left of it.
func (pm *PipeManager) Advance(lineX float64) int {
	passed := 0
	items := pm.pipes.Items()
	for i := range items {
		oldRight := items[i].X + pm.params.PipeWidth
		items[i].X -= pm.params.PipeSpeed
		newRight := items[i].X + pm.params.PipeWidth
		if oldRight >= lineX && newRight < lineX {
			passed++
		}
	}
	return passed
}

// Prune drops pipes whose right edge has reached the left screen edge.
func (pm *PipeManager) Prune() {
	width := pm.params.PipeWidth
	pm.pipes.Retain(func(p Pipe) bool {
		return p.X+width > 0
	})
}

// Collides reports whether bird overlaps any pipe column outside its gap.
func (pm *PipeManager) Collides(bird core.Rect) bool {
	for _, p := range pm.pipes.Items() {
		if bird.OverlapsX(p.Rect(pm.params)) && !bird.WithinY(p.Gap(pm.params)) {
			return true
		}
	}
	return false
}

// Pipes returns the live pipes in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes.Items()
}

// Timer returns the frames since the last spawn.
func (pm *PipeManager) Timer() int32 {
	return pm.timer
}

// pseudoRandom maps seed to [0, 1] with a 32-bit linear congruential step.
func pseudoRandom(seed int32) float64 {
	x := seed*1103515245 + 12345
	return float64((x>>16)&0x7FFF) / 32767.0
}
