// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The simulation is deterministic: the only source of variation is a
// pseudo-random step seeded by the frame counter, so identical input
// sequences always produce identical games.
package flappy

import (
	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/input"
)

// Mode is the phase of a game.
type Mode int

// Modes. A flap leaves Waiting for Playing; a crash enters Over; a flap in
// Over starts a new round in Waiting.
const (
	ModeWaiting Mode = iota
	ModePlaying
	ModeOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWaiting:
		return "waiting"
	case ModePlaying:
		return "playing"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game implements the Flappy Bird game logic.
type Game struct {
	params Params

	mode       Mode
	score      int
	birdY      float64 // Top of the bird's hitbox
	velocity   float64 // Vertical velocity, positive = down
	frameCount int32   // Frames since creation; wraps, seeds spawns
	prevAction bool    // Raw action level on the previous frame
	pipes      *PipeManager
}

// Snapshot is a read-only copy of the game state.
type Snapshot struct {
	Mode       Mode
	Score      int
	BirdY      float64
	Velocity   float64
	FrameCount int32
	PipeTimer  int32
	Pipes      []Pipe
}

// New creates a game in the waiting mode.
func New(params Params) *Game {
	g := &Game{
		params: params,
		pipes:  NewPipeManager(params),
	}
	g.Reset()
	return g
}

// Params returns the tuning the game was created with.
func (g *Game) Params() Params {
	return g.params
}

// Reset starts a new round. The frame counter and the action edge state
// are kept, so a held key does not flap again after a restart.
func (g *Game) Reset() {
	g.mode = ModeWaiting
	g.score = 0
	g.birdY = g.params.ScreenH / 2
	g.velocity = 0
	g.pipes.Reset()
}

// Step advances the game by one frame.
func (g *Game) Step(in *input.Snapshot) {
	g.frameCount++

	held := in.Pressed(input.KeySpace) || in.Pressed(input.KeyUp) || in.MouseButtons > 0
	action := held && !g.prevAction
	g.prevAction = held

	switch g.mode {
	case ModeWaiting:
		if action {
			g.mode = ModePlaying
			g.velocity = g.params.Jump
		}
	case ModePlaying:
		g.play(action)
	default:
		if action {
			g.Reset()
		}
	}
}

func (g *Game) play(action bool) {
	// Physics integrate with the previous velocity; a flap takes effect
	// from the next frame.
	g.velocity += g.params.Gravity
	g.birdY += g.velocity
	if action {
		g.velocity = g.params.Jump
	}

	g.pipes.Tick(g.frameCount)
	g.score += g.pipes.Advance(g.params.BirdX)
	g.pipes.Prune()

	if g.birdY+g.params.BirdSize > g.params.GroundTop() || g.birdY < 0 {
		g.mode = ModeOver
	}
	if g.pipes.Collides(g.birdRect()) {
		g.mode = ModeOver
	}
}

// birdRect returns the bird's collision rectangle.
func (g *Game) birdRect() core.Rect {
	return core.NewRect(g.params.BirdX, g.birdY, g.params.BirdSize, g.params.BirdSize)
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the pipes passed this round.
func (g *Game) Score() int {
	return g.score
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	pipes := g.pipes.Pipes()
	out := make([]Pipe, len(pipes))
	copy(out, pipes)
	return Snapshot{
		Mode:       g.mode,
		Score:      g.score,
		BirdY:      g.birdY,
		Velocity:   g.velocity,
		FrameCount: g.frameCount,
		PipeTimer:  g.pipes.Timer(),
		Pipes:      out,
	}
}
