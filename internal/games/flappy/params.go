package flappy

import "github.com/vovakirdan/wasm-arcade/internal/core"

// Params holds every tunable of the simulation and its rendering.
// The zero value is not usable; start from DefaultParams.
type Params struct {
	Title string

	ScreenW float64
	ScreenH float64

	BirdX    float64
	BirdSize float64
	Gravity  float64 // added to velocity every playing frame
	Jump     float64 // velocity set on a flap (negative = up)

	PipeWidth     float64
	PipeGap       float64
	PipeSpeed     float64 // pixels per frame
	SpawnInterval int32   // frames between spawns
	MaxPipes      int
	TopMargin     float64 // minimum gap top
	BottomMargin  float64 // minimum distance from gap bottom to ground

	GroundHeight float64

	Sky          core.RGB
	Ground       core.RGB
	Pipe         core.RGB
	Bird         core.RGB
	Overlay      core.RGB
	OverlayAlpha uint8
	OverlayW     float64
	OverlayH     float64
}

// DefaultParams returns the reference tuning for a 320x240 screen.
func DefaultParams() Params {
	return Params{
		Title: "Flappy Bird (Go)",

		ScreenW: 320,
		ScreenH: 240,

		BirdX:    60,
		BirdSize: 12,
		Gravity:  0.25,
		Jump:     -4.5,

		PipeWidth:     36,
		PipeGap:       70,
		PipeSpeed:     1.5,
		SpawnInterval: 120,
		MaxPipes:      16,
		TopMargin:     40,
		BottomMargin:  40,

		GroundHeight: 20,

		Sky:          core.ColorSky,
		Ground:       core.ColorGround,
		Pipe:         core.ColorPipe,
		Bird:         core.ColorBird,
		Overlay:      core.ColorOverlay,
		OverlayAlpha: 128,
		OverlayW:     100,
		OverlayH:     40,
	}
}

// GroundTop returns the y coordinate of the top of the ground strip.
func (p Params) GroundTop() float64 {
	return p.ScreenH - p.GroundHeight
}

// gapRange returns the span of valid gap tops above TopMargin.
func (p Params) gapRange() float64 {
	return p.GroundTop() - p.PipeGap - p.TopMargin - p.BottomMargin
}
