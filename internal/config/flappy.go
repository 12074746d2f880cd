package config

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/games/flappy"
)

// Params converts the configuration to simulation parameters.
func (f FlappyConfig) Params() (flappy.Params, error) {
	p := flappy.DefaultParams()

	p.Title = f.Title
	p.ScreenW = f.Screen.Width
	p.ScreenH = f.Screen.Height
	p.GroundHeight = f.Screen.GroundHeight

	p.Gravity = f.Physics.Gravity
	p.Jump = f.Physics.JumpImpulse

	p.PipeWidth = f.Obstacles.PipeWidth
	p.PipeGap = f.Obstacles.GapSize
	p.PipeSpeed = f.Obstacles.Speed
	p.SpawnInterval = f.Obstacles.SpawnInterval
	p.MaxPipes = f.Obstacles.MaxPipes
	p.TopMargin = f.Obstacles.TopMargin
	p.BottomMargin = f.Obstacles.BottomMargin

	p.BirdX = f.Player.X
	p.BirdSize = f.Player.Size

	colors := []struct {
		name string
		hex  string
		dst  *core.RGB
	}{
		{"sky", f.Colors.Sky, &p.Sky},
		{"ground", f.Colors.Ground, &p.Ground},
		{"pipe", f.Colors.Pipe, &p.Pipe},
		{"bird", f.Colors.Bird, &p.Bird},
		{"overlay", f.Colors.Overlay, &p.Overlay},
	}
	for _, c := range colors {
		rgb, err := ParseColor(c.hex)
		if err != nil {
			return p, fmt.Errorf("config: flappy.colors.%s: %w", c.name, err)
		}
		*c.dst = rgb
	}
	p.OverlayAlpha = f.Colors.OverlayAlpha

	return p, nil
}

// ParseColor parses a #RRGGBB string.
func ParseColor(s string) (core.RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("color %q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return core.RGB(v), nil
}
