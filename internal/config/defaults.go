package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/arcade.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Host: HostConfig{
			FPS:       60,
			HoldTicks: 8,
			DBPath:    "~/.arcade/scores.db",
			LogLevel:  "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Guests: []GuestConfig{},
		Flappy: DefaultFlappyConfig(),
	}
}

// DefaultFlappyConfig returns the reference Flappy tuning.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Title: "Flappy Bird (Go)",
		Screen: FlappyScreen{
			Width:        320,
			Height:       240,
			GroundHeight: 20,
		},
		Physics: FlappyPhysics{
			Gravity:     0.25,
			JumpImpulse: -4.5,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:     36,
			GapSize:       70,
			Speed:         1.5,
			SpawnInterval: 120,
			MaxPipes:      16,
			TopMargin:     40,
			BottomMargin:  40,
		},
		Player: FlappyPlayer{
			X:    60,
			Size: 12,
		},
		Colors: FlappyColors{
			Sky:          "#87CEEB",
			Ground:       "#8B4513",
			Pipe:         "#228B22",
			Bird:         "#FFD700",
			Overlay:      "#000000",
			OverlayAlpha: 128,
		},
	}
}
