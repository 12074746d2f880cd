// Package config provides YAML-based configuration for the arcade host and
// the built-in Flappy guest: loading with a search path and embedded
// defaults, validation, and JSON schema generation.
package config

import "time"

// Config is the complete host configuration.
type Config struct {
	Host   HostConfig    `yaml:"host" json:"host"`
	SSH    SSHConfig     `yaml:"ssh" json:"ssh"`
	Guests []GuestConfig `yaml:"guests" json:"guests,omitempty" validate:"dive"`
	Flappy FlappyConfig  `yaml:"flappy" json:"flappy"`
}

// HostConfig controls the frame loop and the host's own resources.
type HostConfig struct {
	FPS       int    `yaml:"fps" json:"fps" validate:"min=1,max=240" jsonschema:"minimum=1,maximum=240,default=60,description=Guest frames per second"`
	HoldTicks int    `yaml:"hold_ticks" json:"hold_ticks" validate:"min=1,max=120" jsonschema:"minimum=1,default=8,description=Frames a key stays down after a terminal key event"`
	DBPath    string `yaml:"db_path" json:"db_path" validate:"required" jsonschema:"description=SQLite database for scores and sessions"`
	CacheDir  string `yaml:"cache_dir" json:"cache_dir,omitempty" jsonschema:"description=Directory for compiled wasm; empty keeps the cache in memory"`
	LogLevel  string `yaml:"log_level" json:"log_level" validate:"oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address" json:"address" validate:"required" jsonschema:"default=:23234"`
	HostKeyPath string        `yaml:"host_key_path" json:"host_key_path,omitempty" jsonschema:"description=Defaults to ~/.arcade/host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout" json:"idle_timeout" validate:"min=0"`
}

// GuestConfig registers a compiled guest module.
type GuestConfig struct {
	ID    string `yaml:"id" json:"id" validate:"required,max=32,excludesall= /"`
	Title string `yaml:"title" json:"title,omitempty"`
	Path  string `yaml:"path" json:"path" validate:"required" jsonschema:"description=Path to the .wasm file"`
}

// FlappyConfig contains all configuration for the built-in Flappy guest.
type FlappyConfig struct {
	Title     string          `yaml:"title" json:"title" validate:"required,max=52"`
	Screen    FlappyScreen    `yaml:"screen" json:"screen"`
	Physics   FlappyPhysics   `yaml:"physics" json:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles" json:"obstacles"`
	Player    FlappyPlayer    `yaml:"player" json:"player"`
	Colors    FlappyColors    `yaml:"colors" json:"colors"`
}

// FlappyScreen defines the guest's logical screen.
type FlappyScreen struct {
	Width        float64 `yaml:"width" json:"width" validate:"gt=0"`
	Height       float64 `yaml:"height" json:"height" validate:"gt=0"`
	GroundHeight float64 `yaml:"ground_height" json:"ground_height" validate:"gte=0"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity" json:"gravity" validate:"gt=0"`
	JumpImpulse float64 `yaml:"jump_impulse" json:"jump_impulse" validate:"lt=0"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth     float64 `yaml:"pipe_width" json:"pipe_width" validate:"gt=0"`
	GapSize       float64 `yaml:"gap_size" json:"gap_size" validate:"gt=0"`
	Speed         float64 `yaml:"speed" json:"speed" validate:"gt=0"`
	SpawnInterval int32   `yaml:"spawn_interval" json:"spawn_interval" validate:"min=1"`
	MaxPipes      int     `yaml:"max_pipes" json:"max_pipes" validate:"min=1,max=64"`
	TopMargin     float64 `yaml:"top_margin" json:"top_margin" validate:"gte=0"`
	BottomMargin  float64 `yaml:"bottom_margin" json:"bottom_margin" validate:"gte=0"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X    float64 `yaml:"x" json:"x" validate:"gte=0"`
	Size float64 `yaml:"size" json:"size" validate:"gt=0"`
}

// FlappyColors holds the palette as #RRGGBB strings.
type FlappyColors struct {
	Sky          string `yaml:"sky" json:"sky" validate:"len=7,hexcolor"`
	Ground       string `yaml:"ground" json:"ground" validate:"len=7,hexcolor"`
	Pipe         string `yaml:"pipe" json:"pipe" validate:"len=7,hexcolor"`
	Bird         string `yaml:"bird" json:"bird" validate:"len=7,hexcolor"`
	Overlay      string `yaml:"overlay" json:"overlay" validate:"len=7,hexcolor"`
	OverlayAlpha uint8  `yaml:"overlay_alpha" json:"overlay_alpha"`
}
