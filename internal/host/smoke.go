package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/draw"
	"github.com/vovakirdan/wasm-arcade/internal/input"
)

// ErrSmokeFailed is returned when a guest fails a smoke check.
var ErrSmokeFailed = errors.New("host: smoke check failed")

// SmokeCheck is one passed check and what it observed.
type SmokeCheck struct {
	Name   string
	Detail string
}

// Expected screen and opening frame of a conforming Flappy guest.
var smokeOpening = []core.RGB{core.ColorSky, core.ColorGround, core.ColorBird}

const (
	smokeWidth      = 320
	smokeHeight     = 240
	smokeIdleFrames = 60
)

// Smoke exercises a fresh module through the ABI: the init header, the
// opening frame, a run of idle frames and a start key press. It returns the
// checks that passed; the error names the first that failed.
func Smoke(ctx context.Context, s *Session) ([]SmokeCheck, error) {
	var passed []SmokeCheck
	fail := func(format string, args ...any) ([]SmokeCheck, error) {
		return passed, fmt.Errorf("%w: %s", ErrSmokeFailed, fmt.Sprintf(format, args...))
	}

	info := s.Info()
	if info.Width != smokeWidth || info.Height != smokeHeight || info.Title == "" {
		return fail("init header %dx%d %q", info.Width, info.Height, info.Title)
	}
	passed = append(passed, SmokeCheck{"init", fmt.Sprintf("%dx%d %q", info.Width, info.Height, info.Title)})

	cmds, err := s.Frame(ctx, input.Frame{})
	if err != nil {
		return fail("first frame: %v", err)
	}
	if len(cmds) != len(smokeOpening) {
		return fail("first frame has %d commands, want %d", len(cmds), len(smokeOpening))
	}
	for i, c := range cmds {
		if len(c.Vertices) != draw.QuadVertexCount || len(c.Indices) != draw.QuadIndexCount {
			return fail("command %d has %d vertices and %d indices", i, len(c.Vertices), len(c.Indices))
		}
		if c.Color() != smokeOpening[i] || c.A != int32(draw.Opaque) {
			return fail("command %d colour (%d,%d,%d,%d), want #%06X", i, c.R, c.G, c.B, c.A, uint32(smokeOpening[i]))
		}
	}
	passed = append(passed, SmokeCheck{"draw", fmt.Sprintf("%d commands, correct colours", len(cmds))})

	for i := 0; i < smokeIdleFrames; i++ {
		if _, err := s.Frame(ctx, input.Frame{}); err != nil {
			return fail("idle frame %d: %v", i, err)
		}
	}
	passed = append(passed, SmokeCheck{"frames", fmt.Sprintf("%d idle frames", smokeIdleFrames)})

	cmds, err = s.Frame(ctx, input.Frame{Keys: []int32{input.KeySpace}})
	if err != nil {
		return fail("space frame: %v", err)
	}
	if len(cmds) < len(smokeOpening) {
		return fail("space frame has %d commands", len(cmds))
	}
	passed = append(passed, SmokeCheck{"input", fmt.Sprintf("space accepted, %d commands", len(cmds))})

	return passed, nil
}
