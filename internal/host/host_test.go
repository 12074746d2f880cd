package host

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/games/flappy"
	"github.com/vovakirdan/wasm-arcade/internal/input"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newNativeSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), NewNativeModule(flappy.DefaultParams()), quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestNativeSessionInfo(t *testing.T) {
	s := newNativeSession(t)

	assert.Equal(t, Info{Width: 320, Height: 240, Title: "Flappy Bird (Go)"}, s.Info())
}

func TestNativeSessionFrames(t *testing.T) {
	ctx := context.Background()
	s := newNativeSession(t)

	cmds, err := s.Frame(ctx, input.Frame{})
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, core.ColorBird, cmds[2].Color())

	score, over, ok := s.Score()
	require.True(t, ok)
	assert.Zero(t, score)
	assert.False(t, over)

	_, err = s.Frame(ctx, input.Frame{Keys: []int32{input.KeySpace}})
	require.NoError(t, err)

	// With no further input the bird falls to the ground.
	for i := 0; i < 200; i++ {
		_, err = s.Frame(ctx, input.Frame{})
		require.NoError(t, err)
	}
	_, over, _ = s.Score()
	assert.True(t, over)

	cmds, err = s.Frame(ctx, input.Frame{})
	require.NoError(t, err)
	assert.Len(t, cmds, 4, "game over adds the overlay")
	assert.Equal(t, int64(203), s.Frames())
}

func TestSmokeNative(t *testing.T) {
	checks, err := Smoke(context.Background(), newNativeSession(t))
	require.NoError(t, err)

	var names []string
	for _, c := range checks {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"init", "draw", "frames", "input"}, names)
}

func TestSmokeRejectsWrongScreen(t *testing.T) {
	params := flappy.DefaultParams()
	params.ScreenW = 640
	s, err := NewSession(context.Background(), NewNativeModule(params), quietLogger())
	require.NoError(t, err)

	checks, err := Smoke(context.Background(), s)
	require.ErrorIs(t, err, ErrSmokeFailed)
	assert.Empty(t, checks)
}

func TestSmokeRejectsWrongColours(t *testing.T) {
	params := flappy.DefaultParams()
	params.Bird = core.NewRGB(1, 2, 3)
	s, err := NewSession(context.Background(), NewNativeModule(params), quietLogger())
	require.NoError(t, err)

	checks, err := Smoke(context.Background(), s)
	require.ErrorIs(t, err, ErrSmokeFailed)
	assert.Len(t, checks, 1)
}

func TestNativeTrapIsRecovered(t *testing.T) {
	m := NewNativeModule(flappy.DefaultParams())

	err := m.Update(context.Background(), 1<<30, 48)
	require.ErrorIs(t, err, ErrGuestTrap)
	assert.ErrorContains(t, err, ExportUpdate)
}

func TestReadInfo(t *testing.T) {
	tests := []struct {
		name    string
		w, h, n int32
		title   string
		wantErr bool
	}{
		{"valid", 320, 240, 5, "hello", false},
		{"empty title", 320, 240, 0, "", false},
		{"zero width", 0, 240, 0, "", true},
		{"negative title length", 320, 240, -1, "", true},
		{"title past memory", 320, 240, 900, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := wire.NewBuffer(128, 0)
			v := wire.NewView(mem, 0)
			v.PutInt32(0, tt.w)
			v.PutInt32(4, tt.h)
			v.PutInt32(8, tt.n)
			v.PutBytes(12, []byte(tt.title))
			require.NoError(t, v.Err())

			info, err := ReadInfo(mem, 0)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadInitHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, info.Title)
		})
	}
}

func TestWasmLoaderMissingExports(t *testing.T) {
	ctx := context.Background()
	l, err := NewWasmLoader("")
	require.NoError(t, err)
	defer l.Close(ctx)

	// The smallest valid module: magic and version, nothing else.
	empty := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	_, err = l.Load(ctx, "empty", empty)
	assert.ErrorIs(t, err, ErrMissingExport)
}

func TestWasmLoaderRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	l, err := NewWasmLoader(t.TempDir())
	require.NoError(t, err)
	defer l.Close(ctx)

	_, err = l.Load(ctx, "garbage", []byte("not wasm"))
	assert.Error(t, err)
}

// TestWasmGuestSmoke runs the smoke check and a long round against the
// compiled guest. Build it first with
//
//	go generate ./internal/host
func TestWasmGuestSmoke(t *testing.T) {
	path := filepath.Join("testdata", "flappy.wasm")
	if _, err := os.Stat(path); err != nil {
		t.Skip("testdata/flappy.wasm not built; run go generate ./internal/host")
	}

	ctx := context.Background()
	l, err := NewWasmLoader("")
	require.NoError(t, err)
	defer l.Close(ctx)

	mod, err := l.LoadFile(ctx, path)
	require.NoError(t, err)

	s, err := NewSession(ctx, mod, quietLogger())
	require.NoError(t, err)
	defer s.Close(ctx)

	_, err = Smoke(ctx, s)
	require.NoError(t, err)

	_, _, ok := s.Score()
	assert.False(t, ok, "wasm guests do not expose their score")

	for i := 0; i < 3000; i++ {
		var f input.Frame
		if i%24 == 0 {
			f.Keys = []int32{input.KeySpace}
		}
		cmds, err := s.Frame(ctx, f)
		require.NoError(t, err, "frame %d", i)
		require.GreaterOrEqual(t, len(cmds), 3, "frame %d", i)
		for _, c := range cmds {
			require.Len(t, c.Vertices, 4, "frame %d", i)
			require.Len(t, c.Indices, 6, "frame %d", i)
		}
	}
}
