// Package guest is the guest side of the host ABI. An Instance owns the
// shared memory region, the arena carved out of it and the game, and
// implements the four entry points a host calls:
//
//	init()                -> address of the init header
//	alloc(size)           -> address of size fresh bytes
//	update(addr, length)  decode input at addr and step the game
//	draw()                -> address of the draw command stream
//
// Nothing is reported back across the ABI. A memory access outside the
// region panics, which the wasm runtime surfaces to the host as a trap.
package guest

import (
	"fmt"

	"github.com/vovakirdan/wasm-arcade/internal/arena"
	"github.com/vovakirdan/wasm-arcade/internal/draw"
	"github.com/vovakirdan/wasm-arcade/internal/games/flappy"
	"github.com/vovakirdan/wasm-arcade/internal/input"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// MemorySize is the size of the region a guest build reserves.
const MemorySize = 1 << 20

// Init header layout.
const (
	InitHeaderSize = 64

	offWidth    = 0
	offHeight   = 4
	offTitleLen = 8
	offTitle    = 12

	// MaxTitleLen is the longest title that fits in the header.
	MaxTitleLen = InitHeaderSize - offTitle
)

// Instance is one guest: a memory region, its arena and a game.
type Instance struct {
	mem    *wire.Buffer
	arena  *arena.Arena
	game   *flappy.Game
	params flappy.Params
}

// New creates an instance over mem. The arena starts ReservedSize bytes
// above the start of mem.
func New(mem *wire.Buffer, params flappy.Params) *Instance {
	return &Instance{
		mem:    mem,
		arena:  arena.New(mem.Base()),
		game:   flappy.New(params),
		params: params,
	}
}

// Init resets the arena and writes the init header: screen width, screen
// height, title length and title bytes. Titles longer than MaxTitleLen are
// truncated.
func (in *Instance) Init() uint32 {
	in.arena.Reset()
	addr := in.arena.Alloc(InitHeaderSize)

	title := []byte(in.params.Title)
	if len(title) > MaxTitleLen {
		title = title[:MaxTitleLen]
	}

	v := wire.NewView(in.mem, addr)
	v.PutInt32(offWidth, int32(in.params.ScreenW))
	v.PutInt32(offHeight, int32(in.params.ScreenH))
	v.PutInt32(offTitleLen, int32(len(title)))
	v.PutBytes(offTitle, title)
	mustOK("init", v)

	return addr
}

// Alloc reserves size bytes for the host to write into.
func (in *Instance) Alloc(size uint32) uint32 {
	return in.arena.Alloc(size)
}

// Update decodes the input frame at addr and steps the game once.
// length is the size the host wrote; the layout is self-describing, so it is
// not needed for decoding.
func (in *Instance) Update(addr, length uint32) {
	v := wire.NewView(in.mem, addr)
	snap := input.Decode(v)
	mustOK("update", v)
	in.game.Step(&snap)
}

// Draw resets the arena, encodes the current frame and returns the address
// of the command stream.
func (in *Instance) Draw() uint32 {
	in.arena.Reset()
	w := draw.NewWriter(in.mem, in.arena, in.params.ScreenW, in.params.ScreenH)
	addr := in.game.Render(w)
	if err := w.Close(); err != nil {
		panic(fmt.Errorf("guest: draw: %w", err))
	}
	return addr
}

// Memory returns the shared region.
func (in *Instance) Memory() *wire.Buffer {
	return in.mem
}

// Game returns the simulated game.
func (in *Instance) Game() *flappy.Game {
	return in.game
}

func mustOK(op string, v *wire.View) {
	if err := v.Err(); err != nil {
		panic(fmt.Errorf("guest: %s: %w", op, err))
	}
}
