// Package host runs guests from the host side of the ABI: it loads a guest
// (compiled wasm through wazero, or the Go core linked in natively), drives
// the init, alloc, update and draw cycle, and decodes what comes back.
package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// Export names every guest module must provide.
const (
	ExportInit   = "kagura_init"
	ExportAlloc  = "kagura_alloc"
	ExportUpdate = "kagura_update"
	ExportDraw   = "kagura_draw"

	// ExportInitialize is the WASI reactor constructor, called once if present.
	ExportInitialize = "_initialize"
)

var (
	// ErrGuestTrap wraps any failure raised inside a guest call.
	ErrGuestTrap = errors.New("host: guest trapped")

	// ErrMissingExport is returned when a module lacks a required export.
	ErrMissingExport = errors.New("host: missing export")

	// ErrBadInitHeader is returned when the init header is malformed.
	ErrBadInitHeader = errors.New("host: bad init header")
)

// Module is a loaded guest.
type Module interface {
	// Init calls the guest's init entry point and returns the header address.
	Init(ctx context.Context) (uint32, error)

	// Alloc reserves size bytes of guest memory.
	Alloc(ctx context.Context, size uint32) (uint32, error)

	// Update hands the guest the input frame written at addr.
	Update(ctx context.Context, addr, length uint32) error

	// Draw asks the guest for the current frame's command stream.
	Draw(ctx context.Context) (uint32, error)

	// Memory returns the guest's linear memory.
	Memory() wire.Memory

	// Close releases the module.
	Close(ctx context.Context) error
}

// Scorer is implemented by modules whose game state is visible to the host.
type Scorer interface {
	// Score returns the current score and whether the round is over.
	Score() (score int, over bool)
}

// Info is the decoded init header.
type Info struct {
	Width  int32
	Height int32
	Title  string
}

// maxTitleLen bounds the title read from an untrusted header.
const maxTitleLen = 1024

// ReadInfo decodes the init header at addr.
func ReadInfo(mem wire.Memory, addr uint32) (Info, error) {
	v := wire.NewView(mem, addr)
	info := Info{
		Width:  v.Int32(0),
		Height: v.Int32(4),
	}
	n := v.Int32(8)
	if err := v.Err(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrBadInitHeader, err)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return Info{}, fmt.Errorf("%w: screen %dx%d", ErrBadInitHeader, info.Width, info.Height)
	}
	if n < 0 || n > maxTitleLen {
		return Info{}, fmt.Errorf("%w: title length %d", ErrBadInitHeader, n)
	}
	info.Title = string(v.Bytes(12, uint32(n)))
	if err := v.Err(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrBadInitHeader, err)
	}
	return info, nil
}
