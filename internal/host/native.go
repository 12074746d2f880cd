package host

import (
	"context"
	"fmt"

	"github.com/vovakirdan/wasm-arcade/internal/games/flappy"
	"github.com/vovakirdan/wasm-arcade/internal/guest"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// NativeModule runs the guest core in-process, without a wasm runtime.
// Guest memory is a plain buffer addressed from zero.
type NativeModule struct {
	inst *guest.Instance
}

// NewNativeModule creates an in-process Flappy guest.
func NewNativeModule(params flappy.Params) *NativeModule {
	mem := wire.NewBuffer(guest.MemorySize, 0)
	return &NativeModule{inst: guest.New(mem, params)}
}

// call runs fn and turns a guest panic into an ErrGuestTrap error, the way a
// wasm trap surfaces from the runtime.
func (m *NativeModule) call(name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrGuestTrap, name, r)
		}
	}()
	fn()
	return nil
}

// Init implements Module.
func (m *NativeModule) Init(context.Context) (uint32, error) {
	var addr uint32
	err := m.call(ExportInit, func() { addr = m.inst.Init() })
	return addr, err
}

// Alloc implements Module.
func (m *NativeModule) Alloc(_ context.Context, size uint32) (uint32, error) {
	var addr uint32
	err := m.call(ExportAlloc, func() { addr = m.inst.Alloc(size) })
	return addr, err
}

// Update implements Module.
func (m *NativeModule) Update(_ context.Context, addr, length uint32) error {
	return m.call(ExportUpdate, func() { m.inst.Update(addr, length) })
}

// Draw implements Module.
func (m *NativeModule) Draw(context.Context) (uint32, error) {
	var addr uint32
	err := m.call(ExportDraw, func() { addr = m.inst.Draw() })
	return addr, err
}

// Memory implements Module.
func (m *NativeModule) Memory() wire.Memory {
	return m.inst.Memory()
}

// Close implements Module.
func (m *NativeModule) Close(context.Context) error {
	return nil
}

// Score implements Scorer.
func (m *NativeModule) Score() (int, bool) {
	g := m.inst.Game()
	return g.Score(), g.Mode() == flappy.ModeOver
}
