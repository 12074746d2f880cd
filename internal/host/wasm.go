package host

// Builds the guest used by TestWasmGuestSmoke.
//go:generate env GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o testdata/flappy.wasm ../../cmd/flappy-guest

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// WasmLoader instantiates guest modules with wazero. Compiled code is kept in
// a cache shared by every runtime the loader creates, so loading the same
// guest for many players compiles it once.
type WasmLoader struct {
	cache wazero.CompilationCache
}

// NewWasmLoader creates a loader. If cacheDir is not empty, compiled modules
// are also cached on disk there.
func NewWasmLoader(cacheDir string) (*WasmLoader, error) {
	if cacheDir == "" {
		return &WasmLoader{cache: wazero.NewCompilationCache()}, nil
	}
	cache, err := wazero.NewCompilationCacheWithDir(cacheDir)
	if err != nil {
		return nil, fmt.Errorf("host: cannot open compilation cache %s: %w", cacheDir, err)
	}
	return &WasmLoader{cache: cache}, nil
}

// LoadFile reads a .wasm file and instantiates it.
func (l *WasmLoader) LoadFile(ctx context.Context, path string) (*WasmModule, error) {
	binary, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("host: cannot read guest %s: %w", path, err)
	}
	return l.Load(ctx, path, binary)
}

// Load instantiates a guest from its binary in a fresh runtime.
// WASI is provided because Go guests built for wasip1 import it.
func (l *WasmLoader) Load(ctx context.Context, name string, binary []byte) (*WasmModule, error) {
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().
		WithCompilationCache(l.cache).
		WithCloseOnContextDone(true))

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("host: cannot instantiate WASI: %w", err)
	}

	compiled, err := rt.CompileModule(ctx, binary)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("host: cannot compile %s: %w", name, err)
	}

	// Reactors have no _start; _initialize is called explicitly below.
	cfg := wazero.NewModuleConfig().WithName(name).WithStartFunctions()
	mod, err := rt.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("host: cannot instantiate %s: %w", name, err)
	}

	if initFn := mod.ExportedFunction(ExportInitialize); initFn != nil {
		if _, err := initFn.Call(ctx); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("%w: %s: %w", ErrGuestTrap, ExportInitialize, err)
		}
	}

	m := &WasmModule{
		runtime: rt,
		mod:     mod,
		init:    mod.ExportedFunction(ExportInit),
		alloc:   mod.ExportedFunction(ExportAlloc),
		update:  mod.ExportedFunction(ExportUpdate),
		draw:    mod.ExportedFunction(ExportDraw),
	}

	for export, fn := range map[string]api.Function{
		ExportInit:   m.init,
		ExportAlloc:  m.alloc,
		ExportUpdate: m.update,
		ExportDraw:   m.draw,
	} {
		if fn == nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("%w: %s", ErrMissingExport, export)
		}
	}
	if mod.Memory() == nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("%w: memory", ErrMissingExport)
	}

	return m, nil
}

// Close releases the compilation cache.
func (l *WasmLoader) Close(ctx context.Context) error {
	return l.cache.Close(ctx)
}

// WasmModule is a guest instantiated in its own wazero runtime.
type WasmModule struct {
	runtime wazero.Runtime
	mod     api.Module

	init   api.Function
	alloc  api.Function
	update api.Function
	draw   api.Function
}

func (m *WasmModule) callI32(ctx context.Context, name string, fn api.Function, params ...uint64) (uint32, error) {
	results, err := fn.Call(ctx, params...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrGuestTrap, name, err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("%w: %s returned %d values", ErrGuestTrap, name, len(results))
	}
	return uint32(api.DecodeI32(results[0])), nil
}

// Init implements Module.
func (m *WasmModule) Init(ctx context.Context) (uint32, error) {
	return m.callI32(ctx, ExportInit, m.init)
}

// Alloc implements Module.
func (m *WasmModule) Alloc(ctx context.Context, size uint32) (uint32, error) {
	return m.callI32(ctx, ExportAlloc, m.alloc, api.EncodeI32(int32(size)))
}

// Update implements Module.
func (m *WasmModule) Update(ctx context.Context, addr, length uint32) error {
	if _, err := m.update.Call(ctx, api.EncodeI32(int32(addr)), api.EncodeI32(int32(length))); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrGuestTrap, ExportUpdate, err)
	}
	return nil
}

// Draw implements Module.
func (m *WasmModule) Draw(ctx context.Context) (uint32, error) {
	return m.callI32(ctx, ExportDraw, m.draw)
}

// Memory implements Module.
func (m *WasmModule) Memory() wire.Memory {
	return m.mod.Memory()
}

// Close implements Module. It closes the module and its runtime.
func (m *WasmModule) Close(ctx context.Context) error {
	return m.runtime.Close(ctx)
}
