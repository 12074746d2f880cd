//go:build wasip1

package main

import (
	"github.com/vovakirdan/wasm-arcade/internal/games/flappy"
	"github.com/vovakirdan/wasm-arcade/internal/guest"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// instance is the module's only guest. The wasm calling convention gives
// exports no receiver, so it lives for the lifetime of the module.
var instance = guest.New(wire.NewPinnedBuffer(guest.MemorySize), flappy.DefaultParams())

//go:wasmexport kagura_init
func kaguraInit() int32 {
	return int32(instance.Init())
}

//go:wasmexport kagura_alloc
func kaguraAlloc(size int32) int32 {
	return int32(instance.Alloc(uint32(size)))
}

//go:wasmexport kagura_update
func kaguraUpdate(ptr, length int32) {
	instance.Update(uint32(ptr), uint32(length))
}

//go:wasmexport kagura_draw
func kaguraDraw() int32 {
	return int32(instance.Draw())
}
