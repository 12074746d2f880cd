//go:build wasip1

package wire

import "unsafe"

// NewPinnedBuffer allocates size bytes whose addresses are their real
// offsets in the module's linear memory, so the host can reach them directly.
// The Go collector does not move objects, and the caller keeps the buffer
// reachable for the lifetime of the instance.
func NewPinnedBuffer(size int) *Buffer {
	data := make([]byte, size)
	// WASM linear memory: pointer to uint32 offset is exact on wasm32 layout
	//nolint:gosec // G103: Valid unsafe.Pointer use for WASM linear memory access
	base := uint32(uintptr(unsafe.Pointer(&data[0])))
	return &Buffer{data: data, base: base}
}
