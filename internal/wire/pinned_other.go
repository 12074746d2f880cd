//go:build !wasip1

package wire

// NewPinnedBuffer allocates size bytes addressed from zero. Outside wasm there
// is no shared linear memory, so addresses are plain offsets into the buffer.
func NewPinnedBuffer(size int) *Buffer {
	return NewBuffer(size, 0)
}
