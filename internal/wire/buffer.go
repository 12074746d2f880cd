package wire

// Buffer is guest-owned memory addressed from a fixed base address.
type Buffer struct {
	data []byte
	base uint32
}

// NewBuffer allocates size bytes addressed starting at base.
func NewBuffer(size int, base uint32) *Buffer {
	return &Buffer{data: make([]byte, size), base: base}
}

// Base returns the address of the first byte.
func (b *Buffer) Base() uint32 {
	return b.base
}

// Len returns the size of the buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Read implements Memory.
func (b *Buffer) Read(addr, n uint32) ([]byte, bool) {
	if addr < b.base {
		return nil, false
	}
	start := uint64(addr - b.base)
	end := start + uint64(n)
	if end > uint64(len(b.data)) {
		return nil, false
	}
	return b.data[start:end], true
}
