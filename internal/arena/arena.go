// Package arena implements the guest's bump allocator.
//
// Memory handed out by an Arena is never freed individually. The owner calls
// Reset before each batch of allocations (once at startup and once at the
// start of every draw pass) and everything allocated since the last reset is
// reclaimed at once.
package arena

// ReservedSize is the low part of the region kept for static and control
// data. Allocation starts above it, so address 0 stays usable as null.
const ReservedSize = 8192

// Arena hands out increasing addresses from a cursor.
//
// There is no bounds check against the size of the underlying memory: the
// host is trusted to provide enough, and touching memory past the end traps.
type Arena struct {
	base   uint32
	cursor uint32
}

// New returns an arena for a region whose first byte is at regionStart.
func New(regionStart uint32) *Arena {
	a := &Arena{base: regionStart + ReservedSize}
	a.Reset()
	return a
}

// Reset rewinds the cursor to the base address.
func (a *Arena) Reset() {
	a.cursor = a.base
}

// Alloc reserves size bytes and returns the address of the first one.
func (a *Arena) Alloc(size uint32) uint32 {
	addr := a.cursor
	a.cursor += size
	return addr
}

// Base returns the address the cursor resets to.
func (a *Arena) Base() uint32 {
	return a.base
}

// Cursor returns the next address Alloc will return.
func (a *Arena) Cursor() uint32 {
	return a.cursor
}
