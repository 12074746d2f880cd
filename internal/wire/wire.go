// Package wire is the little-endian binary codec shared by the guest core and
// its hosts. Every read or write of linear memory goes through a View at an
// explicit byte offset; no package overlays typed structs on raw memory.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is recorded by a View when an access falls outside its memory.
var ErrOutOfRange = errors.New("wire: address out of range")

// Memory is a byte-addressable range of linear memory.
// wazero's api.Memory satisfies it as is.
type Memory interface {
	// Read returns n bytes starting at addr. The returned slice aliases the
	// memory, so writes to it are visible to the other side.
	Read(addr, n uint32) ([]byte, bool)
}

// View reads and writes typed values at offsets from a base address.
// Values need not be aligned.
//
// The first out-of-range access is recorded and every later access becomes a
// no-op returning zero, so a sequence of reads can be checked once with Err.
type View struct {
	mem  Memory
	base uint32
	err  error
}

// NewView returns a view of mem starting at base.
func NewView(mem Memory, base uint32) *View {
	return &View{mem: mem, base: base}
}

// Base returns the address offsets are relative to.
func (v *View) Base() uint32 {
	return v.base
}

// Err returns the first access error, if any.
func (v *View) Err() error {
	return v.err
}

func (v *View) span(off, n uint32) []byte {
	if v.err != nil {
		return nil
	}
	addr := v.base + off
	b, ok := v.mem.Read(addr, n)
	if !ok || uint32(len(b)) < n {
		v.err = fmt.Errorf("%w: %d bytes at 0x%x", ErrOutOfRange, n, addr)
		return nil
	}
	return b
}

// Int32 reads a signed 32-bit integer at off.
func (v *View) Int32(off uint32) int32 {
	b := v.span(off, 4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// PutInt32 writes a signed 32-bit integer at off.
func (v *View) PutInt32(off uint32, val int32) {
	if b := v.span(off, 4); b != nil {
		binary.LittleEndian.PutUint32(b, uint32(val))
	}
}

// Float32 reads an IEEE 754 single at off.
func (v *View) Float32(off uint32) float32 {
	b := v.span(off, 4)
	if b == nil {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// PutFloat32 writes an IEEE 754 single at off.
func (v *View) PutFloat32(off uint32, val float32) {
	if b := v.span(off, 4); b != nil {
		binary.LittleEndian.PutUint32(b, math.Float32bits(val))
	}
}

// Float64 reads an IEEE 754 double at off.
func (v *View) Float64(off uint32) float64 {
	b := v.span(off, 8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// PutFloat64 writes an IEEE 754 double at off.
func (v *View) PutFloat64(off uint32, val float64) {
	if b := v.span(off, 8); b != nil {
		binary.LittleEndian.PutUint64(b, math.Float64bits(val))
	}
}

// PutBytes copies p into memory at off.
func (v *View) PutBytes(off uint32, p []byte) {
	if len(p) == 0 {
		return
	}
	if b := v.span(off, uint32(len(p))); b != nil {
		copy(b, p)
	}
}

// Bytes returns a copy of n bytes at off.
func (v *View) Bytes(off, n uint32) []byte {
	if n == 0 {
		return nil
	}
	b := v.span(off, n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}
