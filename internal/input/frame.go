package input

import "github.com/vovakirdan/wasm-arcade/internal/wire"

// Frame is the host's description of one frame of input.
type Frame struct {
	CursorX, CursorY float64
	WheelX, WheelY   float64
	Keys             []int32
	MouseButtons     []int32
}

// Has reports whether code is in the frame's key list.
func (f Frame) Has(code int32) bool {
	for _, k := range f.Keys {
		if k == code {
			return true
		}
	}
	return false
}

// Size returns the number of bytes Encode writes for f.
func (f Frame) Size() uint32 {
	return offKeys +
		4*uint32(len(f.Keys)) +
		4 + 4*uint32(len(f.MouseButtons)) +
		4 + // touch count
		4 // gamepad count
}

// Encode writes f at the view's base and returns the number of bytes written.
// Check v.Err afterwards for out-of-range writes.
func Encode(v *wire.View, f Frame) uint32 {
	v.PutFloat64(offCursorX, f.CursorX)
	v.PutFloat64(offCursorY, f.CursorY)
	v.PutFloat64(offWheelX, f.WheelX)
	v.PutFloat64(offWheelY, f.WheelY)

	v.PutInt32(offKeyCount, int32(len(f.Keys)))
	off := uint32(offKeys)
	for _, k := range f.Keys {
		v.PutInt32(off, k)
		off += 4
	}

	v.PutInt32(off, int32(len(f.MouseButtons)))
	off += 4
	for _, b := range f.MouseButtons {
		v.PutInt32(off, b)
		off += 4
	}

	v.PutInt32(off, 0)
	off += 4
	v.PutInt32(off, 0)
	off += 4

	return off
}
