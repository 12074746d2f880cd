// Package input implements the per-frame input record exchanged through guest
// memory. The guest decodes it into a Snapshot; hosts build a Frame and encode
// it with the same layout:
//
//	 0: f64 cursor x
//	 8: f64 cursor y
//	16: f64 wheel x
//	24: f64 wheel y
//	32: i32 key count (K)
//	36: i32[K] key codes
//	36+4K: i32 mouse button count (M)
//	  +4: i32[M] mouse buttons
//	 ...: i32 touch count (always 0)
//	 ...: i32 gamepad count (always 0)
package input

import (
	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// Key codes follow the browser keyCode numbering used by hosts.
const (
	KeyEnter  int32 = 13
	KeyEscape int32 = 27
	KeySpace  int32 = 32
	KeyLeft   int32 = 37
	KeyUp     int32 = 38
	KeyRight  int32 = 39
	KeyDown   int32 = 40
)

// MaxKeys is how many pressed keys a Snapshot retains.
const MaxKeys = 16

const (
	offCursorX  = 0
	offCursorY  = 8
	offWheelX   = 16
	offWheelY   = 24
	offKeyCount = 32
	offKeys     = 36
)

// Snapshot is the guest's decoded view of one frame of input.
// It is rebuilt on every update and never persisted.
type Snapshot struct {
	CursorX, CursorY float64
	WheelX, WheelY   float64

	// MouseButtons is the number of pointer buttons currently down.
	MouseButtons uint32

	keys core.Bounded[int32]
}

// Pressed reports whether code is among the retained keys.
func (s *Snapshot) Pressed(code int32) bool {
	for _, k := range s.keys.Items() {
		if k == code {
			return true
		}
	}
	return false
}

// Keys returns the retained key codes in host order.
func (s *Snapshot) Keys() []int32 {
	return s.keys.Items()
}

// Decode reads a Snapshot at the view's base.
//
// Counts are not validated: the host guarantees the buffer it allocated
// matches them. Counts are taken as unsigned 32-bit values and offsets wrap
// like 32-bit addresses. Keys past MaxKeys are skipped but still advance the
// offset of the mouse button count. An out-of-range read is recorded on v.
func Decode(v *wire.View) Snapshot {
	s := Snapshot{
		CursorX: v.Float64(offCursorX),
		CursorY: v.Float64(offCursorY),
		WheelX:  v.Float64(offWheelX),
		WheelY:  v.Float64(offWheelY),
		keys:    core.NewBounded[int32](MaxKeys),
	}

	count := uint32(v.Int32(offKeyCount))
	for i := uint32(0); i < count && !s.keys.Full(); i++ {
		s.keys.Push(v.Int32(offKeys + 4*i))
	}

	s.MouseButtons = uint32(v.Int32(offKeys + 4*count))
	return s
}
