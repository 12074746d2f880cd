package core

// RGB is a colour packed as 0xRRGGBB.
type RGB uint32

// Palette colours used by the Flappy core.
const (
	ColorSky     RGB = 0x87CEEB
	ColorGround  RGB = 0x8B4513
	ColorPipe    RGB = 0x228B22
	ColorBird    RGB = 0xFFD700
	ColorOverlay RGB = 0x000000
)

// NewRGB packs three channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// Blend mixes src over c with the given opacity in [0, 1].
func (c RGB) Blend(src RGB, alpha float64) RGB {
	alpha = ClampF(alpha, 0, 1)
	mix := func(dst, s uint8) uint8 {
		return uint8(float64(s)*alpha + float64(dst)*(1-alpha) + 0.5)
	}
	return NewRGB(mix(c.R(), src.R()), mix(c.G(), src.G()), mix(c.B(), src.B()))
}
