package core

import "testing"

func TestRGBChannels(t *testing.T) {
	c := ColorSky
	if c.R() != 135 || c.G() != 206 || c.B() != 235 {
		t.Errorf("channels = (%d, %d, %d), expected (135, 206, 235)", c.R(), c.G(), c.B())
	}
	if NewRGB(135, 206, 235) != ColorSky {
		t.Errorf("NewRGB round trip = %#x, expected %#x", NewRGB(135, 206, 235), ColorSky)
	}
}

func TestRGBBlend(t *testing.T) {
	white := NewRGB(255, 255, 255)

	if got := white.Blend(ColorOverlay, 1); got != ColorOverlay {
		t.Errorf("opaque blend = %#x, expected %#x", got, ColorOverlay)
	}
	if got := white.Blend(ColorOverlay, 0); got != white {
		t.Errorf("transparent blend = %#x, expected %#x", got, white)
	}
	if got := white.Blend(ColorOverlay, 128.0/255.0); got.R() != 127 {
		t.Errorf("half blend red = %d, expected 127", got.R())
	}
}
