package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 2, ColorBird)

	if got := s.Get(1, 2); got != ColorBird {
		t.Errorf("Get(1, 2) = %#x, expected %#x", got, ColorBird)
	}
	if got := s.Get(0, 0); got != 0 {
		t.Errorf("fresh pixel = %#x, expected black", got)
	}

	// Out of bounds is ignored
	s.Set(-1, 0, ColorPipe)
	s.Set(4, 0, ColorPipe)
	if got := s.Get(9, 9); got != 0 {
		t.Errorf("out-of-bounds Get = %#x, expected black", got)
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill(ColorSky)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ColorSky {
				t.Fatalf("pixel (%d, %d) = %#x, expected sky", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, ColorGround)
	s.Set(3, 3, ColorBird)

	s.Resize(2, 6)

	if s.Width() != 2 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 2x6", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ColorGround {
		t.Errorf("preserved pixel = %#x, expected ground", s.Get(1, 1))
	}
	if s.Get(1, 5) != 0 {
		t.Errorf("new pixel = %#x, expected black", s.Get(1, 5))
	}
}
