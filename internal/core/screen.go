package core

// Screen is a 2D pixel buffer the host rasterises draw commands into.
// It decouples the command stream from the terminal: the platform layer turns
// pairs of pixel rows into half-block characters.
type Screen struct {
	width  int
	height int
	pixels [][]RGB
}

// NewScreen creates a new screen buffer with the given dimensions in pixels.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying pixel storage.
func (s *Screen) allocate() {
	s.pixels = make([][]RGB, s.height)
	for y := range s.pixels {
		s.pixels[y] = make([]RGB, s.width)
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldPixels := s.pixels
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.pixels[y][:copyW], oldPixels[y][:copyW])
	}
}

// Fill paints every pixel with c.
func (s *Screen) Fill(c RGB) {
	for y := range s.pixels {
		for x := range s.pixels[y] {
			s.pixels[y][x] = c
		}
	}
}

// Set paints the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c RGB) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y][x] = c
}

// Get returns the pixel at (x, y), or black when out of bounds.
func (s *Screen) Get(x, y int) RGB {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pixels[y][x]
}
