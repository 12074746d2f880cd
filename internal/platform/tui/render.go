package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wasm-arcade/internal/core"
)

// halfBlock draws the upper pixel in the foreground colour and the lower
// pixel in the background colour, giving two pixels per character cell.
const halfBlock = "▀"

// hexColor formats c for lipgloss.
func hexColor(c core.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", uint32(c)))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Every character covers two pixel rows. Adjacent cells with the same colour
// pair are grouped to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	rows := (s.Height() + 1) / 2
	var sb strings.Builder
	sb.Grow(s.Width()*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		top, bottom := 2*row, 2*row+1

		x := 0
		for x < s.Width() {
			fg, bg := s.Get(x, top), s.Get(x, bottom)
			n := 1
			for x+n < s.Width() && s.Get(x+n, top) == fg && s.Get(x+n, bottom) == bg {
				n++
			}
			style := lipgloss.NewStyle().Foreground(hexColor(fg)).Background(hexColor(bg))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
			x += n
		}
	}
	return sb.String()
}

// FitViewport returns the largest pixel size with the guest's aspect ratio
// that fits a terminal of cols×rows characters.
func FitViewport(guestW, guestH int32, cols, rows int) (int, int) {
	if guestW <= 0 || guestH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	maxW, maxH := float64(cols), float64(rows*2)
	scale := min(maxW/float64(guestW), maxH/float64(guestH))
	w := int(float64(guestW) * scale)
	h := int(float64(guestH) * scale)
	return max(w, 1), max(h, 1)
}
