// Package tui provides the Bubble Tea integration for the arcade platform.
// It runs guest sessions in the terminal: it turns terminal events into guest
// input, paces frames, and rasterises the returned draw commands into
// half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one guest frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame at fps.
func tickCmd(fps int) tea.Cmd {
	if fps < 1 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
