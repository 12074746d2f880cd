package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wasm-arcade/internal/input"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		code int32
		ok   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.KeySpace, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, input.KeyUp, true},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, input.KeyDown, true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, input.KeyLeft, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, input.KeyRight, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.KeyEnter, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, input.KeyEscape, true},
		{"lower letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, 'A', true},
		{"upper letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Z'}}, 'Z', true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, '7', true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, 0, false},
		{"punctuation", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'%'}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := KeyCode(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(input.KeySpace)

	for i := 0; i < 3; i++ {
		require.Equal(t, []int32{input.KeySpace}, h.Frame().Keys, "frame %d", i)
		h.Tick()
	}
	assert.Empty(t, h.Frame().Keys)
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(input.KeyUp)
	for i := 0; i < 10; i++ {
		h.Tick()
		h.Press(input.KeyUp)
		require.True(t, h.Frame().Has(input.KeyUp), "tick %d", i)
	}
}

func TestHeldKeysSortedAndMouse(t *testing.T) {
	h := NewHeldKeys(1)
	h.Press(input.KeyUp)
	h.Press(input.KeySpace)
	h.Press(input.KeyEnter)
	h.SetMouse(true)

	f := h.Frame()
	assert.Equal(t, []int32{input.KeyEnter, input.KeySpace, input.KeyUp}, f.Keys)
	assert.Equal(t, []int32{0}, f.MouseButtons)

	h.SetMouse(false)
	assert.Empty(t, h.Frame().MouseButtons)

	h.Clear()
	assert.Empty(t, h.Frame().Keys)
}

func TestHeldKeysMinimumHold(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(input.KeySpace)
	assert.True(t, h.Frame().Has(input.KeySpace))
	h.Tick()
	assert.False(t, h.Frame().Has(input.KeySpace))
}
