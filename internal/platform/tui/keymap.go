package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wasm-arcade/internal/input"
)

// GameKeyMap defines the key bindings handled by the host while a guest runs.
// Every other key is forwarded to the guest.
type GameKeyMap struct {
	Flap key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap, k.Back, k.Quit}}
}

// DefaultGameKeyMap returns default key bindings.
// Flap is informational: space and up reach the guest as key codes.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space/up/click", "flap"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the guest picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scores, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// namedKeys maps Bubble Tea key names to browser key codes.
var namedKeys = map[string]int32{
	" ":     input.KeySpace,
	"space": input.KeySpace,
	"enter": input.KeyEnter,
	"esc":   input.KeyEscape,
	"left":  input.KeyLeft,
	"up":    input.KeyUp,
	"right": input.KeyRight,
	"down":  input.KeyDown,
}

// KeyCode translates a key message to the browser key code a guest expects.
// Letters map to their upper-case ASCII code, digits to their ASCII code.
func KeyCode(msg tea.KeyMsg) (int32, bool) {
	s := msg.String()
	if code, ok := namedKeys[s]; ok {
		return code, true
	}
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'a' && c <= 'z':
			return int32(c - 'a' + 'A'), true
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return int32(c), true
		}
	}
	return 0, false
}

// HeldKeys reconstructs key state from terminal events.
//
// Terminals report presses (and auto-repeat) but no releases, so a pressed
// key counts as held for a fixed number of frames after its last event. A
// key held down keeps being refreshed by auto-repeat and so stays held; a
// tap is released after the hold window. Mouse buttons do report releases.
type HeldKeys struct {
	hold  int
	keys  map[int32]int // code -> frames left
	mouse bool
}

// NewHeldKeys creates a tracker that holds keys for hold frames.
func NewHeldKeys(hold int) *HeldKeys {
	if hold < 1 {
		hold = 1
	}
	return &HeldKeys{hold: hold, keys: make(map[int32]int)}
}

// Press marks code as held, restarting its hold window.
func (h *HeldKeys) Press(code int32) {
	h.keys[code] = h.hold
}

// SetMouse records the primary button state.
func (h *HeldKeys) SetMouse(down bool) {
	h.mouse = down
}

// Frame returns the current input as a frame, keys in ascending order.
func (h *HeldKeys) Frame() input.Frame {
	var f input.Frame
	for code := range h.keys {
		f.Keys = append(f.Keys, code)
	}
	sort.Slice(f.Keys, func(i, j int) bool { return f.Keys[i] < f.Keys[j] })
	if h.mouse {
		f.MouseButtons = []int32{0}
	}
	return f
}

// Tick ages every held key by one frame and releases expired ones.
func (h *HeldKeys) Tick() {
	for code, left := range h.keys {
		if left <= 1 {
			delete(h.keys, code)
			continue
		}
		h.keys[code] = left - 1
	}
}

// Clear releases everything.
func (h *HeldKeys) Clear() {
	clear(h.keys)
	h.mouse = false
}
