package tui

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/games/flappy"
	"github.com/vovakirdan/wasm-arcade/internal/host"
	"github.com/vovakirdan/wasm-arcade/internal/input"
	"github.com/vovakirdan/wasm-arcade/internal/registry"
	"github.com/vovakirdan/wasm-arcade/internal/storage"
)

var testGuest = registry.GuestInfo{ID: "flappy", Title: "Flappy Bird"}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	ctx := context.Background()
	logger := log.New(io.Discard)

	sess, err := host.NewSession(ctx, host.NewNativeModule(flappy.DefaultParams()), logger)
	require.NoError(t, err)

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 26
	cfg.HoldTicks = 2
	return NewModel(ctx, sess, testGuest, "tester", store, logger, cfg)
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelTickDrawsFrame(t *testing.T) {
	m := newTestModel(t, nil)
	t.Cleanup(func() { _ = m.Finish(context.Background()) })

	m = step(t, m, TickMsg{})
	require.NoError(t, m.Err())
	assert.Len(t, m.cmds, 3)
	assert.Equal(t, int64(1), m.session.Frames())

	view := m.View()
	assert.Contains(t, view, halfBlock)
	assert.Contains(t, view, "Flappy Bird (Go)")
}

func TestModelForwardsKeysWithHold(t *testing.T) {
	m := newTestModel(t, nil)
	t.Cleanup(func() { _ = m.Finish(context.Background()) })

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.held.Frame().Has(input.KeySpace))

	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})
	assert.False(t, m.held.Frame().Has(input.KeySpace))
	// Sky, ground and bird; no pipes yet.
	assert.Len(t, m.cmds, 3)
}

func TestModelMouse(t *testing.T) {
	m := newTestModel(t, nil)
	t.Cleanup(func() { _ = m.Finish(context.Background()) })

	m = step(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []int32{0}, m.held.Frame().MouseButtons)

	m = step(t, m, tea.MouseMsg{Action: tea.MouseActionRelease})
	assert.Empty(t, m.held.Frame().MouseButtons)
}

func TestModelHostKeys(t *testing.T) {
	m := newTestModel(t, nil)
	t.Cleanup(func() { _ = m.Finish(context.Background()) })

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).WantsBack())
	assert.Empty(t, next.(Model).held.Frame().Keys)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).quitting)
	assert.Empty(t, next.(Model).View())
}

func TestModelRecordsSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := newTestModel(t, store)
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 400 && !m.wasOver; i++ {
		m = step(t, m, TickMsg{})
	}
	require.True(t, m.wasOver, "bird never hit the ground")

	require.NoError(t, m.Finish(context.Background()))

	sessions, err := store.RecentSessions("flappy", 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "tester", sessions[0].Player)
	assert.Equal(t, m.session.Frames(), sessions[0].Frames)

	// The bird never passed a pipe, so no score is stored.
	scores, err := store.TopScores("flappy", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	t.Cleanup(func() { _ = m.Finish(context.Background()) })

	m = step(t, m, tea.WindowSizeMsg{Width: 42, Height: 17})
	m = step(t, m, TickMsg{})
	_ = m.View()
	w, h := FitViewport(320, 240, 42, 17-chromeRows)
	assert.Equal(t, w, m.screen.Width())
	assert.Equal(t, h, m.screen.Height())
	assert.LessOrEqual(t, strings.Count(m.frame(), "\n")+1, 17-chromeRows)
}

func TestModelSessionBestIgnoresEarlierScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.SaveScore("flappy", "someone", 50)
	require.NoError(t, err)

	m := newTestModel(t, store)
	assert.Equal(t, 50, m.best)
	for i := 0; i < 5; i++ {
		m = step(t, m, TickMsg{})
	}
	require.NoError(t, m.Finish(context.Background()))

	sessions, err := store.RecentSessions("flappy", 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, int64(5), sessions[0].Frames)
	assert.Equal(t, 0, sessions[0].BestScore)

	best, err := store.HighScore("flappy")
	require.NoError(t, err)
	assert.Equal(t, 50, best)
}
