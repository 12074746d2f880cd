package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/draw"
	"github.com/vovakirdan/wasm-arcade/internal/host"
	"github.com/vovakirdan/wasm-arcade/internal/registry"
	"github.com/vovakirdan/wasm-arcade/internal/storage"
)

// chromeRows is the number of terminal rows used below the game frame.
const chromeRows = 2

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for running one guest session.
type Model struct {
	ctx     context.Context
	session *host.Session
	guest   registry.GuestInfo
	player  string
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig

	keys   GameKeyMap
	help   help.Model
	held   *HeldKeys
	screen *core.Screen
	cmds   []draw.Command

	score       int
	best        int // all-time high, shown in the status line
	sessionBest int // best score reached in this session
	wasOver     bool
	err         error
	quitting    bool
	back        bool
}

// NewModel creates a play model for an initialised session.
// store may be nil, in which case nothing is recorded.
func NewModel(ctx context.Context, sess *host.Session, guest registry.GuestInfo, player string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	m := Model{
		ctx:     ctx,
		session: sess,
		guest:   guest,
		player:  player,
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		held:    NewHeldKeys(cfg.HoldTicks),
		screen:  core.NewScreen(0, 0),
	}
	if store != nil {
		if best, err := store.HighScore(guest.ID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.held.SetMouse(true)
			}
		case tea.MouseActionRelease:
			m.held.SetMouse(false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Host bindings are consumed; every other mapped key is forwarded to the guest.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if code, ok := KeyCode(msg); ok {
		m.held.Press(code)
	}
	return m, nil
}

// handleTick runs one guest frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}

	cmds, err := m.session.Frame(m.ctx, m.held.Frame())
	if err != nil {
		m.err = err
		m.logger.Error("guest frame failed", "guest", m.guest.ID, "frame", m.session.Frames(), "err", err)
		return m, nil
	}
	m.held.Tick()
	m.cmds = cmds

	if score, over, ok := m.session.Score(); ok {
		m.score = score
		if over && !m.wasOver {
			m.recordScore(score)
		}
		m.wasOver = over
		m.sessionBest = max(m.sessionBest, score)
		m.best = max(m.best, score)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore saves a finished round's score.
func (m Model) recordScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.guest.ID, m.player, score); err != nil {
		m.logger.Warn("cannot save score", "guest", m.guest.ID, "err", err)
		return
	}
	m.logger.Info("score saved", "guest", m.guest.ID, "player", m.player, "score", score)
}

// frame rasterises the last command stream at the current terminal size.
func (m Model) frame() string {
	info := m.session.Info()
	w, h := FitViewport(info.Width, info.Height, m.config.ScreenW, m.config.ScreenH-chromeRows)
	m.screen.Resize(w, h)
	m.screen.Fill(0)
	Rasterize(m.screen, m.cmds)
	return RenderScreen(m.screen)
}

// saveScreenshot saves the current frame to a file.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.ans", m.guest.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.frame()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	if m.err != nil {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center,
			errorStyle.Render("guest stopped: "+m.err.Error())+"\n\n"+m.help.View(m.keys))
	}

	gameArea := lipgloss.Place(m.config.ScreenW, max(m.config.ScreenH-chromeRows, 0),
		lipgloss.Center, lipgloss.Center, m.frame())

	status := statusStyle.Render(m.session.Info().Title) +
		mutedStyle.Render(fmt.Sprintf("  score %d  best %d  frame %d", m.score, m.best, m.session.Frames()))

	return lipgloss.JoinVertical(lipgloss.Left, gameArea, status, m.help.View(m.keys))
}

// WantsBack reports whether the player asked to return to the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Err returns the error that stopped the guest, if any.
func (m Model) Err() error {
	return m.err
}

// Finish records the session and closes it.
func (m Model) Finish(ctx context.Context) error {
	if m.store != nil && m.session.Frames() > 0 {
		rec := storage.SessionRecord{
			GuestID:   m.guest.ID,
			Player:    m.player,
			Frames:    m.session.Frames(),
			Duration:  m.session.Elapsed(),
			BestScore: m.sessionBest,
		}
		if _, err := m.store.SaveSession(rec); err != nil {
			m.logger.Warn("cannot save session", "guest", m.guest.ID, "err", err)
		}
	}
	return m.session.Close(ctx)
}

// Run plays an initialised session in the terminal until the player quits
// or goes back. It reports whether the player asked for the menu.
func Run(ctx context.Context, sess *host.Session, guest registry.GuestInfo, player string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (bool, error) {
	model := NewModel(ctx, sess, guest, player, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, runErr := p.Run()
	if m, ok := final.(Model); ok {
		model = m
	}
	if err := model.Finish(context.Background()); err != nil {
		logger.Warn("cannot close guest", "guest", guest.ID, "err", err)
	}
	if runErr != nil {
		return false, runErr
	}
	return model.WantsBack(), model.Err()
}
